package sungeom_test

import (
	"fmt"

	"github.com/swingboat/sungeom"
)

// ExamplePositionAt computes the noon sun and shadow for Beijing's
// latitude near the summer solstice.
func ExamplePositionAt() {
	pos := sungeom.PositionAt(39.9, 173, 12)
	sh := sungeom.ShadowOf(1.0, pos)

	fmt.Printf("altitude %.1f° azimuth %.1f° (%s)\n",
		pos.Altitude, pos.Azimuth, sungeom.CompassDirection(pos.Azimuth))
	fmt.Printf("shadow %.3f long, pointing %s\n",
		sh.Length, sungeom.CompassDirection(sh.Direction))
	// Output:
	// altitude 73.5° azimuth 180.0° (S)
	// shadow 0.296 long, pointing N
}

// ExampleSolarDayFor finds sunrise and sunset in local solar time on a
// spring equinox day at the equator.
func ExampleSolarDayFor() {
	sd := sungeom.SolarDayFor(0, 81)

	fmt.Printf("sunrise %.1f sunset %.1f daylight %.1f hours\n",
		sd.Sunrise, sd.Sunset, sd.DaylightHours())
	// Output:
	// sunrise 6.0 sunset 18.0 daylight 12.0 hours
}

// ExampleSubsolarLatitude shows where the sun stands overhead through
// the seasons.
func ExampleSubsolarLatitude() {
	for _, day := range []int{81, 173, 263, 355} {
		fmt.Println(sungeom.FormatDegreeMinute(sungeom.SubsolarLatitude(day), true))
	}
	// No Output block: the formatted minutes sit right on rounding
	// boundaries and this is meant as documentation, not a regression pin.
}
