// Package orbit maps calendar days and revolution phase to subsolar
// latitude and to points on the drawn orbital circle.
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/swingboat/sungeom/internal/angle"
)

// Obliquity is the axial tilt in degrees, 23°26′. It bounds the subsolar
// latitude's annual range.
const Obliquity = 23.4333

// Season anchors on the revolution phase. The declination curve and the
// drawn orbit share these by construction: PhaseForDay pins phase 0 to the
// day the declination formula bottoms out at -Obliquity.
const (
	PhaseWinterSolstice = 0.0
	PhaseSpringEquinox  = 0.25
	PhaseSummerSolstice = 0.5
	PhaseAutumnEquinox  = 0.75
)

// winterSolsticeDay is where SubsolarLatitude reaches -Obliquity
// (284 + d ≡ 273.75 mod 365), around December 21.
const winterSolsticeDay = 354.75

// SubsolarLatitude returns the latitude (degrees) at which the sun stands
// overhead at solar noon on the given day of year, using the Cooper
// sinusoid Obliquity·sin(2π(284+d)/365). This is a deliberate
// approximation to the true declination curve (good to ~1°), not an
// ephemeris. The input is not wrapped or range-checked; days outside
// [1, 365] continue the sinusoid.
func SubsolarLatitude(dayOfYear int) float64 {
	return Obliquity * math.Sin(2*math.Pi*float64(284+dayOfYear)/365.0)
}

// PhaseForDay derives the revolution phase in [0, 1) from the day of year,
// with phase 0 at the winter solstice. Deriving it here rather than
// tracking a second, independent angle keeps the drawn orbit and the
// declination curve from drifting apart.
func PhaseForDay(dayOfYear int) float64 {
	p := math.Mod((float64(dayOfYear)-winterSolsticeDay)/365.0, 1.0)
	if p < 0 {
		p += 1
	}
	return p
}

// Position returns the 3D point at the given phase on a circle of the
// given radius in the orbital (XZ) plane. The negated z term makes the
// motion counterclockwise seen from the +Y (celestial north) axis; season
// markers and direction arrows depend on this sign, so it must not be
// flipped.
func Position(phase, radius float64) mgl64.Vec3 {
	a := phase * 2 * math.Pi
	return mgl64.Vec3{radius * math.Cos(a), 0, -radius * math.Sin(a)}
}

// TangentRotation returns the rotation about Y (radians) that aligns a
// marker with the direction of travel at the given orbital angle
// (radians). It is the atan2 of the position derivative
// (-sin a, 0, -cos a).
func TangentRotation(angleRad float64) float64 {
	return math.Atan2(-math.Cos(angleRad), -math.Sin(angleRad))
}

// AnchorLatitude returns the subsolar latitude the season anchors promise
// for a given phase: -Obliquity at phase 0, 0 at the equinoxes,
// +Obliquity at phase 0.5. It is the phase-domain view of the same
// sinusoid SubsolarLatitude computes in the day domain.
func AnchorLatitude(phase float64) float64 {
	return -Obliquity * math.Cos(angle.Deg2Rad(phase * 360.0))
}
