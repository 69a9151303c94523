package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/swingboat/sungeom"
	"github.com/swingboat/sungeom/internal/places"
)

func main() {
	log.SetFlags(0)

	// - If no args or first arg starts with "-", run position mode (default).
	// - Otherwise treat the first arg as a subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runPosition(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "daylight":
		runDaylight(os.Args[2:])
	case "arc":
		runArc(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `sungeom – solar geometry for a date, time and latitude

Usage:
  sungeom [flags]            # sun position + shadow (default mode)
  sungeom daylight [flags]   # sunrise/sunset and daylight hours
  sungeom arc [flags]        # hourly altitude/azimuth table for a day

Default mode flags (position):
  -lat float
        observer latitude in degrees (north positive)
  -place string
        named place instead of -lat (e.g. beijing; see -places)
  -places string
        optional YAML file with extra named places
  -day int
        day of year 1-365 (default: today)
  -date string
        date in YYYY-MM-DD (alternative to -day)
  -time string
        local solar time, HH:MM or fractional hours (default "12:00")
  -height float
        object height for the shadow (default 1.0)
  -json
        output result as JSON

For the subcommands:
  sungeom daylight -h
  sungeom arc -h
`)
}

// ---------------------
// Shared flag helpers
// ---------------------

type locationFlags struct {
	lat        *float64
	place      *string
	placesFile *string
	day        *int
	date       *string
}

func addLocationFlags(fs *flag.FlagSet) *locationFlags {
	return &locationFlags{
		lat:        fs.Float64("lat", math.NaN(), "observer latitude in degrees (north positive)"),
		place:      fs.String("place", "", "named place instead of -lat"),
		placesFile: fs.String("places", "", "optional YAML file with extra named places"),
		day:        fs.Int("day", 0, "day of year 1-365 (default: today)"),
		date:       fs.String("date", "", "date in YYYY-MM-DD (alternative to -day)"),
	}
}

// resolve turns the flag set into a concrete latitude and day of year.
func (lf *locationFlags) resolve() (lat float64, dayOfYear int) {
	switch {
	case *lf.place != "":
		table := places.Default()
		if *lf.placesFile != "" {
			var err error
			table, err = places.Load(*lf.placesFile)
			if err != nil {
				log.Fatalf("loading places: %v", err)
			}
		}
		p, ok := places.Resolve(table, *lf.place)
		if !ok {
			log.Fatalf("unknown place %q", *lf.place)
		}
		lat = p.Lat
	case !math.IsNaN(*lf.lat):
		lat = *lf.lat
	default:
		log.Fatalf("need -lat or -place")
	}

	switch {
	case *lf.day != 0:
		dayOfYear = *lf.day
	case *lf.date != "":
		d, err := time.Parse("2006-01-02", *lf.date)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *lf.date, err)
		}
		dayOfYear = d.YearDay()
	default:
		dayOfYear = time.Now().YearDay()
	}

	return lat, dayOfYear
}

// parseClock accepts "HH:MM" or fractional hours like "13.5".
func parseClock(s string) (float64, error) {
	if h, m, ok := strings.Cut(s, ":"); ok {
		hh, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		mm, err := strconv.Atoi(m)
		if err != nil || mm < 0 || mm > 59 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		return float64(hh) + float64(mm)/60.0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return v, nil
}

// ---------------------
// Position (default) mode
// ---------------------

type positionOutput struct {
	Latitude    float64 `json:"latitude"`
	DayOfYear   int     `json:"day_of_year"`
	ClockHours  float64 `json:"clock_hours"`
	SubsolarLat float64 `json:"subsolar_latitude"`
	Altitude    float64 `json:"altitude"`
	Azimuth     float64 `json:"azimuth"`
	Compass     string  `json:"compass"`
	ShadowDir   float64 `json:"shadow_direction"`
	ShadowLen   float64 `json:"shadow_length,omitempty"`
	NoShadow    bool    `json:"no_finite_shadow,omitempty"`
}

func runPosition(args []string) {
	fs := flag.NewFlagSet("sungeom", flag.ExitOnError)

	lf := addLocationFlags(fs)
	timeS := fs.String("time", "12:00", "local solar time, HH:MM or fractional hours")
	height := fs.Float64("height", 1.0, "object height for the shadow")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sungeom [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	lat, day := lf.resolve()

	clock, err := parseClock(*timeS)
	if err != nil {
		log.Fatalf("invalid -time: %v", err)
	}

	pos := sungeom.PositionAt(lat, day, clock)
	sh := sungeom.ShadowOf(*height, pos)

	out := positionOutput{
		Latitude:    lat,
		DayOfYear:   day,
		ClockHours:  clock,
		SubsolarLat: sungeom.SubsolarLatitude(day),
		Altitude:    pos.Altitude,
		Azimuth:     pos.Azimuth,
		Compass:     sungeom.CompassDirection(pos.Azimuth),
		ShadowDir:   sh.Direction,
		NoShadow:    sh.Infinite,
	}
	if !sh.Infinite {
		out.ShadowLen = sh.Length
	}

	if *jsonOut {
		printJSON(out)
		return
	}

	fmt.Printf("Sun position for lat=%s day=%d at %s (local solar time)\n",
		sungeom.FormatDegreeMinute(lat, true), day, *timeS)
	fmt.Printf("Subsolar latitude: %s\n", sungeom.FormatDegreeMinute(out.SubsolarLat, true))
	fmt.Printf("Altitude:          %.2f°\n", pos.Altitude)
	fmt.Printf("Azimuth:           %.2f° (%s)\n", pos.Azimuth, out.Compass)
	if sh.Infinite {
		fmt.Printf("Shadow:            no finite shadow (sun at or below %.0f°)\n", sungeom.MinShadowAltitude)
	} else {
		fmt.Printf("Shadow:            %.3f long toward %.2f° (%s) for height %.2f\n",
			sh.Length, sh.Direction, sungeom.CompassDirection(sh.Direction), *height)
	}
}

// ---------------------
// Daylight subcommand
// ---------------------

type daylightOutput struct {
	Latitude      float64  `json:"latitude"`
	DayOfYear     int      `json:"day_of_year"`
	Sunrise       *float64 `json:"sunrise,omitempty"` // local solar hours
	Sunset        *float64 `json:"sunset,omitempty"`
	DaylightHours float64  `json:"daylight_hours"`
	PolarDay      bool     `json:"polar_day,omitempty"`
	PolarNight    bool     `json:"polar_night,omitempty"`
}

func runDaylight(args []string) {
	fs := flag.NewFlagSet("daylight", flag.ExitOnError)

	lf := addLocationFlags(fs)
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sungeom daylight [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	lat, day := lf.resolve()
	sd := sungeom.SolarDayFor(lat, day)

	out := daylightOutput{
		Latitude:      lat,
		DayOfYear:     day,
		DaylightHours: sd.DaylightHours(),
		PolarDay:      sd.PolarDay,
		PolarNight:    sd.PolarNight,
	}
	if sd.HasSunrise {
		out.Sunrise = &sd.Sunrise
	}
	if sd.HasSunset {
		out.Sunset = &sd.Sunset
	}

	if *jsonOut {
		printJSON(out)
		return
	}

	fmt.Printf("Daylight for lat=%s day=%d\n", sungeom.FormatDegreeMinute(lat, true), day)
	switch {
	case sd.PolarDay:
		fmt.Println("Polar day: the sun never sets.")
	case sd.PolarNight:
		fmt.Println("Polar night: the sun never rises.")
	default:
		if sd.HasSunrise {
			fmt.Printf("Sunrise:  %s\n", formatClock(sd.Sunrise))
		}
		if sd.HasSunset {
			fmt.Printf("Sunset:   %s\n", formatClock(sd.Sunset))
		}
	}
	fmt.Printf("Daylight: %.2f hours\n", out.DaylightHours)
}

// ---------------------
// Arc subcommand
// ---------------------

func runArc(args []string) {
	fs := flag.NewFlagSet("arc", flag.ExitOnError)

	lf := addLocationFlags(fs)
	height := fs.Float64("height", 1.0, "object height for the shadow column")
	step := fs.Float64("step", 1.0, "table step in hours")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sungeom arc [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}
	if *step <= 0 {
		log.Fatalf("-step must be positive")
	}

	lat, day := lf.resolve()

	fmt.Printf("Sun arc for lat=%s day=%d (subsolar %s)\n",
		sungeom.FormatDegreeMinute(lat, true), day,
		sungeom.FormatDegreeMinute(sungeom.SubsolarLatitude(day), true))
	fmt.Printf("%-6s %9s %9s %4s %10s\n", "time", "altitude", "azimuth", "dir", "shadow")

	for h := 0.0; h < 24.0+1e-9; h += *step {
		pos := sungeom.PositionAt(lat, day, h)
		sh := sungeom.ShadowOf(*height, pos)

		shadowCol := "inf"
		if !sh.Infinite {
			shadowCol = fmt.Sprintf("%.3f", sh.Length)
		}

		fmt.Printf("%-6s %8.2f° %8.2f° %4s %10s\n",
			formatClock(h), pos.Altitude, pos.Azimuth,
			sungeom.CompassDirection(pos.Azimuth), shadowCol)
	}
}

// ---------------------
// Shared helpers
// ---------------------

func formatClock(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
