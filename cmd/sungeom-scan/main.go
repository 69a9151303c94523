// Command sungeom-scan sweeps a full year of the solar model at one
// latitude and reports the declination extremes (solstices), the zero
// crossings (equinoxes) and daylight statistics. Useful for eyeballing
// the model while tuning visualizations; -csv dumps the raw curve.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/swingboat/sungeom"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

type dayRow struct {
	day      int
	decl     float64
	phase    float64
	daylight float64
	noonAlt  float64
}

func main() {
	log.SetFlags(0)

	lat := flag.Float64("lat", 39.9, "observer latitude in degrees (north positive)")
	csvPath := flag.String("csv", "", "write the per-day curve to this CSV file")
	flag.Parse()

	rows := make([]dayRow, 0, 365)
	var daylight stats

	for day := 1; day <= 365; day++ {
		pos := sungeom.PositionAt(*lat, day, 12)
		row := dayRow{
			day:      day,
			decl:     sungeom.SubsolarLatitude(day),
			phase:    sungeom.OrbitalPhase(day),
			daylight: sungeom.DaylightHours(*lat, day),
			noonAlt:  pos.Altitude,
		}
		rows = append(rows, row)
		daylight.add(row.daylight)
	}

	summer, winter := extremeDays(rows)
	spring, autumn := zeroCrossings(rows)

	fmt.Printf("Year scan at lat=%s\n\n", sungeom.FormatDegreeMinute(*lat, true))
	fmt.Printf("Summer solstice: day %3d (subsolar %s)\n", summer, sungeom.FormatDegreeMinute(rows[summer-1].decl, true))
	fmt.Printf("Winter solstice: day %3d (subsolar %s)\n", winter, sungeom.FormatDegreeMinute(rows[winter-1].decl, true))
	fmt.Printf("Spring equinox:  day %3d\n", spring)
	fmt.Printf("Autumn equinox:  day %3d\n", autumn)
	fmt.Printf("\nDaylight hours: min %.2f  avg %.2f  max %.2f\n",
		daylight.min, daylight.avg(), daylight.max)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			log.Fatalf("writing CSV: %v", err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(rows), *csvPath)
	}
}

// extremeDays returns the days of maximum and minimum subsolar latitude.
func extremeDays(rows []dayRow) (summer, winter int) {
	summer, winter = 1, 1
	for _, r := range rows {
		if r.decl > rows[summer-1].decl {
			summer = r.day
		}
		if r.decl < rows[winter-1].decl {
			winter = r.day
		}
	}
	return summer, winter
}

// zeroCrossings returns the days nearest the upward (spring) and downward
// (autumn) zero crossings of the declination curve.
func zeroCrossings(rows []dayRow) (spring, autumn int) {
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.decl < 0 && cur.decl >= 0 {
			spring = cur.day
		}
		if prev.decl > 0 && cur.decl <= 0 {
			autumn = cur.day
		}
	}
	return spring, autumn
}

func writeCSV(path string, rows []dayRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "subsolar_lat", "phase", "daylight_hours", "noon_altitude"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.day),
			strconv.FormatFloat(r.decl, 'f', 4, 64),
			strconv.FormatFloat(r.phase, 'f', 4, 64),
			strconv.FormatFloat(r.daylight, 'f', 2, 64),
			strconv.FormatFloat(r.noonAlt, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}
