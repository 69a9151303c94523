// Package angle provides the degree/radian helpers, normalization,
// degree-minute formatting and compass classification shared by the orbit,
// sun and shadow models. Everything takes and returns degrees unless the
// name says otherwise.
package angle

import (
	"fmt"
	"math"
)

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// Normalize360 wraps d into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Clamp1 limits v to [-1, 1] before feeding it to asin/acos, so floating
// point noise at the domain edge cannot produce NaN.
func Clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// zeroBand is the magnitude below which a value counts as exactly on the
// equator / prime meridian and never receives a hemisphere suffix.
const zeroBand = 0.01

// FormatDegMin renders |v| as whole degrees and minutes, with minutes
// rounded to the nearest whole minute. When rounding carries (59.6′ → 60′)
// the degree part is bumped and minutes reset to zero, so "12°60′" cannot
// occur. pos/neg are the hemisphere suffixes for the sign of v; pass empty
// strings to suppress them.
func FormatDegMin(v float64, pos, neg string) string {
	abs := math.Abs(v)
	deg := int(math.Floor(abs))
	min := int(math.Round((abs - math.Floor(abs)) * 60))
	if min == 60 {
		deg++
		min = 0
	}

	s := fmt.Sprintf("%d°%d′", deg, min)
	if abs < zeroBand || pos == "" {
		return s
	}
	if v >= 0 {
		return s + pos
	}
	return s + neg
}

// compassPoints runs clockwise from north in 45° steps.
var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass returns the 8-point compass label for an azimuth in degrees
// (any magnitude; normalized first). Sectors are 45° wide and centred on
// each point, half-open on the low edge, so N covers
// [337.5, 360) ∪ [0, 22.5) and 22.5 is the first NE azimuth.
func Compass(azimuthDeg float64) string {
	a := Normalize360(azimuthDeg)
	idx := int(math.Floor((a+22.5)/45.0)) % 8
	return compassPoints[idx]
}
