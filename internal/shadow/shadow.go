// Package shadow derives shadow geometry from a solar position.
package shadow

import (
	"math"

	"github.com/swingboat/sungeom/internal/angle"
)

// MinAltitude is the practical lower bound (degrees) at or below which a
// shadow has no finite length.
const MinAltitude = 1.0

// Direction returns the bearing a shadow points, degrees clockwise from
// north: exactly opposite the sun's azimuth, at any altitude.
func Direction(sunAzimuthDeg float64) float64 {
	return angle.Normalize360(sunAzimuthDeg + 180.0)
}

// Length returns the shadow length of an object of the given height under
// a sun at sunAltitudeDeg. At or below MinAltitude the shadow is
// effectively infinite: Length returns (+Inf, false) and the caller
// chooses its own display clamp. No finite stand-in value is produced.
func Length(objectHeight, sunAltitudeDeg float64) (length float64, ok bool) {
	if sunAltitudeDeg <= MinAltitude {
		return math.Inf(1), false
	}
	return objectHeight / angle.TanD(sunAltitudeDeg), true
}
