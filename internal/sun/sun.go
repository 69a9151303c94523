// Package sun implements the horizon-coordinate transform: observer
// latitude, subsolar latitude and hour angle in, altitude and azimuth out.
// All angles are degrees. Latitudes are expected in [-90, 90]; values
// outside that range are mathematically continued, not rejected.
package sun

import (
	"math"

	"github.com/swingboat/sungeom/internal/angle"
)

// zenithGuard is the cos(altitude) below which the sun counts as at the
// zenith and the azimuth bearing is undefined.
const zenithGuard = 0.001

// HourAngle converts local solar clock hours to the hour angle in degrees:
// 15° per hour, zero at local noon, negative before it. Times outside
// [0, 24] extrapolate linearly.
func HourAngle(clockHours float64) float64 {
	return (clockHours - 12.0) * 15.0
}

// Altitude returns the sun's altitude in degrees, floored at 0: a
// geometrically below-horizon sun reports exactly 0, never a negative
// value. Callers that need the sign to tell day from night must use
// AltitudeUnclamped instead.
func Altitude(latDeg, subsolarDeg, hourAngleDeg float64) float64 {
	alt := AltitudeUnclamped(latDeg, subsolarDeg, hourAngleDeg)
	if alt < 0 {
		return 0
	}
	return alt
}

// AltitudeUnclamped returns the geometric altitude including negative
// (below-horizon) values:
//
//	sin h = sin φ sin δ + cos φ cos δ cos H
func AltitudeUnclamped(latDeg, subsolarDeg, hourAngleDeg float64) float64 {
	sinAlt := angle.SinD(latDeg)*angle.SinD(subsolarDeg) +
		angle.CosD(latDeg)*angle.CosD(subsolarDeg)*angle.CosD(hourAngleDeg)
	return angle.Rad2Deg(math.Asin(angle.Clamp1(sinAlt)))
}

// Azimuth returns the sun's bearing in degrees clockwise from true north,
// in [0, 360). Near the zenith (cos(alt) < 0.001) the bearing is
// undefined and 0 is returned. The acos inversion is symmetric about the
// meridian, so afternoon hour angles (hourAngleDeg > 0) mirror the result
// to 360 - az.
func Azimuth(latDeg, subsolarDeg, hourAngleDeg float64) float64 {
	alt := AltitudeUnclamped(latDeg, subsolarDeg, hourAngleDeg)

	cosAlt := angle.CosD(alt)
	if cosAlt < zenithGuard {
		return 0
	}

	cosAz := (angle.SinD(subsolarDeg) - angle.SinD(latDeg)*angle.SinD(alt)) /
		(angle.CosD(latDeg) * cosAlt)
	az := angle.Rad2Deg(math.Acos(angle.Clamp1(cosAz)))

	if hourAngleDeg > 0 {
		az = 360.0 - az
	}
	return angle.Normalize360(az)
}
