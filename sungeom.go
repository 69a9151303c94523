// Package sungeom converts calendar, clock and latitude inputs into solar
// geometry for interactive teaching visualizations: subsolar latitude,
// sun altitude and azimuth, shadow length and direction, and 3D/2D
// projection coordinates.
//
// The public API is a thin, stable layer over the internal models:
//
//   - internal/orbit: day-of-year → subsolar latitude, revolution phase →
//     orbital-circle position
//   - internal/sun: horizon-coordinate transform (altitude, azimuth)
//   - internal/shadow and internal/geom: shadow geometry and projections
//
// Angles cross the API in degrees unless a name says otherwise. Every
// function is pure: no I/O, no internal state, safe to call concurrently.
// Presentation layers (renderers, UI controls) sit entirely on top;
// animation over time is the caller's loop feeding these functions.
package sungeom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/swingboat/sungeom/internal/angle"
	"github.com/swingboat/sungeom/internal/geom"
	"github.com/swingboat/sungeom/internal/orbit"
	"github.com/swingboat/sungeom/internal/shadow"
	"github.com/swingboat/sungeom/internal/solver"
	"github.com/swingboat/sungeom/internal/sun"
)

// Obliquity is the axial tilt used throughout, in degrees (23°26′). The
// subsolar latitude stays within ±Obliquity.
const Obliquity = orbit.Obliquity

// Season anchors on the revolution phase: phase 0 is the winter solstice,
// 0.25 the spring equinox, 0.5 the summer solstice, 0.75 the autumn
// equinox. OrbitalPhase keeps these aligned with SubsolarLatitude by
// construction.
const (
	PhaseWinterSolstice = orbit.PhaseWinterSolstice
	PhaseSpringEquinox  = orbit.PhaseSpringEquinox
	PhaseSummerSolstice = orbit.PhaseSummerSolstice
	PhaseAutumnEquinox  = orbit.PhaseAutumnEquinox
)

// MinShadowAltitude is the sun altitude (degrees) at or below which a
// shadow no longer has a finite length.
const MinShadowAltitude = shadow.MinAltitude

// SolarPosition is the sun's horizon coordinates for one observer and
// instant.
type SolarPosition struct {
	Altitude float64 // degrees above the horizon, clamped to [0, 90]
	Azimuth  float64 // degrees clockwise from true north, [0, 360)
}

// Shadow is the shadow cast by an upright object under a SolarPosition.
type Shadow struct {
	Length    float64 // same unit as the object height; +Inf when Infinite
	Direction float64 // degrees clockwise from north
	Infinite  bool    // sun at or below MinShadowAltitude; no finite length
}

// SolarDay summarises one calendar day at one latitude in local solar
// time. HasSunrise / HasSunset indicate whether the corresponding horizon
// crossing exists on this day (high latitudes can be weird).
type SolarDay struct {
	Sunrise float64 // local solar clock hours of the upward crossing
	Sunset  float64 // local solar clock hours of the downward crossing

	HasSunrise bool
	HasSunset  bool

	// PolarDay / PolarNight are set when the sun never crosses the
	// horizon at all: always above, or always below.
	PolarDay   bool
	PolarNight bool
}

// DaylightHours returns the hours of daylight this day. Polar day is 24,
// polar night 0; a day with a single crossing integrates to the day edge.
func (d SolarDay) DaylightHours() float64 {
	switch {
	case d.PolarDay:
		return 24
	case d.PolarNight:
		return 0
	case d.HasSunrise && d.HasSunset:
		return d.Sunset - d.Sunrise
	case d.HasSunrise:
		return 24 - d.Sunrise
	case d.HasSunset:
		return d.Sunset
	}
	return 0
}

// -----------------------------
// Angular utilities
// -----------------------------

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return angle.Deg2Rad(deg) }

// RadToDeg converts radians to degrees. Exact inverse of DegToRad.
func RadToDeg(rad float64) float64 { return angle.Rad2Deg(rad) }

// FormatDegreeMinute renders a latitude-like value as degrees and rounded
// minutes, e.g. 23.4333 → "23°26′N". When includeDirection is true, an
// N/S suffix follows the sign; magnitudes below 0.01° count as the
// equator and never get one. Minutes rounding to 60 carries into the
// degree part.
func FormatDegreeMinute(valueDeg float64, includeDirection bool) string {
	if !includeDirection {
		return angle.FormatDegMin(valueDeg, "", "")
	}
	return angle.FormatDegMin(valueDeg, "N", "S")
}

// FormatLongitude is FormatDegreeMinute for longitude contexts: E/W
// suffixes, prime meridian below 0.01° unsuffixed.
func FormatLongitude(valueDeg float64) string {
	return angle.FormatDegMin(valueDeg, "E", "W")
}

// CompassDirection classifies an azimuth into one of the 8 compass points
// N, NE, E, SE, S, SW, W, NW. Sectors are 45° wide and centred on each
// point.
func CompassDirection(azimuthDeg float64) string {
	return angle.Compass(azimuthDeg)
}

// -----------------------------
// Orbital position model
// -----------------------------

// SubsolarLatitude returns the latitude (degrees) where the sun is
// overhead at solar noon on the given day of year, via the Cooper
// sinusoid Obliquity·sin(2π(284+d)/365). An approximation by design,
// good to about a degree; see internal/orbit.
func SubsolarLatitude(dayOfYear int) float64 {
	return orbit.SubsolarLatitude(dayOfYear)
}

// OrbitalPhase derives the revolution phase in [0, 1) from the day of
// year, phase 0 at the winter solstice. This is the single source of
// truth tying the drawn orbit to the declination curve.
func OrbitalPhase(dayOfYear int) float64 {
	return orbit.PhaseForDay(dayOfYear)
}

// OrbitalPosition returns the 3D point at the given phase on the orbital
// circle of the given radius. Motion is counterclockwise seen from the +Y
// (celestial north) axis; dependent visualizations assume this sign.
func OrbitalPosition(phase, radius float64) mgl64.Vec3 {
	return orbit.Position(phase, radius)
}

// OrbitTangentRotation returns the rotation about Y (radians) aligning a
// marker with the orbit's direction of travel at the given orbital angle
// (radians).
func OrbitTangentRotation(angleRad float64) float64 {
	return orbit.TangentRotation(angleRad)
}

// -----------------------------
// Solar position model
// -----------------------------

// HourAngleFromLocalTime converts local solar clock hours to the hour
// angle in degrees: 15° per hour, 0 at noon, negative before noon.
func HourAngleFromLocalTime(clockHours float64) float64 {
	return sun.HourAngle(clockHours)
}

// SunAltitude returns the sun's altitude in degrees, floored at 0 (a
// below-horizon sun reads exactly 0, never negative). Use SolarDayFor to
// tell day from night.
func SunAltitude(observerLat, subsolarLat, hourAngle float64) float64 {
	return sun.Altitude(observerLat, subsolarLat, hourAngle)
}

// SunAzimuth returns the sun's bearing in degrees clockwise from true
// north, [0, 360), with the near-zenith guard and afternoon mirror
// described in internal/sun.
func SunAzimuth(observerLat, subsolarLat, hourAngle float64) float64 {
	return sun.Azimuth(observerLat, subsolarLat, hourAngle)
}

// PositionAt runs the full pipeline for an observer latitude, day of year
// and local solar clock time: day → subsolar latitude → hour angle →
// altitude and azimuth.
func PositionAt(observerLat float64, dayOfYear int, clockHours float64) SolarPosition {
	decl := orbit.SubsolarLatitude(dayOfYear)
	h := sun.HourAngle(clockHours)
	return SolarPosition{
		Altitude: sun.Altitude(observerLat, decl, h),
		Azimuth:  sun.Azimuth(observerLat, decl, h),
	}
}

// -----------------------------
// Shadow & projection derivation
// -----------------------------

// ShadowDirection returns the bearing a shadow points: opposite the sun's
// azimuth, (az + 180) mod 360, at any altitude.
func ShadowDirection(sunAzimuth float64) float64 {
	return shadow.Direction(sunAzimuth)
}

// ShadowLength returns the shadow length of an object of the given
// height. At or below MinShadowAltitude the result is (+Inf, false):
// no finite shadow, display clamping is the caller's decision.
func ShadowLength(objectHeight, sunAltitude float64) (length float64, ok bool) {
	return shadow.Length(objectHeight, sunAltitude)
}

// ShadowOf derives the complete shadow of an upright object under pos.
func ShadowOf(objectHeight float64, pos SolarPosition) Shadow {
	length, ok := shadow.Length(objectHeight, pos.Altitude)
	return Shadow{
		Length:    length,
		Direction: shadow.Direction(pos.Azimuth),
		Infinite:  !ok,
	}
}

// SphericalToCartesian converts an (altitude, azimuth) direction at the
// given distance into a 3D point in the same counterclockwise/north-fixed
// frame as OrbitalPosition, so sun and orbit share one coordinate system.
func SphericalToCartesian(altitudeDeg, azimuthDeg, distance float64) mgl64.Vec3 {
	return geom.SphericalToCartesian(altitudeDeg, azimuthDeg, distance)
}

// LatitudeToSphere projects a latitude onto a sphere of the given radius:
// height along the rotation axis and the radius of the parallel ring,
// used to draw the equator, tropics and polar circles.
func LatitudeToSphere(latitudeDeg, radius float64) (height, ringRadius float64) {
	return geom.LatitudeToSphere(latitudeDeg, radius)
}

// -----------------------------
// Daylight derivation
// -----------------------------

// SolarDayFor finds sunrise and sunset in local solar time for the given
// latitude and day of year, searching the unclamped altitude for horizon
// crossings. Days without any crossing are classified as polar day or
// polar night from the noon altitude.
func SolarDayFor(observerLat float64, dayOfYear int) SolarDay {
	decl := orbit.SubsolarLatitude(dayOfYear)

	altFunc := func(clockHours float64) float64 {
		return sun.AltitudeUnclamped(observerLat, decl, sun.HourAngle(clockHours))
	}

	const (
		steps = 48        // samples across the day (every 30 minutes)
		tol   = 1.0 / 120 // 30 seconds, in hours
	)

	var d SolarDay

	rise := solver.FindAltitudeEvent(altFunc, 0, 24, 0, solver.CrossingUp, steps, tol)
	if rise.OK {
		d.Sunrise = rise.ClockHours
		d.HasSunrise = true
	}

	set := solver.FindAltitudeEvent(altFunc, 0, 24, 0, solver.CrossingDown, steps, tol)
	if set.OK {
		d.Sunset = set.ClockHours
		d.HasSunset = true
	}

	if !d.HasSunrise && !d.HasSunset {
		if altFunc(12) > 0 {
			d.PolarDay = true
		} else {
			d.PolarNight = true
		}
	}

	return d
}

// DaylightHours returns the hours of daylight at the given latitude and
// day of year. Convenience over SolarDayFor.
func DaylightHours(observerLat float64, dayOfYear int) float64 {
	return SolarDayFor(observerLat, dayOfYear).DaylightHours()
}
