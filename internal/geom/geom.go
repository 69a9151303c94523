// Package geom projects angular quantities into the Cartesian frame
// shared with the orbit model: +Y toward celestial north, azimuth turning
// clockwise from the -Z (north) direction, counterclockwise motion when
// seen from +Y.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/swingboat/sungeom/internal/angle"
)

// SphericalToCartesian converts an (altitude, azimuth) direction at the
// given distance into a 3D point. Altitude 90° maps to (0, d, 0); an
// azimuth of 0 on the horizon maps to (0, 0, -d).
func SphericalToCartesian(altitudeDeg, azimuthDeg, distance float64) mgl64.Vec3 {
	cosAlt := angle.CosD(altitudeDeg)
	return mgl64.Vec3{
		distance * cosAlt * angle.SinD(azimuthDeg),
		distance * angle.SinD(altitudeDeg),
		-distance * cosAlt * angle.CosD(azimuthDeg),
	}
}

// LatitudeToSphere projects a latitude onto a sphere's rotation axis:
// height along the axis and the radius of the parallel ring at that
// latitude. Used to place the equator, tropics and polar circles.
func LatitudeToSphere(latitudeDeg, radius float64) (height, ringRadius float64) {
	return radius * angle.SinD(latitudeDeg), radius * angle.CosD(latitudeDeg)
}
