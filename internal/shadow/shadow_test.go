package shadow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposition(t *testing.T) {
	assert.InDelta(t, 180, Direction(0), 1e-12)
	assert.InDelta(t, 0, Direction(180), 1e-12)
	assert.InDelta(t, 90, Direction(270), 1e-12)

	// Opposition twice is the identity, for any azimuth.
	for a := 0.0; a < 360.0; a += 2.5 {
		require.InDelta(t, a, Direction(Direction(a)), 1e-9, "azimuth %v", a)
	}
}

func TestLength(t *testing.T) {
	// 45° sun: shadow equals the object height.
	l, ok := Length(1.0, 45)
	require.True(t, ok)
	assert.InDelta(t, 1.0, l, 1e-12)

	// Overhead sun: no shadow to speak of.
	l, ok = Length(1.0, 90)
	require.True(t, ok)
	assert.InDelta(t, 0, l, 1e-12)

	// Taller object, same geometry.
	l, ok = Length(2.5, 45)
	require.True(t, ok)
	assert.InDelta(t, 2.5, l, 1e-12)
}

func TestLengthNoFiniteShadow(t *testing.T) {
	// At or below the threshold the length is infinite and flagged;
	// no stand-in finite value is ever produced.
	for _, alt := range []float64{1.0, 0.5, 0.0, -3.0} {
		l, ok := Length(1.0, alt)
		require.False(t, ok, "altitude %v", alt)
		require.True(t, math.IsInf(l, 1), "altitude %v", alt)
	}

	// Just above the threshold the shadow is long but finite.
	l, ok := Length(1.0, 1.01)
	require.True(t, ok)
	assert.Greater(t, l, 50.0)
	assert.False(t, math.IsInf(l, 1))
}

func TestLengthGrowsTowardHorizon(t *testing.T) {
	prev := 0.0
	for alt := 89.0; alt > MinAltitude; alt -= 1 {
		l, ok := Length(1.0, alt)
		require.True(t, ok)
		require.Greater(t, l, prev, "altitude %v", alt)
		prev = l
	}
}
