package angle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegRadRoundTrip(t *testing.T) {
	for d := -720.0; d <= 720.0; d += 0.37 {
		got := Rad2Deg(Deg2Rad(d))
		require.InDelta(t, d, got, 1e-9, "round trip of %v", d)
	}
}

func TestNormalize360(t *testing.T) {
	assert.InDelta(t, 0, Normalize360(0), 1e-12)
	assert.InDelta(t, 0, Normalize360(360), 1e-12)
	assert.InDelta(t, 0, Normalize360(720), 1e-12)
	assert.InDelta(t, 315, Normalize360(-45), 1e-12)
	assert.InDelta(t, 1.5, Normalize360(361.5), 1e-9)
}

func TestCompass(t *testing.T) {
	tests := []struct {
		azimuth float64
		want    string
	}{
		{0, "N"},
		{360, "N"},
		{22.4, "N"},
		{22.5, "NE"}, // first NE azimuth: sector edge is half-open on the low side
		{44.9, "NE"},
		{45.1, "NE"},
		{67.5, "E"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "N"}, // wraparound sector split across 0
		{359.9, "N"},
		{-45, "NW"}, // normalized first
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compass(tt.azimuth), "Compass(%v)", tt.azimuth)
	}
}

func TestFormatDegMin(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		pos  string
		neg  string
		want string
	}{
		{"tropic of cancer", 23.4333, "N", "S", "23°26′N"},
		{"southern latitude", -39.9, "N", "S", "39°54′S"},
		{"no suffixes requested", 23.4333, "", "", "23°26′"},
		{"longitude east", 116.4, "E", "W", "116°24′E"},
		{"near equator treated as zero", 0.005, "N", "S", "0°0′"},
		{"near equator negative", -0.009, "N", "S", "0°0′"},
		{"minutes round up with carry", -12.9993, "N", "S", "13°0′S"},
		{"minutes round up without carry", 10.49999, "N", "S", "10°30′N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDegMin(tt.v, tt.pos, tt.neg))
		})
	}
}
