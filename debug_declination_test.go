package sungeom

import (
	"math"
	"testing"
)

// TestDebugDeclination logs the Cooper-sinusoid subsolar latitude against
// ephemeris-grade reference declinations across the year.
//
// It is intentionally *non-failing* and meant to be run manually as:
//
//	go test -run TestDebugDeclination -v
//
// Use the logged errors to judge whether the approximation is still good
// enough for the visualizations (it stays within ~1.3° all year).
func TestDebugDeclination(t *testing.T) {
	// Reference values (degrees) from standard ephemeris tables, for a
	// non-leap year.
	refs := []struct {
		day  int
		date string
		decl float64
	}{
		{1, "Jan 01", -23.06},
		{32, "Feb 01", -17.25},
		{60, "Mar 01", -7.80},
		{80, "Mar 21", 0.10},
		{121, "May 01", 15.05},
		{152, "Jun 01", 22.05},
		{172, "Jun 21", 23.44},
		{213, "Aug 01", 18.10},
		{244, "Sep 01", 8.30},
		{266, "Sep 23", -0.10},
		{305, "Nov 01", -14.35},
		{335, "Dec 01", -21.80},
		{355, "Dec 21", -23.44},
	}

	var worst float64
	for _, r := range refs {
		got := SubsolarLatitude(r.day)
		diff := got - r.decl
		if math.Abs(diff) > math.Abs(worst) {
			worst = diff
		}
		t.Logf("%s (day %3d): model %+7.2f°  ref %+7.2f°  diff %+5.2f°",
			r.date, r.day, got, r.decl, diff)
	}

	t.Logf("worst error: %+.2f°", worst)
}
