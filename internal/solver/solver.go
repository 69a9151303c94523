// Package solver finds the clock times at which the sun's altitude
// crosses a target value, with a bracket-then-bisect search over
// fractional local solar hours.
package solver

// AltitudeFunc returns the sun's altitude in degrees at a local solar
// clock time given in fractional hours.
type AltitudeFunc func(clockHours float64) float64

// EventType describes whether we are looking for a rising or setting event.
type EventType int

const (
	// CrossingUp means altitude is increasing through the target value (rise).
	CrossingUp EventType = iota
	// CrossingDown means altitude is decreasing through the target value (set).
	CrossingDown
)

// Result holds the output of an altitude event search.
type Result struct {
	ClockHours float64 // approximate clock time of the event
	OK         bool    // true if an event was found
}

// FindAltitudeEvent searches [startHours, endHours] for a clock time where
// the altitude function crosses targetDeg in the direction given by
// eventType. It samples `steps` points to bracket a sign change in
// (altitude - target), then bisects the bracket down to tolHours.
func FindAltitudeEvent(f AltitudeFunc, startHours, endHours, targetDeg float64, eventType EventType, steps int, tolHours float64) Result {
	if startHours >= endHours {
		return Result{OK: false}
	}
	if steps < 2 {
		steps = 2
	}

	interval := (endHours - startHours) / float64(steps-1)

	var (
		prevH   = startHours
		prevAlt = f(prevH) - targetDeg
	)

	for i := 1; i < steps; i++ {
		h := startHours + float64(i)*interval
		alt := f(h) - targetDeg

		if hasCrossing(prevAlt, alt, eventType) {
			// We have a bracket [prevH, h]
			return bisect(f, prevH, h, targetDeg, eventType, tolHours)
		}

		prevH, prevAlt = h, alt
	}

	// No crossing found.
	return Result{OK: false}
}

func hasCrossing(a1, a2 float64, eventType EventType) bool {
	switch eventType {
	case CrossingUp:
		// a1 < 0, a2 >= 0
		return a1 < 0 && a2 >= 0
	case CrossingDown:
		// a1 > 0, a2 <= 0
		return a1 > 0 && a2 <= 0
	default:
		// Generic sign change
		return a1*a2 <= 0
	}
}

func bisect(f AltitudeFunc, a, b, targetDeg float64, eventType EventType, tolHours float64) Result {
	var (
		altA = f(a) - targetDeg
		altB = f(b) - targetDeg
	)

	// Simple safety check
	if !hasCrossing(altA, altB, eventType) {
		return Result{OK: false}
	}

	for b-a > tolHours {
		mid := a + (b-a)/2
		altM := f(mid) - targetDeg

		if hasCrossing(altA, altM, eventType) {
			b = mid
			altB = altM
		} else {
			a = mid
			altA = altM
		}
	}

	return Result{
		ClockHours: a + (b-a)/2,
		OK:         true,
	}
}
