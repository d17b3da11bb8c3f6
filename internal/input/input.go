// internal/input/input.go
package input

// ActivePoints is the number of input slots the simulated I/O layer
// drives each cycle. The remaining slots of the image stay reserved.
const ActivePoints = 4

// Source produces one set of synthetic sensor readings per scan cycle.
//
// Scan returns the readings for inputs 0..3. A non-nil error means the
// source could not refresh this cycle; the returned values are still
// valid (last known good) and the cycle must proceed with them.
type Source interface {
	Scan(cycle uint32) ([ActivePoints]uint16, error)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
