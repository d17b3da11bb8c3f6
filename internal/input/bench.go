// internal/input/bench.go
package input

import (
	"math/rand"
)

// Bench is the bench-test source: flat temperature with uniform noise,
// a fixed square wave, run enable held on, and a drifting pressure base.
type Bench struct {
	rng      *rand.Rand
	pressure int
}

// NewBench creates a bench source. The caller owns the seed choice.
func NewBench(rng *rand.Rand) *Bench {
	return &Bench{
		rng:      rng,
		pressure: 500,
	}
}

func (b *Bench) Scan(cycle uint32) ([ActivePoints]uint16, error) {
	var in [ActivePoints]uint16

	// Temperature sensor, raw ADC counts.
	in[0] = uint16(750 + b.rng.Intn(100))

	// Square wave, period 200 cycles, 50% duty.
	if cycle%200 < 100 {
		in[1] = 1
	}

	// Run enable, always on.
	in[2] = 1

	// Pressure sensor with a +-1 random walk.
	b.pressure += b.rng.Intn(3) - 1
	in[3] = uint16(b.pressure)

	return in, nil
}
