// internal/input/sim.go
package input

import (
	"math"
	"math/rand"
	"os"
)

// Sim is the process-simulation source: a slow temperature sinusoid with
// noise, a configurable square wave, an operator stop override via a
// sentinel file, and a bounded pressure random walk.
type Sim struct {
	rng          *rand.Rand
	squarePeriod uint32
	stopPath     string
	pressure     int
}

// NewSim creates a simulation source. squarePeriod is the full period of
// the cycle input in scan cycles; stopPath is the sentinel file whose
// presence forces run enable low (empty disables the override).
func NewSim(rng *rand.Rand, squarePeriod uint32, stopPath string) *Sim {
	if squarePeriod < 2 {
		squarePeriod = 200
	}
	return &Sim{
		rng:          rng,
		squarePeriod: squarePeriod,
		stopPath:     stopPath,
		pressure:     500,
	}
}

func (s *Sim) Scan(cycle uint32) ([ActivePoints]uint16, error) {
	var in [ActivePoints]uint16

	// Temperature: slow sinusoid around 750 plus noise, held in the
	// sensor's plausible band.
	temp := 750.0 + 2.0*math.Sin(float64(cycle)/100.0) + float64(s.rng.Intn(11)-5)
	in[0] = uint16(clamp(int(temp), 600, 900))

	// Cycle input square wave, 50% duty.
	if cycle%s.squarePeriod < s.squarePeriod/2 {
		in[1] = 1
	}

	// Run enable, forced low while the stop marker exists.
	in[2] = 1
	if s.stopPath != "" {
		if _, err := os.Stat(s.stopPath); err == nil {
			in[2] = 0
		}
	}

	// Pressure: +-3 random walk, bounded.
	s.pressure = clamp(s.pressure+s.rng.Intn(7)-3, 400, 600)
	in[3] = uint16(s.pressure)

	return in, nil
}
