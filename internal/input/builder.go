// internal/input/builder.go
package input

import (
	"fmt"
	"math/rand"
	"time"

	cfg "github.com/tamzrod/plcsim/internal/config"
)

// Build constructs the configured input source and wires any client
// lifecycle behind the returned closer. Selection is runtime config,
// not a build target.
func Build(in cfg.InputConfig) (Source, func() error, error) {
	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	noClose := func() error { return nil }

	switch in.Mode {
	case cfg.ModeBench:
		return NewBench(rng), noClose, nil

	case cfg.ModeSim:
		return NewSim(rng, in.SquarePeriod, in.StopFile), noClose, nil

	case cfg.ModeModbus:
		src, closeFn, err := NewModbus(ModbusConfig{
			Endpoint: in.Modbus.Endpoint,
			UnitID:   in.Modbus.UnitID,
			Timeout:  time.Duration(in.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, nil, err
		}
		return src, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("input: unknown mode %q", in.Mode)
	}
}
