// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	p := &cfg.PLC

	// ------------------------------------------------------------
	// DEVICE NAME (ASCII only, matches the status document surface)
	// ------------------------------------------------------------

	for i := 0; i < len(p.DeviceName); i++ {
		if p.DeviceName[i] > 0x7F {
			return fmt.Errorf("config: device_name must contain ASCII characters only")
		}
	}

	// ------------------------------------------------------------
	// NETWORK PORTS
	// ------------------------------------------------------------

	if p.ControlPort < 1 || p.ControlPort > 65535 {
		return fmt.Errorf("config: control_port %d out of range", p.ControlPort)
	}
	if p.StatusPort < 1 || p.StatusPort > 65535 {
		return fmt.Errorf("config: status_port %d out of range", p.StatusPort)
	}
	if p.ControlPort == p.StatusPort {
		return fmt.Errorf("config: control_port and status_port must differ (both %d)", p.ControlPort)
	}

	if p.Backlog < 1 {
		return fmt.Errorf("config: backlog must be >= 1, got %d", p.Backlog)
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	if p.CycleMs < 1 {
		return fmt.Errorf("config: cycle_ms must be >= 1, got %d", p.CycleMs)
	}

	// ------------------------------------------------------------
	// INPUT SOURCE
	// ------------------------------------------------------------

	switch p.Input.Mode {
	case ModeBench, ModeSim:
		// no further requirements
	case ModeModbus:
		if p.Input.Modbus.Endpoint == "" {
			return fmt.Errorf("config: input mode %q requires modbus.endpoint", ModeModbus)
		}
		if p.Input.Modbus.TimeoutMs < 0 {
			return fmt.Errorf("config: modbus.timeout_ms must be >= 0, got %d", p.Input.Modbus.TimeoutMs)
		}
	default:
		return fmt.Errorf("config: unknown input mode %q", p.Input.Mode)
	}

	if p.Input.Mode == ModeSim && p.Input.SquarePeriod < 2 {
		return fmt.Errorf("config: square_period must be >= 2, got %d", p.Input.SquarePeriod)
	}

	return nil
}
