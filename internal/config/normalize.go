// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.PLC

	// Device name is part of the status document; keep it to the
	// legacy 16-character panel width.
	if len(p.DeviceName) > 16 {
		p.DeviceName = p.DeviceName[:16]
	}

	// A sensible wire timeout even when the file says 0.
	if p.Input.Mode == ModeModbus && p.Input.Modbus.TimeoutMs == 0 {
		p.Input.Modbus.TimeoutMs = 500
	}
}
