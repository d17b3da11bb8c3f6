// internal/config/config.go
package config

// Input source modes. The legacy build selected these with preprocessor
// flags; here they are plain configuration.
const (
	ModeBench  = "bench"
	ModeSim    = "sim"
	ModeModbus = "modbus"
)

type Config struct {
	PLC PLCConfig `yaml:"plc"`
}

type PLCConfig struct {
	DeviceName  string `yaml:"device_name"`
	ControlPort int    `yaml:"control_port"`
	StatusPort  int    `yaml:"status_port"`

	// Backlog models the legacy single-pending-connection listen queue.
	Backlog int `yaml:"backlog"`

	CycleMs int    `yaml:"cycle_ms"`
	LogPath string `yaml:"log_path"`

	// DiagLog, when set, mirrors diagnostic output into a file next to
	// the console sink.
	DiagLog string `yaml:"diag_log"`

	Input InputConfig `yaml:"input"`
}

// ---- INPUT SOURCE ----

type InputConfig struct {
	Mode string `yaml:"mode"`

	// Seed for the pseudo-random source; 0 means time-based.
	Seed int64 `yaml:"seed"`

	// Sim mode only.
	SquarePeriod uint32 `yaml:"square_period"`
	StopFile     string `yaml:"stop_file"`

	// Modbus mode only.
	Modbus ModbusConfig `yaml:"modbus"`
}

type ModbusConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Default returns the compiled-in configuration the legacy device
// shipped with. Downstream tooling depends on these values.
func Default() *Config {
	return &Config{
		PLC: PLCConfig{
			DeviceName:  "LEGACY-PLC",
			ControlPort: 9001,
			StatusPort:  9002,
			Backlog:     1,
			CycleMs:     100,
			LogPath:     "/tmp/plc_data.log",
			Input: InputConfig{
				Mode:         ModeBench,
				SquarePeriod: 200,
				StopFile:     "/tmp/plc_stop",
			},
		},
	}
}
