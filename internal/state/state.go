// internal/state/state.go
package state

// Fixed image sizes. These model the device memory map and MUST NOT be
// configurable.
const (
	MaxInputs    = 16
	MaxOutputs   = 16
	MaxRegisters = 256
)

// ---- RESERVED REGISTER ADDRESSES ----

const (
	RegSetpoint       = 0   // temperature setpoint
	RegAlarmThreshold = 1   // high-temperature alarm threshold
	RegTimerPreset    = 2   // timer preset
	RegDeviceID       = 10  // device identifier
	RegCycleLow       = 20  // low 16 bits of the cycle counter
	RegTempMirror     = 100 // diagnostic copy of input[0]
	RegHeaterMirror   = 101 // diagnostic copy of output[0]
)

// ErrHighTemp is bit 0 of the error flags.
const ErrHighTemp uint8 = 0x01

// State is the process image: inputs, outputs, registers and error flags.
// It is owned by the scan engine and mutated only inside a cycle's
// sequential phases, so it carries no locking.
type State struct {
	Running    bool
	CycleCount uint32

	Inputs    [MaxInputs]uint16
	Outputs   [MaxOutputs]uint16
	Registers [MaxRegisters]uint16

	ErrorCodes uint8

	// LastError is part of the device memory map but no rung writes it.
	LastError string
}

// New returns a zeroed process image.
func New() *State {
	return &State{}
}

// LoadProgram seeds the register defaults the control program ships with.
func (s *State) LoadProgram() {
	s.Registers[RegSetpoint] = 100
	s.Registers[RegAlarmThreshold] = 50
	s.Registers[RegTimerPreset] = 1000
	s.Registers[RegDeviceID] = 0x1234
}

// ---- BOUNDS-CHECKED ACCESS ----

// Input returns inputs[n]. ok is false when n is out of range.
func (s *State) Input(n int) (uint16, bool) {
	if n < 0 || n >= MaxInputs {
		return 0, false
	}
	return s.Inputs[n], true
}

// Output returns outputs[n]. ok is false when n is out of range.
func (s *State) Output(n int) (uint16, bool) {
	if n < 0 || n >= MaxOutputs {
		return 0, false
	}
	return s.Outputs[n], true
}

// Register returns registers[n]. ok is false when n is out of range.
func (s *State) Register(n int) (uint16, bool) {
	if n < 0 || n >= MaxRegisters {
		return 0, false
	}
	return s.Registers[n], true
}
