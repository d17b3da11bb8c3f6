// internal/logic/logic.go
package logic

import (
	"github.com/tamzrod/plcsim/internal/state"
)

// Execute runs the fixed rung sequence against the process image.
// Rungs are evaluated in program order; all operations are bounded
// integer arithmetic with no failure conditions.
func Execute(s *state.State) {
	// Rung 1: run enable
	runEnable := s.Inputs[2] == 1

	// Rung 2: heater control
	if runEnable && s.Inputs[0] < s.Registers[state.RegSetpoint] {
		s.Outputs[0] = 1
	} else {
		s.Outputs[0] = 0
	}

	// Rung 3: high temperature alarm
	if s.Inputs[0] > s.Registers[state.RegAlarmThreshold] {
		s.Outputs[1] = 1
		s.ErrorCodes |= state.ErrHighTemp
	} else {
		s.Outputs[1] = 0
		s.ErrorCodes &^= state.ErrHighTemp
	}

	// Rung 4: cycle counter register
	s.Registers[state.RegCycleLow] = uint16(s.CycleCount & 0xFFFF)

	// Rung 5: heartbeat LED
	if s.CycleCount%10 < 5 {
		s.Outputs[15] = 1
	} else {
		s.Outputs[15] = 0
	}
}

// Commit is the output update phase. Physical outputs have no backing
// hardware here, so it only refreshes the diagnostic mirror registers.
func Commit(s *state.State) {
	s.Registers[state.RegTempMirror] = s.Inputs[0]
	s.Registers[state.RegHeaterMirror] = s.Outputs[0]
}
