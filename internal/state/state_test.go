// internal/state/state_test.go
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroInitialized(t *testing.T) {
	s := New()

	assert.False(t, s.Running)
	assert.Equal(t, uint32(0), s.CycleCount)
	assert.Equal(t, uint8(0), s.ErrorCodes)
	assert.Empty(t, s.LastError)

	for i := 0; i < MaxInputs; i++ {
		assert.Equal(t, uint16(0), s.Inputs[i])
	}
	for i := 0; i < MaxRegisters; i++ {
		assert.Equal(t, uint16(0), s.Registers[i])
	}
}

func TestLoadProgram_Defaults(t *testing.T) {
	s := New()
	s.LoadProgram()

	assert.Equal(t, uint16(100), s.Registers[RegSetpoint])
	assert.Equal(t, uint16(50), s.Registers[RegAlarmThreshold])
	assert.Equal(t, uint16(1000), s.Registers[RegTimerPreset])
	assert.Equal(t, uint16(0x1234), s.Registers[RegDeviceID])
}

func TestAccessors_Bounds(t *testing.T) {
	s := New()
	s.Inputs[3] = 42
	s.Outputs[15] = 1
	s.Registers[255] = 7

	v, ok := s.Input(3)
	require.True(t, ok)
	assert.Equal(t, uint16(42), v)

	v, ok = s.Output(15)
	require.True(t, ok)
	assert.Equal(t, uint16(1), v)

	v, ok = s.Register(255)
	require.True(t, ok)
	assert.Equal(t, uint16(7), v)

	for _, n := range []int{-1, MaxInputs} {
		_, ok := s.Input(n)
		assert.False(t, ok, "input %d", n)
	}
	for _, n := range []int{-1, MaxOutputs} {
		_, ok := s.Output(n)
		assert.False(t, ok, "output %d", n)
	}
	for _, n := range []int{-1, MaxRegisters} {
		_, ok := s.Register(n)
		assert.False(t, ok, "register %d", n)
	}
}
