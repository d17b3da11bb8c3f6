// internal/input/modbus.go
package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// RegisterReader is the exact Modbus surface this source uses.
// Geometry only: four input registers starting at address 0.
type RegisterReader interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
}

// Modbus reads the active input points from an upstream Modbus TCP
// device. One read attempt per cycle, no retries; a failed read holds
// the last good values so the scan cycle is never stalled by the wire.
type Modbus struct {
	client RegisterReader
	held   [ActivePoints]uint16
}

// ModbusConfig is the minimal transport config for the upstream device.
type ModbusConfig struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// NewModbus dials the upstream device. Fails fast at startup; after
// that, transport errors are reported per cycle, never fatal.
func NewModbus(cfg ModbusConfig) (*Modbus, func() error, error) {
	if cfg.Endpoint == "" {
		return nil, nil, errors.New("modbus source: endpoint required")
	}

	handler := modbus.NewTCPClientHandler(cfg.Endpoint)
	handler.Timeout = cfg.Timeout
	handler.SlaveId = byte(cfg.UnitID)

	if err := handler.Connect(); err != nil {
		return nil, nil, fmt.Errorf("modbus source: connect %s: %w", cfg.Endpoint, err)
	}

	m := &Modbus{client: modbus.NewClient(handler)}
	return m, handler.Close, nil
}

// newModbusWithClient is the test seam.
func newModbusWithClient(client RegisterReader) *Modbus {
	return &Modbus{client: client}
}

func (m *Modbus) Scan(cycle uint32) ([ActivePoints]uint16, error) {
	raw, err := m.client.ReadInputRegisters(0, ActivePoints)
	if err != nil {
		return m.held, fmt.Errorf("modbus source: read input registers: %w", err)
	}
	if len(raw) < 2*ActivePoints {
		return m.held, fmt.Errorf("modbus source: short payload: %d bytes", len(raw))
	}

	for i := 0; i < ActivePoints; i++ {
		m.held[i] = binary.BigEndian.Uint16(raw[2*i:])
	}
	return m.held, nil
}
