// internal/statusproto/server_test.go
package statusproto

import (
	"encoding/json"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/plcsim/internal/logging"
	"github.com/tamzrod/plcsim/internal/state"
)

func info() Info {
	return Info{
		DeviceName: "LEGACY-PLC",
		Version:    "2.1.0",
		Mode:       "bench",
		CycleMs:    100,
	}
}

func image() *state.State {
	s := state.New()
	s.LoadProgram()
	s.Running = true
	s.CycleCount = 512
	s.Inputs[0] = 765
	s.Inputs[2] = 1
	s.Inputs[3] = 498
	s.Outputs[0] = 1
	s.Outputs[15] = 1
	s.ErrorCodes = 0x01
	s.Registers[state.RegCycleLow] = 512
	return s
}

func TestBuildDocument_FieldSet(t *testing.T) {
	doc := BuildDocument(info(), image(), time.Date(2004, 7, 15, 10, 30, 0, 0, time.UTC))

	assert.Equal(t, "LEGACY-PLC", doc.Device.Name)
	assert.Equal(t, "2.1.0", doc.Device.Version)
	assert.Equal(t, "bench", doc.Device.Mode)
	assert.Equal(t, uint32(512), doc.Device.UptimeCycles)

	assert.Equal(t, "RUNNING", doc.Status.State)
	assert.Equal(t, 100, doc.Status.ScanTimeMs)
	assert.Equal(t, "01", doc.Status.ErrorCodes)
	assert.Empty(t, doc.Status.LastError)

	assert.Equal(t, uint16(765), doc.Process.TemperatureInput)
	assert.Equal(t, uint16(1), doc.Process.RunEnable)
	assert.Equal(t, uint16(498), doc.Process.PressureInput)
	assert.Equal(t, uint16(1), doc.Process.HeaterOutput)
	assert.Equal(t, uint16(1), doc.Process.HeartbeatOutput)
	assert.Equal(t, uint16(100), doc.Process.Setpoint)
	assert.Equal(t, uint16(50), doc.Process.AlarmThreshold)
	assert.Equal(t, uint16(512), doc.Process.CycleCounterLow)
	assert.Equal(t, uint16(0x1234), doc.Process.DeviceID)

	assert.Equal(t, "plant_floor", doc.Network.Control.Segment)
	assert.Equal(t, "supervisory", doc.Network.Status.Segment)

	assert.Greater(t, doc.Resources.Goroutines, 0)
	assert.Equal(t, "2004-07-15 10:30:00", doc.Timestamp)
}

func TestBuildDocument_StoppedState(t *testing.T) {
	s := image()
	s.Running = false

	doc := BuildDocument(info(), s, time.Now())
	assert.Equal(t, "STOPPED", doc.Status.State)
}

// JSON key names are the published compatibility surface.
func TestDocument_StableJSONKeys(t *testing.T) {
	doc := BuildDocument(info(), image(), time.Now())
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	for _, key := range []string{
		`"device"`, `"status"`, `"process_data"`, `"network"`, `"resources"`, `"timestamp"`,
		`"name"`, `"version"`, `"mode"`, `"uptime_cycles"`,
		`"state"`, `"scan_time_ms"`, `"error_codes"`, `"last_error"`,
		`"temperature_input"`, `"cycle_input"`, `"run_enable"`, `"pressure_input"`,
		`"heater_output"`, `"alarm_output"`, `"heartbeat_output"`,
		`"setpoint"`, `"alarm_threshold"`, `"cycle_counter_low"`, `"device_id"`,
		`"control"`, `"segment"`, `"goroutines"`, `"heap_alloc_bytes"`,
	} {
		assert.Contains(t, string(raw), key)
	}
}

func TestServer_IgnoresRequestContent(t *testing.T) {
	srv, err := Listen(0, info(), logging.NewNop())
	require.NoError(t, err)
	defer srv.Close()

	for _, req := range []string{
		"GET / HTTP/1.0\r\n\r\n",
		"GET /anything/else HTTP/1.1\r\nHost: plc\r\n\r\n",
		"not http at all",
	} {
		conn, err := net.Dial("tcp", srv.Addr())
		require.NoError(t, err)

		_, err = conn.Write([]byte(req))
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)

		srv.Service(image())

		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		raw, err := io.ReadAll(conn)
		require.NoError(t, err)
		conn.Close()

		resp := string(raw)
		require.True(t, strings.HasPrefix(resp, "HTTP/1.0 200 OK\r\n"), "request %q", req)

		_, body, found := strings.Cut(resp, "\r\n\r\n")
		require.True(t, found)

		var doc Document
		require.NoError(t, json.Unmarshal([]byte(body), &doc))
		assert.Equal(t, "LEGACY-PLC", doc.Device.Name)
	}
}

func TestServer_NilIsDisabledInterface(t *testing.T) {
	var srv *Server

	assert.NotPanics(t, func() {
		srv.Service(image())
		srv.SetControlAddr("x")
	})
	assert.Equal(t, "", srv.Addr())
	assert.NoError(t, srv.Close())
}
