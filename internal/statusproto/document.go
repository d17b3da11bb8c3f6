// internal/statusproto/document.go
package statusproto

import (
	"fmt"
	"runtime"
	"time"

	"github.com/tamzrod/plcsim/internal/state"
)

// Info is the static device identity baked into every document.
type Info struct {
	DeviceName  string
	Version     string
	Mode        string
	CycleMs     int
	ControlAddr string
	StatusAddr  string
}

// Document is the monitoring snapshot. The field set is a compatibility
// surface: dashboards and health checks key on these names, so they
// must stay stable even if values evolve.
type Document struct {
	Device    DeviceBlock   `json:"device"`
	Status    StatusBlock   `json:"status"`
	Process   ProcessBlock  `json:"process_data"`
	Network   NetworkBlock  `json:"network"`
	Resources ResourceBlock `json:"resources"`
	Timestamp string        `json:"timestamp"`
}

type DeviceBlock struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Mode         string `json:"mode"`
	UptimeCycles uint32 `json:"uptime_cycles"`
}

type StatusBlock struct {
	State      string `json:"state"` // RUNNING or STOPPED
	ScanTimeMs int    `json:"scan_time_ms"`
	ErrorCodes string `json:"error_codes"` // two hex digits
	LastError  string `json:"last_error"`
}

type ProcessBlock struct {
	TemperatureInput uint16 `json:"temperature_input"`
	CycleInput       uint16 `json:"cycle_input"`
	RunEnable        uint16 `json:"run_enable"`
	PressureInput    uint16 `json:"pressure_input"`

	HeaterOutput    uint16 `json:"heater_output"`
	AlarmOutput     uint16 `json:"alarm_output"`
	HeartbeatOutput uint16 `json:"heartbeat_output"`

	Setpoint        uint16 `json:"setpoint"`
	AlarmThreshold  uint16 `json:"alarm_threshold"`
	CycleCounterLow uint16 `json:"cycle_counter_low"`
	DeviceID        uint16 `json:"device_id"`
}

type NetworkBlock struct {
	Control Endpoint `json:"control"`
	Status  Endpoint `json:"status"`
}

type Endpoint struct {
	Address string `json:"address"`
	Segment string `json:"segment"`
}

type ResourceBlock struct {
	Goroutines    int    `json:"goroutines"`
	HeapAllocBytes uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes  uint64 `json:"heap_sys_bytes"`
}

// BuildDocument assembles the snapshot from the current process image.
func BuildDocument(info Info, st *state.State, now time.Time) Document {
	runState := "STOPPED"
	if st.Running {
		runState = "RUNNING"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Document{
		Device: DeviceBlock{
			Name:         info.DeviceName,
			Version:      info.Version,
			Mode:         info.Mode,
			UptimeCycles: st.CycleCount,
		},
		Status: StatusBlock{
			State:      runState,
			ScanTimeMs: info.CycleMs,
			ErrorCodes: fmt.Sprintf("%02x", st.ErrorCodes),
			LastError:  st.LastError,
		},
		Process: ProcessBlock{
			TemperatureInput: st.Inputs[0],
			CycleInput:       st.Inputs[1],
			RunEnable:        st.Inputs[2],
			PressureInput:    st.Inputs[3],
			HeaterOutput:     st.Outputs[0],
			AlarmOutput:      st.Outputs[1],
			HeartbeatOutput:  st.Outputs[15],
			Setpoint:         st.Registers[state.RegSetpoint],
			AlarmThreshold:   st.Registers[state.RegAlarmThreshold],
			CycleCounterLow:  st.Registers[state.RegCycleLow],
			DeviceID:         st.Registers[state.RegDeviceID],
		},
		Network: NetworkBlock{
			Control: Endpoint{Address: info.ControlAddr, Segment: "plant_floor"},
			Status:  Endpoint{Address: info.StatusAddr, Segment: "supervisory"},
		},
		Resources: ResourceBlock{
			Goroutines:    runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			HeapSysBytes:  mem.HeapSys,
		},
		Timestamp: now.Format("2006-01-02 15:04:05"),
	}
}
