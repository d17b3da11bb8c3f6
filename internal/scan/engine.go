// internal/scan/engine.go
package scan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tamzrod/plcsim/internal/ctrlproto"
	"github.com/tamzrod/plcsim/internal/cyclelog"
	"github.com/tamzrod/plcsim/internal/input"
	"github.com/tamzrod/plcsim/internal/logic"
	"github.com/tamzrod/plcsim/internal/state"
	"github.com/tamzrod/plcsim/internal/statusproto"
)

// statusEvery is the diagnostic status line decimation (~5 s at the
// nominal 100 ms rate). Diagnostic only, no contract.
const statusEvery = 50

// idleSleep is the yield while waiting for the next cycle boundary.
const idleSleep = 500 * time.Microsecond

// Options wires the engine's collaborators. Control, Status and
// CycleLog may be nil: a disabled interface degrades, it never stops
// the scan loop.
type Options struct {
	State    *state.State
	Source   input.Source
	Control  *ctrlproto.Server
	Status   *statusproto.Server
	CycleLog *cyclelog.Logger
	Period   time.Duration
	Log      *slog.Logger
}

// Engine owns the scan cycle: a single cooperative thread sequencing
// input scan, logic, output commit, network service and logging at a
// fixed period.
type Engine struct {
	o Options
}

// New validates the wiring. The process image and input source are the
// only hard requirements.
func New(o Options) (*Engine, error) {
	if o.State == nil {
		return nil, errors.New("scan: process state required")
	}
	if o.Source == nil {
		return nil, errors.New("scan: input source required")
	}
	if o.Period <= 0 {
		return nil, errors.New("scan: period must be > 0")
	}
	if o.Log == nil {
		return nil, errors.New("scan: logger required")
	}
	return &Engine{o: o}, nil
}

// Run executes the scan loop until the context is cancelled or Running
// is cleared. Free-running timing: a cycle never starts early, a late
// cycle runs once and the baseline resets, missed cycles are not
// coalesced or caught up.
func (e *Engine) Run(ctx context.Context) {
	st := e.o.State
	st.Running = true

	last := time.Now()

	for st.Running {
		if ctx.Err() != nil {
			st.Running = false
			break
		}

		if time.Since(last) < e.o.Period {
			time.Sleep(idleSleep)
			continue
		}

		e.cycle()
		last = time.Now()

		if st.CycleCount%statusEvery == 0 {
			e.statusLine()
		}
	}

	e.shutdown()
}

// cycle runs the phases of exactly one scan in fixed order.
func (e *Engine) cycle() {
	st := e.o.State

	// Input scan phase.
	in, err := e.o.Source.Scan(st.CycleCount)
	if err != nil {
		// Held values are still usable; the cycle proceeds.
		e.o.Log.Warn("input scan degraded", "err", err)
	}
	for i := 0; i < input.ActivePoints; i++ {
		st.Inputs[i] = in[i]
	}

	// Program execution phase.
	logic.Execute(st)

	// Output update phase.
	logic.Commit(st)

	// Communication phase: one non-blocking attempt per interface.
	e.o.Control.Service(st)
	e.o.Status.Service(st)

	// Data logging phase.
	e.o.CycleLog.Record(st, time.Now())

	st.CycleCount++
}

func (e *Engine) statusLine() {
	st := e.o.State

	heater := "OFF"
	if st.Outputs[0] == 1 {
		heater = "ON"
	}

	e.o.Log.Info("scan status",
		"cycle", st.CycleCount,
		"temp", st.Inputs[0],
		"heater", heater,
		"errors", st.ErrorCodes,
	)
}

func (e *Engine) shutdown() {
	st := e.o.State
	st.Running = false

	if err := e.o.Control.Close(); err != nil {
		e.o.Log.Warn("control listener close failed", "err", err)
	}
	if err := e.o.Status.Close(); err != nil {
		e.o.Log.Warn("status listener close failed", "err", err)
	}
	if err := e.o.CycleLog.Close(time.Now()); err != nil {
		e.o.Log.Warn("cycle log close failed", "err", err)
	}

	e.o.Log.Info("scan loop stopped", "total_cycles", st.CycleCount)
}
