// cmd/plcsim/run.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamzrod/plcsim/internal/config"
	"github.com/tamzrod/plcsim/internal/ctrlproto"
	"github.com/tamzrod/plcsim/internal/cyclelog"
	"github.com/tamzrod/plcsim/internal/input"
	"github.com/tamzrod/plcsim/internal/logging"
	"github.com/tamzrod/plcsim/internal/scan"
	"github.com/tamzrod/plcsim/internal/state"
	"github.com/tamzrod/plcsim/internal/statusproto"
)

// run builds the device from configuration and drives the scan loop
// until a termination signal arrives.
func run(cfgPath string, level slog.Level) error {

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	log, closeDiag := logging.New(level, cfg.PLC.DiagLog)
	defer closeDiag()

	banner(cfg)

	// --------------------
	// Process image + control program
	// --------------------

	st := state.New()

	fmt.Println("Loading control program...")
	time.Sleep(500 * time.Millisecond)
	st.LoadProgram()
	fmt.Println("Program loaded. Memory usage: 2KB/64KB")

	// --------------------
	// Input source
	// --------------------

	src, closeSrc, err := input.Build(cfg.PLC.Input)
	if err != nil {
		return err
	}
	defer closeSrc()

	// --------------------
	// Network interfaces (bind failure degrades, never aborts)
	// --------------------

	ctrl, err := ctrlproto.Listen(cfg.PLC.ControlPort, log)
	if err != nil {
		log.Warn("control interface disabled", "err", err)
		ctrl = nil
	}

	status, err := statusproto.Listen(cfg.PLC.StatusPort, statusproto.Info{
		DeviceName: cfg.PLC.DeviceName,
		Version:    Version,
		Mode:       cfg.PLC.Input.Mode,
		CycleMs:    cfg.PLC.CycleMs,
	}, log)
	if err != nil {
		log.Warn("status interface disabled", "err", err)
		status = nil
	}
	status.SetControlAddr(ctrl.Addr())

	// --------------------
	// Cycle log
	// --------------------

	cl, err := cyclelog.Open(cfg.PLC.LogPath, cfg.PLC.Input.Mode, time.Now())
	if err != nil {
		log.Warn("cycle log disabled", "err", err)
		cl = nil
	}

	// --------------------
	// Scan loop
	// --------------------

	eng, err := scan.New(scan.Options{
		State:    st,
		Source:   src,
		Control:  ctrl,
		Status:   status,
		CycleLog: cl,
		Period:   time.Duration(cfg.PLC.CycleMs) * time.Millisecond,
		Log:      log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("System initialized. Starting scan cycle...")
	eng.Run(ctx)

	return nil
}

func banner(cfg *config.Config) {
	fmt.Printf("=== LEGACY PLC SIMULATOR v%s ===\n", Version)
	fmt.Println("Compatible with: Modicon, Allen-Bradley, Siemens")
	fmt.Println("Protocol: ASCII/TCP (Pre-OPC UA)")
	fmt.Printf("Scan Rate: %dms\n", cfg.PLC.CycleMs)
	fmt.Printf("Input Mode: %s\n", cfg.PLC.Input.Mode)
}
