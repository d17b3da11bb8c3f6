// internal/cyclelog/cyclelog.go
package cyclelog

import (
	"fmt"
	"os"
	"time"

	"github.com/tamzrod/plcsim/internal/state"
)

// recordEvery is the logging decimation: one record per ten cycles.
const recordEvery = 10

const timeLayout = "2006-01-02 15:04:05"

// Logger appends cycle snapshots to a plain text file. Opened once at
// startup, no rotation, no size bound: callers needing bounded storage
// wrap it externally.
type Logger struct {
	f *os.File
}

// Open opens the log in append mode and writes the header comment.
func Open(path, mode string, now time.Time) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cyclelog: open %s: %w", path, err)
	}

	fmt.Fprintf(f, "# PLC Data Log - Started %s (mode=%s)\n", now.Format(timeLayout), mode)
	fmt.Fprintf(f, "# Format: TIMESTAMP,CYCLE,I0-I3,O0-O3,ERR\n")

	return &Logger{f: f}, nil
}

// Record appends one snapshot when the cycle is on the decimation
// boundary. Nil receivers (open failure at startup) are a no-op.
func (l *Logger) Record(st *state.State, now time.Time) {
	if l == nil || st.CycleCount%recordEvery != 0 {
		return
	}

	fmt.Fprintf(l.f, "%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%02x\n",
		now.Format(timeLayout),
		st.CycleCount,
		st.Inputs[0], st.Inputs[1], st.Inputs[2], st.Inputs[3],
		st.Outputs[0], st.Outputs[1], st.Outputs[2], st.Outputs[3],
		st.ErrorCodes,
	)
}

// Close writes the shutdown marker and releases the file.
func (l *Logger) Close(now time.Time) error {
	if l == nil {
		return nil
	}
	fmt.Fprintf(l.f, "# PLC Shutdown - %s\n", now.Format(timeLayout))
	return l.f.Close()
}
