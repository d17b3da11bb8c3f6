// internal/ctrlproto/command.go
package ctrlproto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tamzrod/plcsim/internal/state"
)

// Timestamp layout used across the wire protocols and the cycle log.
const timeLayout = "2006-01-02 15:04:05"

// Error responses. ERR0 is an unknown command, ERR1 a bad address.
const (
	respUnknownCommand = "ERR0"
	respBadAddress     = "ERR1"
)

// Process parses exactly one command against the current process image
// and returns the full response including the CRLF terminator. User
// errors never propagate; they become ERR0/ERR1 responses.
func Process(st *state.State, raw string, now time.Time) string {
	cmd := strings.TrimRight(raw, "\r\n \t")

	var body string
	switch {
	case strings.HasPrefix(cmd, "RI"):
		body = readPoint(cmd[2:], st.Input)
	case strings.HasPrefix(cmd, "RO"):
		body = readPoint(cmd[2:], st.Output)
	case strings.HasPrefix(cmd, "RR"):
		body = readPoint(cmd[2:], st.Register)
	case strings.HasPrefix(cmd, "STATUS"):
		body = fmt.Sprintf("RUN,%08d,%02x,%s",
			st.CycleCount, st.ErrorCodes, now.Format(timeLayout))
	default:
		body = respUnknownCommand
	}

	return body + "\r\n"
}

// readPoint resolves a decimal address suffix through a bounds-checked
// accessor. A non-numeric suffix is treated the same as an out-of-range
// address.
func readPoint(suffix string, get func(int) (uint16, bool)) string {
	addr, err := strconv.Atoi(suffix)
	if err != nil {
		return respBadAddress
	}
	v, ok := get(addr)
	if !ok {
		return respBadAddress
	}
	return fmt.Sprintf("%04d", v)
}
