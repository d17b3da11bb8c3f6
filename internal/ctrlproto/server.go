// internal/ctrlproto/server.go
package ctrlproto

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/tamzrod/plcsim/internal/state"
)

// maxCommand is the largest request the device reads. Anything longer
// is truncated, as on the original hardware.
const maxCommand = 255

// readWindow bounds the single receive attempt per cycle. Data already
// queued on the socket is picked up; a silent client is skipped.
const readWindow = time.Millisecond

// writeWindow bounds the response write so a stuck client cannot stall
// the scan loop.
const writeWindow = 50 * time.Millisecond

// Server is the fixed-width ASCII control interface. It is serviced
// synchronously from the scan loop: at most one connection per cycle,
// one command per connection.
type Server struct {
	ln  *net.TCPListener
	log *slog.Logger
}

// Listen binds the control port. The caller decides whether a bind
// failure is fatal; on this device it is not.
func Listen(port int, log *slog.Logger) (*Server, error) {
	addr := &net.TCPAddr{Port: port}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ctrlproto: listen port %d: %w", port, err)
	}
	log.Info("control protocol listening", "port", port)
	return &Server{ln: ln, log: log}, nil
}

// Addr returns the bound address, or "" when the interface is disabled.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Service performs this cycle's single non-blocking accept/read/respond
// attempt. Nil receivers are a disabled interface and a no-op, so a
// failed bind degrades instead of aborting the loop.
func (s *Server) Service(st *state.State) {
	if s == nil {
		return
	}

	// Immediate deadline: accept only what is already pending.
	_ = s.ln.SetDeadline(time.Now())
	conn, err := s.ln.Accept()
	if err != nil {
		// No pending connection is the steady state, not an error.
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return
		}
		s.log.Debug("control accept failed", "err", err)
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(readWindow))
	buf := make([]byte, maxCommand)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		// Client connected but sent nothing this cycle; it must retry.
		return
	}

	resp := Process(st, string(buf[:n]), time.Now())

	_ = conn.SetWriteDeadline(time.Now().Add(writeWindow))
	if _, err := conn.Write([]byte(resp)); err != nil {
		s.log.Debug("control response write failed", "err", err)
	}
}

// Close releases the listening socket.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.ln.Close()
}
