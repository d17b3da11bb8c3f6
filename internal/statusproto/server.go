// internal/statusproto/server.go
package statusproto

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/tamzrod/plcsim/internal/state"
)

// readWindow bounds the single request-drain attempt per cycle.
const readWindow = time.Millisecond

// writeWindow bounds the response write.
const writeWindow = 50 * time.Millisecond

// Server is the read-only monitoring interface. Requests are HTTP
// shaped but their content is ignored: every connection gets the same
// success response carrying the status document.
type Server struct {
	ln   *net.TCPListener
	info Info
	log  *slog.Logger
}

// Listen binds the status port. As with the control interface, a bind
// failure disables monitoring for the process lifetime; it never aborts
// the scan loop.
func Listen(port int, info Info, log *slog.Logger) (*Server, error) {
	addr := &net.TCPAddr{Port: port}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("statusproto: listen port %d: %w", port, err)
	}
	log.Info("status protocol listening", "port", port)

	s := &Server{ln: ln, info: info, log: log}
	s.info.StatusAddr = ln.Addr().String()
	return s, nil
}

// Addr returns the bound address, or "" when the interface is disabled.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// SetControlAddr records the control endpoint for the network block.
func (s *Server) SetControlAddr(addr string) {
	if s == nil {
		return
	}
	s.info.ControlAddr = addr
}

// Service performs this cycle's single non-blocking accept. The request
// is drained and discarded; the response is always 200 with the current
// document.
func (s *Server) Service(st *state.State) {
	if s == nil {
		return
	}

	_ = s.ln.SetDeadline(time.Now())
	conn, err := s.ln.Accept()
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return
		}
		s.log.Debug("status accept failed", "err", err)
		return
	}
	defer conn.Close()

	// Drain whatever request bytes already arrived; content is ignored.
	_ = conn.SetReadDeadline(time.Now().Add(readWindow))
	buf := make([]byte, 1024)
	_, _ = conn.Read(buf)

	body, err := json.MarshalIndent(BuildDocument(s.info, st, time.Now()), "", "  ")
	if err != nil {
		s.log.Debug("status document encode failed", "err", err)
		return
	}

	resp := fmt.Sprintf(
		"HTTP/1.0 200 OK\r\nContent-Type: application/json\r\nContent-Length: %d\r\nConnection: close\r\n\r\n%s",
		len(body), body,
	)

	_ = conn.SetWriteDeadline(time.Now().Add(writeWindow))
	if _, err := conn.Write([]byte(resp)); err != nil {
		s.log.Debug("status response write failed", "err", err)
	}
}

// Close releases the listening socket.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.ln.Close()
}
