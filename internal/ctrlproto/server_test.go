// internal/ctrlproto/server_test.go
package ctrlproto

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/plcsim/internal/logging"
	"github.com/tamzrod/plcsim/internal/state"
)

func listen(t *testing.T) *Server {
	t.Helper()
	srv, err := Listen(0, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

func imageWithSamples() *state.State {
	s := state.New()
	s.LoadProgram()
	s.Inputs[0] = 782
	return s
}

// ask connects, sends cmd, services the server once and returns the
// response. The command is queued before Service runs so the single
// non-blocking read attempt finds it.
func ask(t *testing.T, srv *Server, cmd string) string {
	t.Helper()

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(cmd))
	require.NoError(t, err)

	// Let the command reach the server's socket buffer.
	time.Sleep(20 * time.Millisecond)

	srv.Service(imageWithSamples())

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	resp, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(resp)
}

func TestServer_RequestResponse(t *testing.T) {
	srv := listen(t)

	assert.Equal(t, "0782\r\n", ask(t, srv, "RI0"))
	assert.Equal(t, "ERR1\r\n", ask(t, srv, "RR999"))
	assert.Equal(t, "ERR0\r\n", ask(t, srv, "GARBAGE"))
}

func TestServer_ClosesAfterOneCommand(t *testing.T) {
	srv := listen(t)

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("RI0"))
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	srv.Service(imageWithSamples())

	// The connection must be closed by the server after one response;
	// ReadAll returning means we saw EOF, not just the response bytes.
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	resp, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "0782\r\n", string(resp))
}

func TestServer_NoPendingConnectionIsNoop(t *testing.T) {
	srv := listen(t)

	done := make(chan struct{})
	go func() {
		srv.Service(imageWithSamples())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Service blocked with no pending connection")
	}
}

func TestServer_SilentClientSkipped(t *testing.T) {
	srv := listen(t)

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()
	time.Sleep(20 * time.Millisecond)

	srv.Service(imageWithSamples())

	// No data was sent, so the server closes without a response.
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	resp, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestServer_NilIsDisabledInterface(t *testing.T) {
	var srv *Server

	assert.NotPanics(t, func() {
		srv.Service(imageWithSamples())
	})
	assert.Equal(t, "", srv.Addr())
	assert.NoError(t, srv.Close())
}
