package inspect

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewServer_SetsDefaults(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	srv, err := NewServer("inspect", handler, Config{}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, srv.config.Address)
	assert.Equal(t, DefaultAddress, srv.Addr())
}

func TestNewServer_Errors(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	_, err := NewServer("", handler, Config{}, nil)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewServer("inspect", nil, Config{}, nil)
	require.ErrorIs(t, err, ErrNilHandler)
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, "{}")
	})

	srv, err := NewServer("inspect", handler, Config{Address: addr}, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))
	assert.Equal(t, addr, srv.Addr())

	status, body := get(t, "http://"+addr)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "{}", body)

	require.NoError(t, srv.Stop(context.Background()))

	dialer := net.Dialer{Timeout: 100 * time.Millisecond}

	conn, dialErr := dialer.DialContext(context.Background(), "tcp", addr)
	if dialErr == nil {
		_ = conn.Close()
	}

	assert.Error(t, dialErr, "should not be able to connect after stop")
}

func TestServer_StartFailure(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})

	srv, err := NewServer("inspect", handler, Config{Address: ln.Addr().String()}, nil)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.ErrorIs(t, err, ErrListenFailed)
}

func TestServer_ServeErrorCallsOnServeErr(t *testing.T) {
	t.Parallel()

	var called atomic.Bool

	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	srv, err := NewServer("inspect", handler, Config{Address: freePort(t)}, func() {
		called.Store(true)
	})
	require.NoError(t, err)

	require.NoError(t, srv.Start(context.Background()))

	_ = srv.listener.Close()

	assert.Eventually(t, called.Load, time.Second, 10*time.Millisecond)
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config

	assert.True(t, cfg.SetDefaults())
	assert.False(t, cfg.SetDefaults())
	require.NoError(t, cfg.Validate())

	cfg.Address = ""
	require.ErrorIs(t, cfg.Validate(), ErrEmptyAddress)
}
