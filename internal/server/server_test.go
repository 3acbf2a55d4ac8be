package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/handler"
	myHTTP "github.com/MKhiriev/inkloth/internal/handler/http"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, config.App{}, logger.Nop()),
	}
}

func TestNewServer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no address", handlers: testHandlers()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	// Arrange
	addr := freeAddress(t)
	s, err := NewServer(testHandlers(), config.Server{
		HTTPAddress:     addr,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- s.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/v1/unknown")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	s, err := NewServer(testHandlers(), config.Server{HTTPAddress: l.Addr().String(), ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}
