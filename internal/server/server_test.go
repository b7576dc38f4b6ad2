package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/paramtour/paramtour/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	log := zerolog.Nop()
	return New(config.Default(), &log)
}

func TestStartRequiresSetup(t *testing.T) {
	srv := newTestServer()

	err := srv.Start()
	require.Error(t, err)
	assert.Equal(t, "HTTP server not initialized", err.Error())
}

func TestSetupHTTPServerAppliesConfig(t *testing.T) {
	srv := newTestServer()

	srv.SetupHTTPServer(http.NewServeMux())

	require.NotNil(t, srv.httpServer)
	assert.Equal(t, ":8080", srv.httpServer.Addr)
	assert.Equal(t, 10*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.httpServer.IdleTimeout)
}

func TestShutdownWithoutServerIsNoop(t *testing.T) {
	srv := newTestServer()

	assert.NoError(t, srv.Shutdown(context.Background()))
}
