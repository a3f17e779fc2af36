package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/citation-network-ui/internal/config"
	serverconfig "github.com/wichananm65/citation-network-ui/internal/infrastructure/config"
)

func testSettings(addr string) serverconfig.Server {
	return serverconfig.Server{Addr: addr, CORSOrigins: "*", LogLevel: "error"}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, config.Resolve(""), testSettings("127.0.0.1:0"))
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenFailure(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), config.Resolve("production"), testSettings("256.0.0.1:99999"))
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server stopped")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return on listen failure")
	}
}

func TestServe_InvalidCORSOrigin(t *testing.T) {
	settings := testSettings("127.0.0.1:0")
	settings.CORSOrigins = "example.org"

	err := serve(context.Background(), config.Resolve(""), settings)
	assert.ErrorContains(t, err, "invalid CORS origin")
}
