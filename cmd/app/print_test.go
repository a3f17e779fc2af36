package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/citation-network-ui/internal/config"
)

func TestPrintConfig_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printConfig(&buf, config.Resolve("production"), false))

	assert.JSONEq(t, `{"backendUrl":"/api","environment":"production"}`, buf.String())
}

func TestPrintConfig_Script(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printConfig(&buf, config.Resolve(""), true))

	assert.Equal(t,
		"window.__APP_CONFIG__ = {\"backendUrl\":\"http://localhost:8000\",\"environment\":\"development\"};\n",
		buf.String())
}
