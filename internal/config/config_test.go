package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want Config
	}{
		{"production", "production", Config{BackendURL: "/api", Environment: "production"}},
		{"development", "development", Config{BackendURL: "http://localhost:8000", Environment: "development"}},
		{"empty", "", Config{BackendURL: "http://localhost:8000", Environment: "development"}},
		{"staging", "staging", Config{BackendURL: "http://localhost:8000", Environment: "staging"}},
		{"case sensitive", "Production", Config{BackendURL: "http://localhost:8000", Environment: "Production"}},
		{"not trimmed", " production ", Config{BackendURL: "http://localhost:8000", Environment: " production "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.mode))
		})
	}
}

func TestFromEnviron(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		cfg := FromEnviron([]string{"PATH=/usr/bin"})
		assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
		assert.Equal(t, "development", cfg.Environment)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("set empty", func(t *testing.T) {
		cfg := FromEnviron([]string{"APP_ENV="})
		assert.Equal(t, "development", cfg.Environment)
	})

	t.Run("production", func(t *testing.T) {
		cfg := FromEnviron([]string{"APP_ENV=production"})
		assert.Equal(t, "/api", cfg.BackendURL)
		assert.Equal(t, "production", cfg.Environment)
		assert.True(t, cfg.IsProduction())
	})
}

func TestLoad(t *testing.T) {
	t.Setenv(ModeVar, "staging")

	first := Load()
	assert.Equal(t, Config{BackendURL: "http://localhost:8000", Environment: "staging"}, first)
	assert.Equal(t, first, Load())
}

func TestConfig_ConcurrentReads(t *testing.T) {
	cfg := Resolve(Production)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "/api", cfg.BackendURL)
		}()
	}
	wg.Wait()
}
