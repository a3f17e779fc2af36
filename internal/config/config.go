package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

const (
	// ModeVar is the environment variable selecting the runtime mode.
	ModeVar = "APP_ENV"

	Production  = "production"
	Development = "development"

	productionBackendURL  = "/api"
	developmentBackendURL = "http://localhost:8000"
)

// Config is the resolved runtime configuration. It is built once at startup
// and handed to consumers by value.
type Config struct {
	BackendURL  string
	Environment string
}

type modeEnv struct {
	Mode string `env:"APP_ENV"`
}

// Resolve maps a mode flag to its Config. Any value other than "production"
// selects the local backend; an empty mode reports as "development".
func Resolve(mode string) Config {
	backend := developmentBackendURL
	if mode == Production {
		backend = productionBackendURL
	}

	name := mode
	if name == "" {
		name = Development
	}

	return Config{
		BackendURL:  backend,
		Environment: name,
	}
}

// Load reads the mode flag from the process environment.
func Load() Config {
	return FromEnviron(os.Environ())
}

// FromEnviron reads the mode flag from a KEY=VALUE list. modeEnv has a single
// optional string field, so parsing never fails and any value is accepted.
func FromEnviron(environ []string) Config {
	var m modeEnv
	if err := env.ParseWithOptions(&m, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return Resolve("")
	}
	return Resolve(m.Mode)
}

// IsProduction reports whether the backend is served from the same origin.
func (c Config) IsProduction() bool {
	return c.BackendURL == productionBackendURL
}
