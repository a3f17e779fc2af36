package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Server holds environment-driven settings for the config server.
type Server struct {
	Addr        string `env:"UI_ADDR" envDefault:":8080"`
	StaticDir   string `env:"UI_STATIC_DIR"`
	CORSOrigins string `env:"UI_CORS_ORIGINS" envDefault:"*"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads server settings from the process environment.
func Load() (Server, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron reads server settings from a KEY=VALUE list.
func FromEnviron(environ []string) (Server, error) {
	var s Server
	if err := env.ParseWithOptions(&s, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return Server{}, err
	}
	s.Addr = strings.TrimSpace(s.Addr)
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	origins, err := ParseOrigins(s.CORSOrigins)
	if err != nil {
		return Server{}, err
	}
	s.CORSOrigins = origins
	return s, nil
}

// ParseOrigins checks a comma-separated CORS origin list and returns it with
// surrounding spaces removed. Each entry must be "*" or an http(s) origin
// without a path, query or fragment. An empty list means "*".
func ParseOrigins(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "*", nil
	}

	parts := strings.Split(raw, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		parts[i] = p
		if p == "*" {
			continue
		}
		u, err := url.Parse(p)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("invalid CORS origin %q: want scheme://host", p)
		}
		if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
			return "", fmt.Errorf("invalid CORS origin %q: must not contain a path, query or fragment", p)
		}
	}
	return strings.Join(parts, ","), nil
}
