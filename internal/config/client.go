package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Response sources for the chat client.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Reply orderings for the chat client.
const (
	OrderingArrival = "arrival"
	OrderingSend    = "send"
)

// ClientConfig describes the terminal chat client. It is read once at startup.
type ClientConfig struct {
	BackendURL string        `env:"BACKEND_URL" envDefault:"http://localhost:8080"`
	Source     string        `env:"CHAT_SOURCE" envDefault:"remote"`
	Ordering   string        `env:"CHAT_ORDERING" envDefault:"arrival"`
	Timeout    time.Duration `env:"CLIENT_TIMEOUT" envDefault:"0s"`
	LogFile    string        `env:"CHAT_LOG_FILE"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadClient reads the client configuration from the environment.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse client config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the fields and rejects unknown values. Flags applied
// after LoadClient should be followed by another Validate call.
func (c *ClientConfig) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	switch c.Source {
	case SourceRemote, SourceLocal:
	default:
		return fmt.Errorf("invalid CHAT_SOURCE value %q", c.Source)
	}

	c.Ordering = strings.ToLower(strings.TrimSpace(c.Ordering))
	switch c.Ordering {
	case OrderingArrival, OrderingSend:
	default:
		return fmt.Errorf("invalid CHAT_ORDERING value %q", c.Ordering)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid CLIENT_TIMEOUT value %s", c.Timeout)
	}

	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.Source == SourceRemote {
		u, err := url.Parse(c.BackendURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid BACKEND_URL value %q", c.BackendURL)
		}
	}
	return nil
}
