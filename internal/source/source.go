package source

import (
	"fmt"
	"net/http"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/keyword"
	"github.com/psychmaster/psychmaster/internal/panel"
)

// New selects the response source named by cfg.Source.
func New(cfg *config.ClientConfig, client *http.Client) (panel.ResponseSource, error) {
	switch cfg.Source {
	case config.SourceRemote:
		if client == nil {
			client = &http.Client{Timeout: cfg.Timeout}
		}
		return NewRemote(cfg.BackendURL, client), nil
	case config.SourceLocal:
		return NewLocal(keyword.Default()), nil
	default:
		return nil, fmt.Errorf("unknown response source %q", cfg.Source)
	}
}

// Ordering maps the configured ordering onto the panel's.
func Ordering(cfg *config.ClientConfig) panel.Ordering {
	if cfg.Ordering == config.OrderingSend {
		return panel.OrderSend
	}
	return panel.OrderArrival
}
