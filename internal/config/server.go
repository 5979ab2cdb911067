package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket bridge.
type ServerConfig struct {
	// Address is the host:port the server listens on.
	Address string

	// AllowOrigins is the CORS origin list, comma separated.
	AllowOrigins string

	// MaxSessions caps the number of live boards (0 = no limit).
	MaxSessions int

	// IdleTimeout is how long keep-alive connections may sit idle.
	IdleTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:      ":3000",
		AllowOrigins: "http://localhost:5173",
		MaxSessions:  64,
		IdleTimeout:  60 * time.Second,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Address == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if !strings.Contains(s.Address, ":") {
		return fmt.Errorf("listen address %q has no port: %w", s.Address, errors.ErrInvalidConfig)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max sessions (%d) < 0: %w", s.MaxSessions, errors.ErrInvalidConfig)
	}
	if s.IdleTimeout < 0 {
		return fmt.Errorf("idle timeout (%s) < 0: %w", s.IdleTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
