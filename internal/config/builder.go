package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMoveMarkers enables '*' markers on legal destinations.
func (b *ConfigBuilder) WithMoveMarkers(enabled bool) *ConfigBuilder {
	b.cfg.Output.MarkMoves = enabled
	return b
}

// WithAddress sets the listen address.
func (b *ConfigBuilder) WithAddress(addr string) *ConfigBuilder {
	b.cfg.Server.Address = addr
	return b
}

// WithAllowOrigins sets the CORS origin list.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithMaxSessions caps the number of live boards.
func (b *ConfigBuilder) WithMaxSessions(n int) *ConfigBuilder {
	b.cfg.Server.MaxSessions = n
	return b
}

// WithIdleTimeout sets the keep-alive idle timeout.
func (b *ConfigBuilder) WithIdleTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.IdleTimeout = d
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.SetLogFile(w)
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
