// Package config provides configuration for the chess rules daemon.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=requests and moves, 2=running commentary

	Output OutputConfig
	Server ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logger *log.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	c := &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
	}
	c.SetLogFile(os.Stderr)
	return c
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics writer and rebuilds the logger. It must
// not be called while other goroutines are logging.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
	c.logger = newLogger(w)
}

func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "chessd: ", log.LstdFlags)
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logger returns the logger writing to LogFile. A Config not built by
// NewConfig gets a fresh logger on every call.
func (c *Config) Logger() *log.Logger {
	if c.logger == nil {
		return newLogger(c.LogFile)
	}
	return c.logger
}

// Logf writes a diagnostic line if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level {
		return
	}
	c.Logger().Output(2, fmt.Sprintf(format, args...))
}
