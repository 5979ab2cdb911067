package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat represents the way boards are printed by the CLI.
type OutputFormat int

const (
	Text OutputFormat = iota // Glyph grid, one rank per line
	FEN                      // FEN piece placement field
	JSON                     // Board snapshot as JSON
)

var formatNames = []string{"text", "fen", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to CLI output.
type OutputConfig struct {
	// Format specifies how boards are printed
	Format OutputFormat

	// ShowMoves lists the legal moves of the selected piece after the board
	ShowMoves bool

	// MarkMoves overlays '*' on legal destinations in Text output
	MarkMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		ShowMoves: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MarkMoves && o.Format != Text {
		return fmt.Errorf("move markers need text output, got %s: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
