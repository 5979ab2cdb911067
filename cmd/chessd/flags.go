// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Server options
	address     = flag.String("addr", ":3000", "Listen address (host:port)")
	origins     = flag.String("origins", "http://localhost:5173", "Allowed CORS and websocket origins, comma separated")
	maxSessions = flag.Int("max-sessions", 64, "Maximum number of live boards (0 = unlimited)")
	idleTimeout = flag.Duration("idle", 0, "Keep-alive idle timeout (0 = default)")

	// Inspection options
	fenFlag    = flag.String("fen", "", "Print this position instead of serving (FEN, placement field is enough)")
	squareFlag = flag.String("square", "", "With -fen, list the legal moves of the piece on 'file,rank'")
	format     = flag.String("W", "text", "Output format: text, fen, json")
	markMoves  = flag.Bool("mark", false, "Mark legal destinations with '*' in text output")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves after the board")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "Diagnostics level: 0=nothing, 1=moves, 2=every request")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -verbosity 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyServerFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyServerFlags configures the HTTP bridge.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Address = *address
	cfg.Server.AllowOrigins = *origins
	cfg.Server.MaxSessions = *maxSessions
	if *idleTimeout != 0 {
		cfg.Server.IdleTimeout = *idleTimeout
	}
}

// applyOutputFlags configures how inspected boards are printed.
func applyOutputFlags(cfg *config.Config) error {
	f, err := config.ParseOutputFormat(*format)
	if err != nil {
		return err
	}
	cfg.Output.Format = f
	cfg.Output.MarkMoves = *markMoves
	cfg.Output.ShowMoves = !*noMoves
	return nil
}

// inspectMode reports whether the command should print a board and exit.
func inspectMode() bool {
	return *fenFlag != "" || *squareFlag != ""
}
