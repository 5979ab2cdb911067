// chessd serves chess boards to a renderer over HTTP and websockets, and can
// print a position and a piece's legal moves from the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessd version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if inspectMode() {
		if err := runInspect(cfg, *fenFlag, *squareFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(cfg); err != nil {
		cfg.Logger().Fatal(err)
	}
}

// serve runs the HTTP bridge until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	srv := server.New(cfg, session.NewStore(cfg.Server.MaxSessions))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		cfg.Logf(1, "received %s, shutting down", sig)
		if err := srv.Shutdown(); err != nil {
			cfg.Logf(1, "shutdown: %v", err)
		}
	}()

	return srv.Listen()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessd [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves chess boards with legal move generation over HTTP and websockets.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessd -addr :8080\n")
	fmt.Fprintf(os.Stderr, "  chessd -fen '4k3/8/8/8/8/8/8/R3K3' -square 0,7 -mark\n")
}
