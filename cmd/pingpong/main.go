// pingpong is a two-player paddle-and-ball game for the terminal.
//
// Usage:
//
//	pingpong play             - Play a match on one keyboard
//	pingpong replays          - List recorded matches
//	pingpong replay <id>      - Verify or watch a recorded match
//	pingpong config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Match config file, YAML or TOML
//	--preset <name>    - Difficulty preset: easy, normal, hard
//	--fps <rate>       - Override the tick rate
//	--db <path>        - Set database path (default: ~/.arcade/pingpong.db)
//	--log-file <path>  - Write logs to a file while the game screen is up
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagPreset  string
	flagFPS     int
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Ping Pong - two paddles, one ball, one keyboard",
	Long: `Ping Pong is a two-player paddle game played in the terminal.
The left player uses W/S, the right player the arrow keys.

Available commands:
  play     - Play a match
  replays  - List recorded matches
  replay   - Verify or watch a recorded match
  config   - Print the effective configuration

Examples:
  pingpong play
  pingpong play --preset hard --record
  pingpong replays --browse
  pingpong replay 3f2a --watch`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to match config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pingpong.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game screen is shown")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the command logger. Full-screen commands must not write
// to the terminal, so without --log-file their logs are discarded.
// The returned close function is always non-nil.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pingpong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the match config and applies the preset and flag overrides.
func loadConfig() (config.MatchConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
