package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded match",
	Long: `Re-simulate a recorded match and check that it reaches the same
final state. The id may be any unique prefix.

Examples:
  pingpong replay 3f2a
  pingpong replay 3f2a --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the replay back in the terminal")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagWatch)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		closeLog()
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	id, err := store.ResolveID(args[0])
	if errors.Is(err, storage.ErrNotFound) {
		err = fmt.Errorf("no replay with id %q", args[0])
	}
	if err != nil {
		store.Close()
		closeLog()
		fail("%v", err)
	}

	if flagWatch {
		if err := watchReplay(store, id); err != nil {
			store.Close()
			closeLog()
			fail("%v", err)
		}
		return
	}

	r, err := store.LoadReplay(id)
	if err != nil {
		store.Close()
		closeLog()
		fail("%v", err)
	}
	cfg, err := replayConfig(r)
	if err != nil {
		store.Close()
		closeLog()
		fail("%v", err)
	}

	m := pong.Simulate(cfg.Settings(), r.Frames)
	snap := m.Snapshot()
	logger.Debug("replay simulated", "id", id, "frames", len(r.Frames), "hash", snap.Hash())

	banner := m.Banner()
	if banner == "" {
		banner = "(in play)"
	}
	fmt.Printf("Replay %s\n", r.ID)
	fmt.Printf("  Recorded: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Frames:   %d\n", len(r.Frames))
	fmt.Printf("  Outcome:  %s\n", banner)
	fmt.Printf("  Ball:     (%.1f, %.1f) moving (%.1f, %.1f)\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Printf("  Paddles:  left %.1f, right %.1f\n", snap.LeftY, snap.RightY)

	if snap.Hash() != r.FinalHash {
		logger.Error("replay diverged", "id", id, "expected", r.FinalHash, "got", snap.Hash())
		store.Close()
		closeLog()
		fail("replay diverged: final hash %x, recorded %x", snap.Hash(), r.FinalHash)
	}
	fmt.Printf("  Hash:     %x (verified)\n", snap.Hash())
}

// replayConfig decodes the configuration stored with a replay.
func replayConfig(r *storage.Replay) (config.MatchConfig, error) {
	cfg, err := config.Parse(r.Config)
	if err != nil {
		return cfg, fmt.Errorf("replay %s has an unreadable config: %w", r.ID, err)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("replay %s has an invalid config: %w", r.ID, err)
	}
	return cfg, nil
}
