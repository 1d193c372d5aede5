package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player match on one keyboard.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Space      - Serve after a point
  P/Esc      - Pause
  ?          - Help
  Q/Ctrl+C   - Quit

Presets:
  easy   - Slower serve
  normal - Configured serve speed
  hard   - Faster serve

Examples:
  pingpong play
  pingpong play --preset easy
  pingpong play --record
  pingpong play --config ./my-pingpong.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the match as a replay")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := terminalSize()
	res, err := tui.RunPlay(tui.PlayOptions{
		Settings: cfg.Settings(),
		Display:  cfg.Display,
		Record:   flagRecord,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		closeLog()
		fail("running game: %v", err)
	}

	if !flagRecord {
		return
	}
	if len(res.Frames) == 0 {
		fmt.Println("Nothing to record.")
		return
	}

	id, err := saveReplay(cfg, res)
	if err != nil {
		closeLog()
		fail("%v", err)
	}
	logger.Info("replay saved", "id", id, "frames", len(res.Frames))
	fmt.Printf("Saved replay %s (%d frames)\n", id, len(res.Frames))
}

func saveReplay(cfg config.MatchConfig, res tui.PlayResult) (string, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return "", err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	return store.SaveReplay(storage.Replay{
		Config:    data,
		Banner:    res.Banner,
		FinalHash: res.Hash,
		Frames:    res.Frames,
	})
}
