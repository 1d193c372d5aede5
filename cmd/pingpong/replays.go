package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagDelete string
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded matches",
	Long: `List the most recent recorded matches, newest first.

Examples:
  pingpong replays
  pingpong replays --limit 50
  pingpong replays --browse
  pingpong replays --delete 3f2a`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the replay with this id or id prefix")
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	switch {
	case flagDelete != "":
		id, err := store.ResolveID(flagDelete)
		if err == nil {
			err = store.DeleteReplay(id)
		}
		if err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Deleted replay %s\n", id)

	case flagBrowse:
		width, height := terminalSize()
		id, err := tui.RunBrowser(store, width, height)
		if err != nil {
			store.Close()
			fail("running browser: %v", err)
		}
		if id == "" {
			return
		}
		if err := watchReplay(store, id); err != nil {
			store.Close()
			fail("%v", err)
		}

	default:
		if err := listReplays(store); err != nil {
			store.Close()
			fail("%v", err)
		}
	}
}

func listReplays(store *storage.Store) error {
	replays, err := store.Replays(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Replays")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pingpong play --record' to save one!")
		return nil
	}

	fmt.Printf("  %-36s  %-16s  %8s  %8s  %s\n", "ID", "Date", "Frames", "Length", "Outcome")
	fmt.Printf("  %-36s  %-16s  %8s  %8s  %s\n", "--", "----", "------", "------", "-------")

	for _, r := range replays {
		row := tui.ReplayRow(r)
		fmt.Printf("  %-36s  %-16s  %8s  %8s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), row[2], row[3], row[4])
	}
	return nil
}

// watchReplay loads a replay and plays it in the terminal.
func watchReplay(store *storage.Store, id string) error {
	r, err := store.LoadReplay(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no replay with id %q", id)
	}
	if err != nil {
		return err
	}

	cfg, err := replayConfig(r)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	return tui.RunReplay(cfg.Settings(), r.Frames, cfg.Display, width, height)
}
