package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yahtzee/internal/platform/tui"
	"github.com/vovakirdan/tui-yahtzee/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Yahtzee",
	Long: `Play a full game in the terminal: 13 turns, up to three rolls per
turn, hold dice between rolls, then pick a category for each roll.

Controls:
  r/Space    - Roll the dice
  1-5        - Hold/release a die
  Up/Down    - Move over the score sheet
  Enter      - Score the highlighted category
  n          - New game (after the sheet is full)
  Q/Ctrl+C   - Quit

Finished games are saved to the results database; view them with
'yahtzee scores'.

Examples:
  yahtzee play
  yahtzee play --seed 42
  yahtzee play --config ./my-rules.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	registry := loadRegistry()

	// Open result storage; play on without it if unavailable.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: results will not be saved: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(registry, store, flagSeed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
