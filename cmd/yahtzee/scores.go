package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-yahtzee/internal/platform/tui"
	"github.com/vovakirdan/tui-yahtzee/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best finished games",
	Long: `Display the best finished games and overall statistics.

Examples:
  yahtzee scores
  yahtzee scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a TUI table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	games, err := store.TopGames(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Play 'yahtzee play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-8s  %s\n", "Rank", "Total", "Upper", "Bonus", "Yahtzee", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "-------", "----")

	for i, g := range games {
		yahtzee := "-"
		if g.Yahtzee {
			yahtzee = "yes"
		}
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-8s  %s\n",
			i+1, g.Total, g.UpperTotal, g.UpperBonus, yahtzee, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
