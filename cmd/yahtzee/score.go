package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

var scoreCmd = &cobra.Command{
	Use:   "score <d1> <d2> <d3> <d4> <d5>",
	Short: "Score a roll against every category",
	Long: `Evaluate a five-die roll against all 13 scoring categories and print
what each would pay.

Examples:
  yahtzee score 3 2 3 3 3
  yahtzee score 1 2 3 4 5`,
	Args: cobra.ExactArgs(dice.Count),
	Run:  runScore,
}

func runScore(cmd *cobra.Command, args []string) {
	roll, err := dice.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := loadRegistry()
	scores := registry.ScoreAll(roll)

	fmt.Printf("Roll: %s\n", roll)
	fmt.Println()

	// Print header
	fmt.Printf("  %-16s  %s\n", "Category", "Score")
	fmt.Printf("  %-16s  %s\n", "--------", "-----")

	for _, cat := range rules.Categories() {
		fmt.Printf("  %-16s  %d\n", cat.Title(), scores[cat])
	}
}
