package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the scoring categories",
	Long:  `Shows all 13 scoring categories with their rules.`,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	registry := loadRegistry()

	fmt.Println("Scoring categories:")
	fmt.Println()

	// Calculate column width
	maxLen := len("Category")
	for _, cat := range rules.Categories() {
		if len(cat.Title()) > maxLen {
			maxLen = len(cat.Title())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxLen, "Category", "Rule")
	fmt.Printf("  %-*s  %s\n", maxLen, "--------", "----")

	for _, cat := range rules.Categories() {
		fmt.Printf("  %-*s  %s\n", maxLen, cat.Title(), registry.Rule(cat).Description())
	}

	fmt.Println()
	fmt.Println("Run 'yahtzee score <d1> <d2> <d3> <d4> <d5>' to score a roll.")
}
