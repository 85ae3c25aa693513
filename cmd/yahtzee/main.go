// yahtzee scores dice rolls and plays full games of Yahtzee in the terminal.
//
// Usage:
//
//	yahtzee score <d1> <d2> <d3> <d4> <d5>  - Score a roll against every category
//	yahtzee rules                           - List scoring categories
//	yahtzee play                            - Play a game in the terminal
//	yahtzee scores                          - Show best finished games
//	yahtzee serve                           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Set config path (default: ~/.yahtzee/config.yaml)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.yahtzee/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-yahtzee/internal/config"
	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yahtzee",
	Short: "Yahtzee - score dice rolls and play in your terminal",
	Long: `Yahtzee is a terminal dice game: score individual rolls against the
13 official categories, or play full games with rerolls and a score sheet.

Available commands:
  score    - Score a five-die roll against every category
  rules    - List the scoring categories
  play     - Play a full game in the terminal
  scores   - View best finished games
  serve    - Start SSH server for remote play

Examples:
  yahtzee score 3 2 3 3 3
  yahtzee rules
  yahtzee play
  yahtzee serve --ssh :2222
  yahtzee scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.yahtzee/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.yahtzee/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRegistry builds the rule registry from the configuration.
func loadRegistry() *rules.Registry {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return rules.NewRegistry(cfg.RulePayouts())
}
