// Package config provides YAML-based configuration for the scoring
// rules and game shell: payout overrides for the fixed-score
// categories and the large straight behavior flag.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

// Config is the full configuration file.
type Config struct {
	Payouts Payouts `yaml:"payouts"`
	Rules   Rules   `yaml:"rules"`
}

// Payouts configures the fixed-score categories.
type Payouts struct {
	FullHouse     int `yaml:"full_house"`
	SmallStraight int `yaml:"small_straight"`
	LargeStraight int `yaml:"large_straight"`
	Yahtzee       int `yaml:"yahtzee"`
}

// Rules configures scoring behavior.
type Rules struct {
	// StrictLargeStraight requires a true consecutive run (1-5 or
	// 2-6) for the large straight. Off by default: historically any
	// five distinct faces pay out.
	StrictLargeStraight bool `yaml:"strict_large_straight"`
}

// Default returns the standard Yahtzee configuration.
func Default() Config {
	return Config{
		Payouts: Payouts{
			FullHouse:     25,
			SmallStraight: 30,
			LargeStraight: 40,
			Yahtzee:       50,
		},
	}
}

// Validate rejects configurations that would break scoring invariants.
func (c Config) Validate() error {
	fixed := map[string]int{
		"full_house":     c.Payouts.FullHouse,
		"small_straight": c.Payouts.SmallStraight,
		"large_straight": c.Payouts.LargeStraight,
		"yahtzee":        c.Payouts.Yahtzee,
	}
	for name, v := range fixed {
		if v < 0 {
			return fmt.Errorf("config: payout %s is negative (%d)", name, v)
		}
	}
	return nil
}

// RulePayouts converts the configuration into the registry's payout table.
func (c Config) RulePayouts() rules.Payouts {
	return rules.Payouts{
		FullHouse:           c.Payouts.FullHouse,
		SmallStraight:       c.Payouts.SmallStraight,
		LargeStraight:       c.Payouts.LargeStraight,
		Yahtzee:             c.Payouts.Yahtzee,
		StrictLargeStraight: c.Rules.StrictLargeStraight,
	}
}
