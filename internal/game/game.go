// Package game runs a single-player Yahtzee game: thirteen turns, up
// to three rolls per turn with per-die holds, and one category choice
// per turn scored through the rule registry into the scorecard.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
	"github.com/vovakirdan/tui-yahtzee/internal/rules"
	"github.com/vovakirdan/tui-yahtzee/internal/scorecard"
)

// MaxRolls is the number of rolls allowed per turn.
const MaxRolls = 3

// Game is one in-progress Yahtzee game. Not safe for concurrent use;
// the platform drives it from a single event loop.
type Game struct {
	registry *rules.Registry
	roller   *dice.Roller
	card     scorecard.Card

	roll      dice.Roll
	held      [dice.Count]bool
	rollsUsed int
	turn      int // 1-based, 1..13
}

// New creates a game with the given registry and RNG seed. The same
// seed and input sequence reproduce the same game.
func New(reg *rules.Registry, seed int64) *Game {
	return &Game{
		registry: reg,
		roller:   dice.NewRoller(seed),
		turn:     1,
	}
}

// Roll rolls the dice: all five on the turn's first roll, only the
// unheld ones after. At most three rolls per turn.
func (g *Game) Roll() error {
	if g.Over() {
		return fmt.Errorf("game: the game is over")
	}
	if g.rollsUsed >= MaxRolls {
		return fmt.Errorf("game: no rolls left this turn")
	}
	if g.rollsUsed == 0 {
		g.roll = g.roller.Roll()
	} else {
		g.roll = g.roller.Reroll(g.roll, g.held)
	}
	g.rollsUsed++
	return nil
}

// ToggleHold flips the hold flag on one die. Holds only make sense
// between rolls; holding before the first roll is rejected.
func (g *Game) ToggleHold(i int) error {
	if i < 0 || i >= dice.Count {
		return fmt.Errorf("game: no die %d", i)
	}
	if g.rollsUsed == 0 {
		return fmt.Errorf("game: roll before holding dice")
	}
	if g.rollsUsed >= MaxRolls {
		return fmt.Errorf("game: no rolls left, choose a category")
	}
	g.held[i] = !g.held[i]
	return nil
}

// Choose scores the current roll under the given category, fills the
// slot, and advances to the next turn. Choosing before rolling or on a
// filled category is rejected.
func (g *Game) Choose(cat rules.Category) (int, error) {
	if g.Over() {
		return 0, fmt.Errorf("game: the game is over")
	}
	if g.rollsUsed == 0 {
		return 0, fmt.Errorf("game: roll before choosing a category")
	}
	score := g.registry.Score(cat, g.roll)
	if err := g.card.Record(cat, score); err != nil {
		return 0, err
	}
	g.turn++
	g.rollsUsed = 0
	g.held = [dice.Count]bool{}
	return score, nil
}

// Dice returns the current roll. Meaningless before the first roll of
// a turn (RollsUsed reports 0 then).
func (g *Game) Dice() dice.Roll { return g.roll }

// Held returns the hold flags for the current roll.
func (g *Game) Held() [dice.Count]bool { return g.held }

// RollsUsed returns how many rolls this turn has used.
func (g *Game) RollsUsed() int { return g.rollsUsed }

// RollsLeft returns how many rolls remain this turn.
func (g *Game) RollsLeft() int { return MaxRolls - g.rollsUsed }

// Turn returns the 1-based turn number.
func (g *Game) Turn() int { return g.turn }

// Card returns the score sheet.
func (g *Game) Card() *scorecard.Card { return &g.card }

// Over reports whether all thirteen categories have been scored.
func (g *Game) Over() bool { return g.card.Complete() }

// Potential returns what each still-open category would score for the
// current roll, for presentation next to the sheet. Filled categories
// map to -1.
func (g *Game) Potential() [rules.NumCategories]int {
	all := g.registry.ScoreAll(g.roll)
	for _, cat := range rules.Categories() {
		if g.card.Filled(cat) {
			all[cat] = -1
		}
	}
	return all
}
