// Package scorecard tracks a single player's Yahtzee score sheet: one
// fill-once slot per category, the upper-section bonus, and the totals.
package scorecard

import (
	"fmt"

	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

// Upper-section bonus: 35 points once ones..sixes total 63 or more.
const (
	UpperBonusThreshold = 63
	UpperBonusPoints    = 35
)

// Card is a score sheet. The zero value is an empty card ready to play.
type Card struct {
	scores [rules.NumCategories]int
	filled uint16 // bit per category
}

// Filled reports whether the category has already been scored.
func (c *Card) Filled(cat rules.Category) bool {
	return c.filled&(1<<uint(cat)) != 0
}

// Score returns the recorded score for a category, 0 if unfilled.
func (c *Card) Score(cat rules.Category) int {
	return c.scores[cat]
}

// Record writes a score into the category's slot. Each slot can be
// written exactly once; a second write is rejected.
func (c *Card) Record(cat rules.Category, score int) error {
	if c.Filled(cat) {
		return fmt.Errorf("scorecard: category %s already scored", cat)
	}
	c.scores[cat] = score
	c.filled |= 1 << uint(cat)
	return nil
}

// Remaining returns the categories not yet scored, in sheet order.
func (c *Card) Remaining() []rules.Category {
	var out []rules.Category
	for _, cat := range rules.Categories() {
		if !c.Filled(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// TurnsLeft returns how many categories are still open.
func (c *Card) TurnsLeft() int {
	n := 0
	for _, cat := range rules.Categories() {
		if !c.Filled(cat) {
			n++
		}
	}
	return n
}

// Complete reports whether every category has been scored.
func (c *Card) Complete() bool {
	return c.filled == (1<<uint(rules.NumCategories))-1
}

// UpperTotal returns the ones..sixes total, before the bonus.
func (c *Card) UpperTotal() int {
	total := 0
	for _, cat := range rules.Categories() {
		if cat.Upper() && c.Filled(cat) {
			total += c.scores[cat]
		}
	}
	return total
}

// UpperBonus returns the bonus earned so far: 35 once the upper total
// reaches the threshold, 0 before.
func (c *Card) UpperBonus() int {
	if c.UpperTotal() >= UpperBonusThreshold {
		return UpperBonusPoints
	}
	return 0
}

// LowerTotal returns the total of the non-upper categories.
func (c *Card) LowerTotal() int {
	total := 0
	for _, cat := range rules.Categories() {
		if !cat.Upper() && c.Filled(cat) {
			total += c.scores[cat]
		}
	}
	return total
}

// Total returns the grand total including the upper bonus.
func (c *Card) Total() int {
	return c.UpperTotal() + c.UpperBonus() + c.LowerTotal()
}
