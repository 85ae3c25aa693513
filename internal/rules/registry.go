package rules

import "github.com/vovakirdan/tui-yahtzee/internal/dice"

// Payouts configures the fixed-score categories and the large straight
// behavior. The zero value is not useful; start from DefaultPayouts.
type Payouts struct {
	FullHouse           int
	SmallStraight       int
	LargeStraight       int
	Yahtzee             int
	StrictLargeStraight bool
}

// DefaultPayouts returns the standard Yahtzee payout table.
func DefaultPayouts() Payouts {
	return Payouts{
		FullHouse:     25,
		SmallStraight: 30,
		LargeStraight: 40,
		Yahtzee:       50,
	}
}

// Registry is the fixed table of all 13 configured rules, one per
// category. It is built once and never mutated, so a single instance
// can serve any number of concurrent evaluations.
type Registry struct {
	rules [NumCategories]Rule
}

// NewRegistry builds a registry from the given payout configuration.
func NewRegistry(p Payouts) *Registry {
	var reg Registry
	for face := 1; face <= 6; face++ {
		reg.rules[Ones+Category(face-1)] = TotalOneNumber{Face: face}
	}
	reg.rules[ThreeOfAKind] = SumDistro{MinCount: 3}
	reg.rules[FourOfAKind] = SumDistro{MinCount: 4}
	reg.rules[FullHouseCat] = FullHouse{Points: p.FullHouse}
	reg.rules[SmallStraightCat] = SmallStraight{Points: p.SmallStraight}
	reg.rules[LargeStraightCat] = LargeStraight{Points: p.LargeStraight, Strict: p.StrictLargeStraight}
	reg.rules[YahtzeeCat] = Yahtzee{Points: p.Yahtzee}
	reg.rules[Chance] = SumDistro{MinCount: 0}
	return &reg
}

// NewDefaultRegistry builds a registry with the standard payouts.
func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultPayouts())
}

// Rule returns the configured rule for the given category.
func (reg *Registry) Rule(c Category) Rule {
	return reg.rules[c]
}

// Score evaluates one category against the roll.
func (reg *Registry) Score(c Category, r dice.Roll) int {
	return reg.rules[c].Score(r)
}

// ScoreAll evaluates every category against the roll, indexed by
// Category in score-sheet order.
func (reg *Registry) ScoreAll(r dice.Roll) [NumCategories]int {
	var out [NumCategories]int
	for i, rule := range reg.rules {
		out[i] = rule.Score(r)
	}
	return out
}
