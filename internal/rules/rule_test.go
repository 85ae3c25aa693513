package rules

import (
	"testing"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
)

func TestTotalOneNumber(t *testing.T) {
	tests := []struct {
		face int
		roll dice.Roll
		want int
	}{
		{1, dice.Roll{1, 1, 2, 3, 4}, 2},
		{6, dice.Roll{6, 6, 6, 1, 2}, 18},
		{5, dice.Roll{1, 2, 3, 4, 6}, 0},
		{3, dice.Roll{3, 3, 3, 3, 3}, 15},
	}
	for _, tt := range tests {
		rule := TotalOneNumber{Face: tt.face}
		if got := rule.Score(tt.roll); got != tt.want {
			t.Errorf("TotalOneNumber{%d}.Score(%v) = %d, want %d", tt.face, tt.roll, got, tt.want)
		}
	}
}

func TestSumDistro(t *testing.T) {
	tests := []struct {
		name     string
		minCount int
		roll     dice.Roll
		want     int
	}{
		{"triple qualifies, whole roll sums", 3, dice.Roll{2, 2, 2, 5, 5}, 16},
		{"triple of the second face", 3, dice.Roll{2, 2, 5, 5, 5}, 19},
		{"pair only scores zero, not a partial sum", 3, dice.Roll{1, 2, 3, 4, 5}, 0},
		{"four of a kind", 4, dice.Roll{4, 4, 4, 4, 2}, 18},
		{"triple does not reach four", 4, dice.Roll{4, 4, 4, 2, 2}, 0},
		{"five counts as four", 4, dice.Roll{4, 4, 4, 4, 4}, 20},
		{"chance always sums", 0, dice.Roll{1, 2, 3, 4, 5}, 15},
		{"chance with no repeats at all still sums", 0, dice.Roll{6, 6, 6, 6, 6}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := SumDistro{MinCount: tt.minCount}
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("SumDistro{%d}.Score(%v) = %d, want %d", tt.minCount, tt.roll, got, tt.want)
			}
		})
	}
}

func TestFullHouse(t *testing.T) {
	rule := FullHouse{Points: 25}
	tests := []struct {
		name string
		roll dice.Roll
		want int
	}{
		{"pair and triple", dice.Roll{1, 1, 3, 3, 3}, 25},
		{"triple first", dice.Roll{3, 3, 3, 1, 1}, 25},
		{"five of a kind does not qualify", dice.Roll{1, 1, 1, 1, 1}, 0},
		{"four and one", dice.Roll{2, 2, 2, 2, 5}, 0},
		{"two pairs", dice.Roll{2, 2, 5, 5, 6}, 0},
		{"no repeats", dice.Roll{1, 2, 3, 4, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("FullHouse.Score(%v) = %d, want %d", tt.roll, got, tt.want)
			}
		})
	}
}

func TestSmallStraight(t *testing.T) {
	rule := SmallStraight{Points: 30}
	tests := []struct {
		name string
		roll dice.Roll
		want int
	}{
		{"1-2-3-4 with stray 6", dice.Roll{1, 2, 3, 4, 6}, 30},
		{"2-3-4-5", dice.Roll{2, 3, 4, 5, 2}, 30},
		{"3-4-5-6", dice.Roll{3, 4, 5, 6, 6}, 30},
		{"duplicates collapse", dice.Roll{3, 2, 1, 4, 3}, 30},
		{"large straight also qualifies", dice.Roll{1, 2, 3, 4, 5}, 30},
		{"gap in the run", dice.Roll{1, 2, 3, 5, 6}, 0},
		{"three consecutive only", dice.Roll{3, 3, 1, 4, 5}, 0},
		{"all alike", dice.Roll{4, 4, 4, 4, 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("SmallStraight.Score(%v) = %d, want %d", tt.roll, got, tt.want)
			}
		})
	}
}

func TestLargeStraightLoose(t *testing.T) {
	rule := LargeStraight{Points: 40}
	tests := []struct {
		name string
		roll dice.Roll
		want int
	}{
		{"1 through 5", dice.Roll{3, 2, 1, 4, 5}, 40},
		{"2 through 6", dice.Roll{2, 3, 4, 5, 6}, 40},
		// The engine's historical behavior: any five distinct faces
		// pay out, even non-consecutive ones.
		{"non-consecutive five distinct", dice.Roll{1, 2, 3, 4, 6}, 40},
		{"1-3-4-5-6", dice.Roll{1, 3, 4, 5, 6}, 40},
		{"only four distinct", dice.Roll{2, 3, 4, 5, 2}, 0},
		{"all alike", dice.Roll{6, 6, 6, 6, 6}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("LargeStraight.Score(%v) = %d, want %d", tt.roll, got, tt.want)
			}
		})
	}
}

func TestLargeStraightStrict(t *testing.T) {
	rule := LargeStraight{Points: 40, Strict: true}
	tests := []struct {
		name string
		roll dice.Roll
		want int
	}{
		{"1 through 5", dice.Roll{1, 2, 3, 4, 5}, 40},
		{"2 through 6", dice.Roll{6, 5, 4, 3, 2}, 40},
		{"non-consecutive rejected", dice.Roll{1, 2, 3, 4, 6}, 0},
		{"1-3-4-5-6 rejected", dice.Roll{1, 3, 4, 5, 6}, 0},
		{"only four distinct", dice.Roll{2, 3, 4, 5, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("LargeStraight{Strict}.Score(%v) = %d, want %d", tt.roll, got, tt.want)
			}
		})
	}
}

func TestYahtzee(t *testing.T) {
	rule := Yahtzee{Points: 50}
	tests := []struct {
		name string
		roll dice.Roll
		want int
	}{
		{"all fours", dice.Roll{4, 4, 4, 4, 4}, 50},
		{"four plus one", dice.Roll{4, 4, 4, 4, 5}, 0},
		// The odd face first: the rule reads the FIRST frequency
		// entry, which here is the count of the 5, not of the 4s.
		{"odd die first", dice.Roll{5, 4, 4, 4, 4}, 0},
		{"no repeats", dice.Roll{1, 2, 3, 4, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Score(tt.roll); got != tt.want {
				t.Errorf("Yahtzee.Score(%v) = %d, want %d", tt.roll, got, tt.want)
			}
		})
	}
}

// Every rule must be a pure function of its configuration and the roll:
// evaluating twice yields the same score, and scores are never negative.
func TestRulePurityAndNonNegativity(t *testing.T) {
	reg := NewDefaultRegistry()
	rolls := []dice.Roll{
		{1, 1, 1, 1, 1},
		{1, 2, 3, 4, 5},
		{6, 6, 6, 1, 2},
		{2, 2, 5, 5, 5},
		{3, 2, 3, 3, 3},
		{1, 2, 3, 4, 6},
	}
	for _, roll := range rolls {
		for _, cat := range Categories() {
			rule := reg.Rule(cat)
			first := rule.Score(roll)
			second := rule.Score(roll)
			if first != second {
				t.Errorf("%s.Score(%v) not idempotent: %d then %d", cat, roll, first, second)
			}
			if first < 0 {
				t.Errorf("%s.Score(%v) = %d, scores must be non-negative", cat, roll, first)
			}
		}
	}
}
