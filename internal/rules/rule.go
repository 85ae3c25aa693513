// Package rules implements the official Yahtzee scoring categories as a
// closed set of scoring strategies over a five-die roll. Each rule is a
// pure function of its configuration and the input roll: no state, no
// side effects, safe for concurrent use once constructed.
package rules

import (
	"fmt"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
)

// Rule is a configured scoring strategy for one category.
// Score never fails for a well-formed roll; input validation is the
// caller's concern (see dice.New / dice.Parse).
type Rule interface {
	// Score evaluates the roll and returns a non-negative score.
	Score(r dice.Roll) int

	// Description returns a human-readable summary of the rule,
	// intended for presentation only.
	Description() string
}

// TotalOneNumber scores the upper section: the sum of all dice showing
// the target face (face × count).
type TotalOneNumber struct {
	Face int
}

func (t TotalOneNumber) Score(r dice.Roll) int {
	return t.Face * dice.CountOf(r, t.Face)
}

func (t TotalOneNumber) Description() string {
	return fmt.Sprintf("Sum of dice showing %d", t.Face)
}

// SumDistro scores the sum of all five dice when at least one face
// repeats MinCount or more times, and 0 otherwise. MinCount 0 always
// qualifies, which is exactly the chance category; 3 and 4 give
// three- and four-of-a-kind. A partial match scores 0, never a
// partial sum.
type SumDistro struct {
	MinCount int
}

func (s SumDistro) Score(r dice.Roll) int {
	for _, n := range dice.Frequencies(r) {
		if n >= s.MinCount {
			return dice.Sum(r)
		}
	}
	return 0
}

func (s SumDistro) Description() string {
	if s.MinCount == 0 {
		return "Sum of all dice, no condition"
	}
	return fmt.Sprintf("Sum of all dice if some face appears at least %d times", s.MinCount)
}

// FullHouse pays a fixed score when the roll holds exactly one triple
// and one pair of distinct faces. Five of a kind does not qualify: its
// frequency distribution is [5], which contains neither a 2 nor a 3.
type FullHouse struct {
	Points int
}

func (f FullHouse) Score(r dice.Roll) int {
	hasPair, hasTriple := false, false
	for _, n := range dice.Frequencies(r) {
		switch n {
		case 2:
			hasPair = true
		case 3:
			hasTriple = true
		}
	}
	if hasPair && hasTriple {
		return f.Points
	}
	return 0
}

func (f FullHouse) Description() string {
	return fmt.Sprintf("A triple and a pair: %d points", f.Points)
}

// SmallStraight pays a fixed score for four consecutive faces.
// Duplicates are collapsed first; a run of 1-4, 2-5 or 3-6 qualifies,
// expressed as the two core windows {2,3,4} and {3,4,5} plus one of
// their extensions.
type SmallStraight struct {
	Points int
}

func (s SmallStraight) Score(r dice.Roll) int {
	faces := dice.Distinct(r)
	if faces[2] && faces[3] && faces[4] && (faces[1] || faces[5]) {
		return s.Points
	}
	if faces[3] && faces[4] && faces[5] && (faces[2] || faces[6]) {
		return s.Points
	}
	return 0
}

func (s SmallStraight) Description() string {
	return fmt.Sprintf("Four consecutive faces: %d points", s.Points)
}

// LargeStraight pays a fixed score for five distinct faces.
//
// By default ANY five distinct faces qualify, consecutive or not, so
// 1-2-3-4-6 pays the same as 2-3-4-5-6. That is looser than the
// official game, but it is the behavior this engine has always had and
// it is kept deliberately. Strict opts in to requiring a true
// consecutive run: with five distinct faces out of six, rejecting
// rolls that show both a 1 and a 6 leaves exactly 1-5 and 2-6.
type LargeStraight struct {
	Points int
	Strict bool
}

func (l LargeStraight) Score(r dice.Roll) int {
	faces := dice.Distinct(r)
	if len(faces) != 5 {
		return 0
	}
	if l.Strict && faces[1] && faces[6] {
		return 0
	}
	return l.Points
}

func (l LargeStraight) Description() string {
	if l.Strict {
		return fmt.Sprintf("Five consecutive faces: %d points", l.Points)
	}
	return fmt.Sprintf("Five distinct faces: %d points", l.Points)
}

// Yahtzee pays a fixed score when all five dice show the same face.
// The check inspects the FIRST entry of the frequency distribution,
// not any entry. For five-die rolls the two are equivalent (only a
// single-face roll can ever reach a count of 5), but the first-entry
// inspection is part of the contract and pinned by tests.
type Yahtzee struct {
	Points int
}

func (y Yahtzee) Score(r dice.Roll) int {
	if dice.Frequencies(r)[0] == 5 {
		return y.Points
	}
	return 0
}

func (y Yahtzee) Description() string {
	return fmt.Sprintf("All five dice alike: %d points", y.Points)
}
