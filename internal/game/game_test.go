package game

import (
	"testing"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
	"github.com/vovakirdan/tui-yahtzee/internal/rules"
)

func newTestGame(seed int64) *Game {
	return New(rules.NewDefaultRegistry(), seed)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must play identically.
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for turn := 0; turn < 3; turn++ {
		for _, g := range []*Game{g1, g2} {
			if err := g.Roll(); err != nil {
				t.Fatalf("Roll() failed: %v", err)
			}
			if err := g.ToggleHold(0); err != nil {
				t.Fatalf("ToggleHold() failed: %v", err)
			}
			if err := g.Roll(); err != nil {
				t.Fatalf("Roll() failed: %v", err)
			}
		}
		if g1.Dice() != g2.Dice() {
			t.Fatalf("turn %d dice diverged: %v vs %v", turn+1, g1.Dice(), g2.Dice())
		}

		cat := rules.Category(turn)
		s1, err1 := g1.Choose(cat)
		s2, err2 := g2.Choose(cat)
		if err1 != nil || err2 != nil {
			t.Fatalf("Choose() failed: %v / %v", err1, err2)
		}
		if s1 != s2 {
			t.Fatalf("turn %d scores diverged: %d vs %d", turn+1, s1, s2)
		}
	}
}

func TestRollLimitPerTurn(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < MaxRolls; i++ {
		if err := g.Roll(); err != nil {
			t.Fatalf("roll %d failed: %v", i+1, err)
		}
	}
	if err := g.Roll(); err == nil {
		t.Error("fourth roll in one turn should fail")
	}
	if g.RollsLeft() != 0 {
		t.Errorf("RollsLeft() = %d after three rolls, want 0", g.RollsLeft())
	}

	// Choosing a category resets the roll budget.
	if _, err := g.Choose(rules.Chance); err != nil {
		t.Fatalf("Choose() failed: %v", err)
	}
	if g.RollsLeft() != MaxRolls {
		t.Errorf("RollsLeft() = %d after choosing, want %d", g.RollsLeft(), MaxRolls)
	}
}

func TestHoldRules(t *testing.T) {
	g := newTestGame(2)

	if err := g.ToggleHold(0); err == nil {
		t.Error("holding before the first roll should fail")
	}

	if err := g.Roll(); err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}
	if err := g.ToggleHold(2); err != nil {
		t.Errorf("ToggleHold(2) failed: %v", err)
	}
	if !g.Held()[2] {
		t.Error("die 2 not held after toggle")
	}
	if err := g.ToggleHold(2); err != nil {
		t.Errorf("second ToggleHold(2) failed: %v", err)
	}
	if g.Held()[2] {
		t.Error("die 2 still held after second toggle")
	}

	if err := g.ToggleHold(dice.Count); err == nil {
		t.Error("out-of-range hold index should fail")
	}
}

func TestHeldDiceSurviveReroll(t *testing.T) {
	g := newTestGame(3)

	if err := g.Roll(); err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}
	before := g.Dice()
	g.ToggleHold(1)
	g.ToggleHold(3)

	if err := g.Roll(); err != nil {
		t.Fatalf("reroll failed: %v", err)
	}
	after := g.Dice()
	if after[1] != before[1] || after[3] != before[3] {
		t.Errorf("held dice changed: %v -> %v", before, after)
	}
}

func TestChooseRequiresRoll(t *testing.T) {
	g := newTestGame(4)

	if _, err := g.Choose(rules.Chance); err == nil {
		t.Error("choosing before rolling should fail")
	}
}

func TestChooseFilledCategoryFails(t *testing.T) {
	g := newTestGame(5)

	g.Roll()
	if _, err := g.Choose(rules.Chance); err != nil {
		t.Fatalf("Choose() failed: %v", err)
	}

	g.Roll()
	if _, err := g.Choose(rules.Chance); err == nil {
		t.Error("choosing a filled category should fail")
	}
	// The failed choice must not burn the turn.
	if _, err := g.Choose(rules.Ones); err != nil {
		t.Errorf("choosing an open category after a rejected choice failed: %v", err)
	}
}

func TestFullGameCompletes(t *testing.T) {
	g := newTestGame(6)

	for _, cat := range rules.Categories() {
		if g.Over() {
			t.Fatal("game over before all categories were scored")
		}
		if err := g.Roll(); err != nil {
			t.Fatalf("Roll() on turn %d failed: %v", g.Turn(), err)
		}
		score, err := g.Choose(cat)
		if err != nil {
			t.Fatalf("Choose(%s) failed: %v", cat, err)
		}
		if score < 0 {
			t.Fatalf("Choose(%s) returned negative score %d", cat, score)
		}
	}

	if !g.Over() {
		t.Error("game not over after scoring all categories")
	}
	if err := g.Roll(); err == nil {
		t.Error("rolling after the game is over should fail")
	}
	if g.Card().Total() != g.Card().UpperTotal()+g.Card().UpperBonus()+g.Card().LowerTotal() {
		t.Error("card totals are inconsistent")
	}
}

func TestPotentialMasksFilledCategories(t *testing.T) {
	g := newTestGame(7)

	g.Roll()
	if _, err := g.Choose(rules.Chance); err != nil {
		t.Fatalf("Choose() failed: %v", err)
	}

	g.Roll()
	pot := g.Potential()
	if pot[rules.Chance] != -1 {
		t.Errorf("Potential() for filled chance = %d, want -1", pot[rules.Chance])
	}
	if pot[rules.Ones] < 0 {
		t.Errorf("Potential() for open ones = %d, want >= 0", pot[rules.Ones])
	}
}
