package rules

import "fmt"

// Category identifies one of the 13 official scoring categories.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouseCat
	SmallStraightCat
	LargeStraightCat
	YahtzeeCat
	Chance

	// NumCategories is the size of the category set.
	NumCategories = int(Chance) + 1
)

var categoryIDs = [NumCategories]string{
	Ones:             "ones",
	Twos:             "twos",
	Threes:           "threes",
	Fours:            "fours",
	Fives:            "fives",
	Sixes:            "sixes",
	ThreeOfAKind:     "three_of_a_kind",
	FourOfAKind:      "four_of_a_kind",
	FullHouseCat:     "full_house",
	SmallStraightCat: "small_straight",
	LargeStraightCat: "large_straight",
	YahtzeeCat:       "yahtzee",
	Chance:           "chance",
}

var categoryTitles = [NumCategories]string{
	Ones:             "Ones",
	Twos:             "Twos",
	Threes:           "Threes",
	Fours:            "Fours",
	Fives:            "Fives",
	Sixes:            "Sixes",
	ThreeOfAKind:     "Three of a Kind",
	FourOfAKind:      "Four of a Kind",
	FullHouseCat:     "Full House",
	SmallStraightCat: "Small Straight",
	LargeStraightCat: "Large Straight",
	YahtzeeCat:       "Yahtzee",
	Chance:           "Chance",
}

// String returns the stable identifier used for CLI arguments and
// score storage, e.g. "full_house".
func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryIDs[c]
}

// Title returns the display name, e.g. "Full House".
func (c Category) Title() string {
	if c < 0 || int(c) >= NumCategories {
		return c.String()
	}
	return categoryTitles[c]
}

// Upper reports whether the category belongs to the upper section
// (ones through sixes), which counts toward the upper bonus.
func (c Category) Upper() bool {
	return c >= Ones && c <= Sixes
}

// Categories returns all categories in score-sheet order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory resolves a stable identifier back to its Category.
func ParseCategory(id string) (Category, error) {
	for i, s := range categoryIDs {
		if s == id {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("rules: unknown category %q", id)
}
