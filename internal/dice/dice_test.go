package dice

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		ok     bool
	}{
		{"valid", []int{1, 2, 3, 4, 5}, true},
		{"all same", []int{6, 6, 6, 6, 6}, true},
		{"too few", []int{1, 2, 3, 4}, false},
		{"too many", []int{1, 2, 3, 4, 5, 6}, false},
		{"face too low", []int{0, 2, 3, 4, 5}, false},
		{"face too high", []int{1, 2, 3, 4, 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.values...)
			if tt.ok && err != nil {
				t.Errorf("New(%v) failed: %v", tt.values, err)
			}
			if !tt.ok {
				if err == nil {
					t.Errorf("New(%v) should have failed", tt.values)
				} else if !errors.Is(err, ErrInvalidRoll) {
					t.Errorf("New(%v) error should wrap ErrInvalidRoll, got %v", tt.values, err)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	r, err := Parse([]string{"3", "2", "3", "3", "3"})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if r != (Roll{3, 2, 3, 3, 3}) {
		t.Errorf("Parse() = %v, want [3 2 3 3 3]", r)
	}

	if _, err := Parse([]string{"1", "2", "x", "4", "5"}); !errors.Is(err, ErrInvalidRoll) {
		t.Errorf("Parse with non-numeric die should wrap ErrInvalidRoll, got %v", err)
	}
	if _, err := Parse([]string{"1", "2"}); !errors.Is(err, ErrInvalidRoll) {
		t.Errorf("Parse with 2 dice should wrap ErrInvalidRoll, got %v", err)
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		roll Roll
		want int
	}{
		{Roll{1, 1, 1, 1, 1}, 5},
		{Roll{2, 2, 2, 5, 5}, 16},
		{Roll{6, 6, 6, 6, 6}, 30},
		{Roll{1, 2, 3, 4, 5}, 15},
	}
	for _, tt := range tests {
		if got := Sum(tt.roll); got != tt.want {
			t.Errorf("Sum(%v) = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestCountOf(t *testing.T) {
	r := Roll{6, 6, 6, 1, 2}
	tests := []struct {
		face int
		want int
	}{
		{6, 3},
		{1, 1},
		{2, 1},
		{5, 0},
	}
	for _, tt := range tests {
		if got := CountOf(r, tt.face); got != tt.want {
			t.Errorf("CountOf(%v, %d) = %d, want %d", r, tt.face, got, tt.want)
		}
	}
}

// The frequency distribution must report counts in order of first
// appearance, never sorted. The yahtzee rule inspects only the first
// entry and silently breaks if this is "improved" into a sorted map.
func TestFrequenciesFirstAppearanceOrder(t *testing.T) {
	tests := []struct {
		roll Roll
		want []int
	}{
		{Roll{3, 2, 3, 3, 3}, []int{4, 1}},
		{Roll{2, 3, 3, 3, 3}, []int{1, 4}},
		{Roll{4, 4, 4, 4, 4}, []int{5}},
		{Roll{1, 2, 3, 4, 5}, []int{1, 1, 1, 1, 1}},
		{Roll{5, 5, 2, 2, 1}, []int{2, 2, 1}},
		{Roll{1, 1, 3, 3, 3}, []int{2, 3}},
	}
	for _, tt := range tests {
		if got := Frequencies(tt.roll); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Frequencies(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestDistinct(t *testing.T) {
	faces := Distinct(Roll{3, 2, 3, 3, 3})
	if len(faces) != 2 || !faces[2] || !faces[3] {
		t.Errorf("Distinct({3,2,3,3,3}) = %v, want {2,3}", faces)
	}

	faces = Distinct(Roll{1, 2, 3, 4, 5})
	if len(faces) != 5 {
		t.Errorf("Distinct({1,2,3,4,5}) has %d faces, want 5", len(faces))
	}
}

func TestRollString(t *testing.T) {
	if got := (Roll{3, 2, 3, 3, 3}).String(); got != "3 2 3 3 3" {
		t.Errorf("String() = %q, want %q", got, "3 2 3 3 3")
	}
}
