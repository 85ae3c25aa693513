// Package dice provides the five-die roll type and the analysis
// primitives the scoring rules are built from: summing, per-value
// counting, and the frequency distribution of faces.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Count is the number of dice in a roll.
const Count = 5

// MinFace and MaxFace bound the valid die face values.
const (
	MinFace = 1
	MaxFace = 6
)

// ErrInvalidRoll is returned by the constructors when input is not a
// well-formed five-die roll. Rule evaluation never validates; callers
// crossing a trust boundary should construct rolls through New or Parse.
var ErrInvalidRoll = errors.New("dice: invalid roll")

// Roll is an ordered collection of five die face values.
// Order matters: the frequency distribution is reported in order of
// first appearance, and the yahtzee rule inspects the first entry.
type Roll [Count]int

// New builds a Roll from the given values, validating length and range.
func New(values ...int) (Roll, error) {
	var r Roll
	if len(values) != Count {
		return r, fmt.Errorf("%w: got %d dice, want %d", ErrInvalidRoll, len(values), Count)
	}
	for i, v := range values {
		if v < MinFace || v > MaxFace {
			return r, fmt.Errorf("%w: die %d has face %d, want %d-%d", ErrInvalidRoll, i+1, v, MinFace, MaxFace)
		}
		r[i] = v
	}
	return r, nil
}

// Parse builds a Roll from string arguments, e.g. CLI positional args.
func Parse(args []string) (Roll, error) {
	if len(args) != Count {
		return Roll{}, fmt.Errorf("%w: got %d dice, want %d", ErrInvalidRoll, len(args), Count)
	}
	values := make([]int, 0, Count)
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return Roll{}, fmt.Errorf("%w: %q is not a die value", ErrInvalidRoll, a)
		}
		values = append(values, v)
	}
	return New(values...)
}

// Sum returns the total of all five dice.
func Sum(r Roll) int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// CountOf returns how many dice in the roll show the given face.
func CountOf(r Roll, face int) int {
	n := 0
	for _, v := range r {
		if v == face {
			n++
		}
	}
	return n
}

// Frequencies returns the occurrence count of each distinct face in the
// roll, in order of first appearance. The result is never sorted: the
// yahtzee rule depends on the first entry belonging to the first die.
func Frequencies(r Roll) []int {
	faces := make([]int, 0, Count)
	counts := make([]int, 0, Count)
	for _, v := range r {
		found := false
		for i, f := range faces {
			if f == v {
				counts[i]++
				found = true
				break
			}
		}
		if !found {
			faces = append(faces, v)
			counts = append(counts, 1)
		}
	}
	return counts
}

// Distinct returns the set of faces present in the roll.
func Distinct(r Roll) map[int]bool {
	set := make(map[int]bool, Count)
	for _, v := range r {
		set[v] = true
	}
	return set
}

// String renders the roll as space-separated faces, e.g. "3 2 3 3 3".
func (r Roll) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
