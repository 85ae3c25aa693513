package dice

import "math/rand"

// Roller produces rolls and rerolls from a seeded random source.
// A fixed seed yields a reproducible sequence, which the game layer
// relies on for deterministic replays and tests.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller seeded with the given value.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a fresh roll of all five dice.
func (ro *Roller) Roll() Roll {
	var r Roll
	for i := range r {
		r[i] = ro.rollDie()
	}
	return r
}

// Reroll returns a copy of r with every die not marked held rolled
// again. Held dice keep their face and position.
func (ro *Roller) Reroll(r Roll, held [Count]bool) Roll {
	out := r
	for i := range out {
		if !held[i] {
			out[i] = ro.rollDie()
		}
	}
	return out
}

func (ro *Roller) rollDie() int {
	return MinFace + ro.rng.Intn(MaxFace-MinFace+1)
}
