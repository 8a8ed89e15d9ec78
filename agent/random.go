package agent

import (
	"bazaar/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal actions. It is the baseline
// opponent: any strategy worth keeping should beat it.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent with its own seeded source, so repeated
// runs with the same seeds replay identically.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) SelectAction(actions []game.Action, _ game.Observation) game.Action {
	if len(actions) == 0 {
		return game.Pass()
	}
	return actions[r.rng.Intn(len(actions))]
}
