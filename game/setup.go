package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewGame validates the rules and deals a fresh game from the seed: shuffle
// the deck, seed the market with its camels and refill it to capacity, then
// deal both hands one card at a time starting with trader 0. The bonus
// stacks are shuffled from the same source, so one seed fixes the whole
// game. Trader 0 acts first.
func NewGame(r *Rules, seed uint64) (*GameState, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	deck := newDeck(r, rng)
	bank := newBank(r, rng)
	gs := &GameState{
		rules:  r,
		deck:   deck,
		bank:   bank,
		market: Market{capacity: r.MarketCapacity},
	}
	for i := 0; i < r.MarketCamels; i++ {
		gs.market.add(Camel)
	}
	gs.market.refill(&gs.deck)
	for i := 0; i < 2*r.DealSize; i++ {
		card, ok := gs.deck.Draw()
		if !ok {
			return nil, fmt.Errorf("%w: deck ran out during the deal", ErrInvalidRules)
		}
		gs.hands[i%2].Add(card)
	}
	gs.checkTermination()
	return gs, nil
}
