package game

// Observation is the slice of game state an agent decides from. Everything
// in it is public or belongs to the observing trader; the opponent's hand
// and banked coins stay hidden.
type Observation struct {
	// Market holds the face-up goods, camels included.
	Market GoodCounts
	// TopCoins holds the next payout value per standard good, 0 when the
	// stack is exhausted.
	TopCoins [NumGoods]int
	// CoinsLeft holds the remaining payout coins per standard good.
	CoinsLeft [NumGoods]int
	// BonusLeft holds the remaining bonus coins per tier.
	BonusLeft [NumBonusTiers]int
	// Hand is the observing trader's full hand, camels included.
	Hand GoodCounts
	// HandSize counts the hand's standard goods, the number the hand limit
	// caps.
	HandSize int
	// HandLimit is the most standard goods a hand may hold.
	HandLimit int
	// DeckSize is the number of cards left to draw.
	DeckSize int
}

// Observe builds the given trader's view of the current state.
func (gs *GameState) Observe(player int) Observation {
	o := Observation{
		Market:    gs.market.Counts(),
		Hand:      gs.hands[player].Counts(),
		HandSize:  gs.hands[player].Size(false),
		HandLimit: gs.rules.HandLimit,
		DeckSize:  gs.deck.Size(),
	}
	for _, g := range StandardGoods() {
		if v, ok := gs.bank.TopCoin(g); ok {
			o.TopCoins[g] = v
		}
		o.CoinsLeft[g] = gs.bank.CoinsLeft(g)
	}
	for _, t := range AllBonusTiers() {
		o.BonusLeft[t] = gs.bank.BonusLeft(t)
	}
	return o
}
