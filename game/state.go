package game

import (
	"encoding/binary"
	"hash/fnv"
)

// EndReason says why a game ended.
type EndReason int

const (
	NotEnded EndReason = iota
	// CoinsExhausted: some standard good's coin stack ran dry.
	CoinsExhausted
	// DeckExhausted: the deck is empty and the market can no longer be
	// refilled to capacity.
	DeckExhausted
)

func (r EndReason) String() string {
	switch r {
	case NotEnded:
		return "not ended"
	case CoinsExhausted:
		return "coin stack exhausted"
	case DeckExhausted:
		return "deck exhausted"
	default:
		return "unknown"
	}
}

// GameState is the authoritative state of one game: both hands and satchels,
// the shared market, the deck, the coin bank and whose turn it is. The
// action generator and the resolver operate on it directly and nothing in
// the engine caches state derived from it.
//
// States are immutable from the outside: Apply returns a fresh state and
// leaves the receiver untouched, so agents may keep old states around.
type GameState struct {
	rules     *Rules
	hands     [2]Hand
	satchels  [2]Satchel
	market    Market
	deck      Deck
	bank      Bank
	current   int
	turns     int
	ended     bool
	endReason EndReason
}

// Rules returns the rule data the game was set up from. Shared and read-only.
func (gs *GameState) Rules() *Rules {
	return gs.rules
}

// Current returns the index (0 or 1) of the trader to act.
func (gs *GameState) Current() int {
	return gs.current
}

// Turns returns how many actions have been resolved so far.
func (gs *GameState) Turns() int {
	return gs.turns
}

// Ended reports whether the game has reached its terminal state.
func (gs *GameState) Ended() bool {
	return gs.ended
}

// Reason returns why the game ended, or NotEnded while it is running.
func (gs *GameState) Reason() EndReason {
	return gs.endReason
}

// HandOf returns a copy of the given trader's hand.
func (gs *GameState) HandOf(player int) Hand {
	return gs.hands[player]
}

// Points returns the given trader's score. Bonus coins are included only in
// the final tally.
func (gs *GameState) Points(player int, includeBonus bool) int {
	return gs.satchels[player].Points(includeBonus)
}

// SatchelSummary returns the display form of the given trader's satchel.
func (gs *GameState) SatchelSummary(player int) SatchelSummary {
	return gs.satchels[player].Summary()
}

// MarketCounts returns the market's composition.
func (gs *GameState) MarketCounts() GoodCounts {
	return gs.market.Counts()
}

// DeckSize returns how many cards are left to draw.
func (gs *GameState) DeckSize() int {
	return gs.deck.Size()
}

// TopCoin returns the next payout value for a standard good, false if the
// stack is exhausted.
func (gs *GameState) TopCoin(g GoodType) (int, bool) {
	return gs.bank.TopCoin(g)
}

// CoinsLeft returns how many payout coins remain for a standard good.
func (gs *GameState) CoinsLeft(g GoodType) int {
	return gs.bank.CoinsLeft(g)
}

// BonusLeft returns how many bonus coins remain in a tier.
func (gs *GameState) BonusLeft(t BonusTier) int {
	return gs.bank.BonusLeft(t)
}

// CamelMajority returns the trader holding strictly more camels than the
// other. The second result is false on a tie.
func (gs *GameState) CamelMajority() (int, bool) {
	c0 := gs.hands[0].Count(Camel)
	c1 := gs.hands[1].Count(Camel)
	switch {
	case c0 > c1:
		return 0, true
	case c1 > c0:
		return 1, true
	default:
		return 0, false
	}
}

// Scores returns both traders' satchel points.
func (gs *GameState) Scores(includeBonus bool) [2]int {
	return [2]int{
		gs.satchels[0].Points(includeBonus),
		gs.satchels[1].Points(includeBonus),
	}
}

// FinalScores returns the full end-of-game tally: payout coins plus bonus
// coins plus the herd bonus for a strict camel majority. It reads state only
// and never mutates the satchels, so it is reproducible at any time from the
// same state.
func (gs *GameState) FinalScores() [2]int {
	scores := gs.Scores(true)
	if winner, ok := gs.CamelMajority(); ok {
		scores[winner] += gs.rules.HerdBonus
	}
	return scores
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (gs *GameState) Clone() *GameState {
	clone := &GameState{
		rules:     gs.rules,
		hands:     gs.hands,
		market:    gs.market,
		deck:      gs.deck.clone(),
		bank:      gs.bank.clone(),
		current:   gs.current,
		turns:     gs.turns,
		ended:     gs.ended,
		endReason: gs.endReason,
	}
	clone.satchels[0] = gs.satchels[0].clone()
	clone.satchels[1] = gs.satchels[1].clone()
	return clone
}

// Hash digests the full game state. Two states that would play out
// identically hash the same; agents use this for state deduplication.
func (gs *GameState) Hash() uint64 {
	hasher := fnv.New64a()
	write := func(v int64) {
		binary.Write(hasher, binary.LittleEndian, v)
	}
	write(int64(gs.current))
	if gs.ended {
		write(1)
	} else {
		write(0)
	}
	for p := 0; p < 2; p++ {
		for _, n := range gs.hands[p].Counts() {
			write(int64(n))
		}
		write(int64(gs.satchels[p].Points(false)))
		write(int64(gs.satchels[p].Points(true)))
		for _, t := range AllBonusTiers() {
			write(int64(gs.satchels[p].BonusCount(t)))
		}
	}
	for _, n := range gs.market.Counts() {
		write(int64(n))
	}
	for _, c := range gs.deck.cards {
		write(int64(c))
	}
	for _, g := range StandardGoods() {
		write(int64(len(gs.bank.coins[g])))
		for _, c := range gs.bank.coins[g] {
			write(int64(c.Value))
		}
	}
	for _, t := range AllBonusTiers() {
		write(int64(len(gs.bank.bonus[t])))
		for _, c := range gs.bank.bonus[t] {
			write(int64(c.Value))
		}
	}
	return hasher.Sum64()
}

// checkTermination flips the state to ended when a termination condition
// holds. It runs after setup and after every resolved action.
func (gs *GameState) checkTermination() {
	if gs.ended {
		return
	}
	if _, exhausted := gs.bank.anyStandardExhausted(); exhausted {
		gs.ended = true
		gs.endReason = CoinsExhausted
		return
	}
	if gs.deck.Empty() && !gs.market.AtCapacity() {
		gs.ended = true
		gs.endReason = DeckExhausted
	}
}
