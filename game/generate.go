package game

// LegalActions enumerates every legal action for the trader to act, in a
// stable order: takes by good order, then herd, then sells by good order and
// count ascending, then trades by size and lexicographic count vectors. The
// order carries no meaning, it only keeps seeded runs reproducible. An ended
// game has no legal actions; an empty set on a live game means the trader is
// stuck and the engine resolves a pass.
//
// Pass itself is never enumerated. A trader with options must use one.
func (gs *GameState) LegalActions() []Action {
	if gs.ended {
		return nil
	}
	var actions []Action
	hand := gs.hands[gs.current]
	held := hand.Counts()
	market := gs.market.Counts()
	capped := hand.Size(false)

	for _, g := range StandardGoods() {
		if market[g] > 0 && capped < gs.rules.HandLimit {
			actions = append(actions, Take(g))
		}
	}
	if market[Camel] > 0 {
		actions = append(actions, Herd())
	}
	for _, g := range StandardGoods() {
		for count := gs.rules.minSale(g); count <= held[g]; count++ {
			actions = append(actions, Sell(g, count))
		}
	}
	return append(actions, gs.tradeActions(held, capped, market)...)
}

// tradeActions enumerates every (give, get) pair of equal size k ≥ 2 where
// the give side fits the hand, the get side fits the market's standard
// goods, the sides share no good, and the hand limit holds after the swap.
func (gs *GameState) tradeActions(held GoodCounts, capped int, market GoodCounts) []Action {
	var offer GoodCounts
	for _, g := range StandardGoods() {
		offer[g] = market[g]
	}
	maxSize := held.Total()
	if n := offer.Total(); n < maxSize {
		maxSize = n
	}
	var actions []Action
	for k := 2; k <= maxSize; k++ {
		gets := subMultisets(offer, k)
		if len(gets) == 0 {
			continue
		}
		for _, give := range subMultisets(held, k) {
			if capped-give.Standard()+k > gs.rules.HandLimit {
				continue
			}
			for _, get := range gets {
				if give.Overlaps(get) {
					continue
				}
				actions = append(actions, Trade(give, get))
			}
		}
	}
	return actions
}

// subMultisets returns every way to pick exactly k goods out of avail, as
// count vectors in ascending lexicographic order.
func subMultisets(avail GoodCounts, k int) []GoodCounts {
	var out []GoodCounts
	var pick GoodCounts
	var walk func(idx, left int)
	walk = func(idx, left int) {
		if left == 0 {
			out = append(out, pick)
			return
		}
		if idx >= NumGoods {
			return
		}
		most := avail[idx]
		if left < most {
			most = left
		}
		for n := 0; n <= most; n++ {
			pick[idx] = n
			walk(idx+1, left-n)
		}
		pick[idx] = 0
	}
	walk(0, k)
	return out
}
