package game

import "fmt"

// Apply resolves an action for the trader to act and returns the resulting
// state. The receiver is never modified. Agents are untrusted, so every
// precondition is re-checked here even though the engine only submits
// generated actions; a violated precondition returns ErrIllegalAction and
// applying to a finished game returns ErrGameOver.
//
// Effects are atomic: on error the returned state is nil and no part of the
// action has happened.
func (gs *GameState) Apply(a Action) (*GameState, error) {
	if gs.ended {
		return nil, fmt.Errorf("%w: no actions after %v", ErrGameOver, gs.endReason)
	}
	next := gs.Clone()
	var err error
	switch a.Type {
	case TakeAction:
		err = next.applyTake(a.Good)
	case HerdAction:
		err = next.applyHerd()
	case TradeAction:
		err = next.applyTrade(a.Give, a.Get)
	case SellAction:
		err = next.applySell(a.Good, a.Count)
	case PassAction:
		err = next.applyPass()
	default:
		err = fmt.Errorf("%w: unknown action type %d", ErrIllegalAction, a.Type)
	}
	if err != nil {
		return nil, err
	}
	next.turns++
	next.current = 1 - next.current
	next.checkTermination()
	return next, nil
}

// applyTake moves one standard good from the market into the hand and
// refills the market from the deck.
func (gs *GameState) applyTake(g GoodType) error {
	if !g.IsStandard() {
		return fmt.Errorf("%w: take %v: camels are herded, not taken singly", ErrIllegalAction, g)
	}
	if gs.market.Count(g) == 0 {
		return fmt.Errorf("%w: take %v: none in market", ErrIllegalAction, g)
	}
	if gs.hands[gs.current].Size(false) >= gs.rules.HandLimit {
		return fmt.Errorf("%w: take %v: hand holds %d goods already", ErrIllegalAction, g, gs.rules.HandLimit)
	}
	gs.market.take(g)
	gs.hands[gs.current].Add(g)
	gs.market.refill(&gs.deck)
	return nil
}

// applyHerd moves every camel in the market into the hand and refills.
// Camels never count against the hand limit.
func (gs *GameState) applyHerd() error {
	n := gs.market.Camels()
	if n == 0 {
		return fmt.Errorf("%w: herd: no camels in market", ErrIllegalAction)
	}
	gs.market.takeAllCamels()
	for i := 0; i < n; i++ {
		gs.hands[gs.current].Add(Camel)
	}
	gs.market.refill(&gs.deck)
	return nil
}

// applyTrade swaps goods between hand and market. Camels may be given but
// never taken, the two sides must not share a good, and the hand limit holds
// after the swap. The market stays the same size so no refill happens.
func (gs *GameState) applyTrade(give, get GoodCounts) error {
	if give.Negative() || get.Negative() {
		return fmt.Errorf("%w: trade: negative good count", ErrIllegalAction)
	}
	k := give.Total()
	if k == 0 || get.Empty() {
		return fmt.Errorf("%w: trade: both sides must be non-empty", ErrIllegalAction)
	}
	if get.Total() != k {
		return fmt.Errorf("%w: trade: %d goods for %d", ErrIllegalAction, k, get.Total())
	}
	if k < 2 {
		return fmt.Errorf("%w: trade: fewer than 2 goods per side", ErrIllegalAction)
	}
	if get[Camel] != 0 {
		return fmt.Errorf("%w: trade: camels cannot be taken from the market", ErrIllegalAction)
	}
	if give.Overlaps(get) {
		return fmt.Errorf("%w: trade: a good appears on both sides", ErrIllegalAction)
	}
	hand := &gs.hands[gs.current]
	if !hand.Contains(give) {
		return fmt.Errorf("%w: trade: hand lacks %v", ErrIllegalAction, give)
	}
	if !gs.market.Counts().Contains(get) {
		return fmt.Errorf("%w: trade: market lacks %v", ErrIllegalAction, get)
	}
	if hand.Size(false)-give.Standard()+get.Total() > gs.rules.HandLimit {
		return fmt.Errorf("%w: trade: hand would exceed %d goods", ErrIllegalAction, gs.rules.HandLimit)
	}
	hand.removeCounts(give)
	hand.addCounts(get)
	gs.market.removeCounts(get)
	gs.market.addCounts(give)
	return nil
}

// applySell removes the goods from the hand for good, awards one coin per
// card from the good's stack front, and awards at most one bonus coin from
// the highest qualifying tier that still has coins. A stack holding fewer
// coins than cards sold pays out whatever remains. Sold cards leave play.
func (gs *GameState) applySell(g GoodType, count int) error {
	if !g.IsStandard() {
		return fmt.Errorf("%w: sell %v: camels are never sold", ErrIllegalAction, g)
	}
	if count < gs.rules.minSale(g) {
		return fmt.Errorf("%w: sell %dx%v: minimum sale is %d", ErrIllegalAction, count, g, gs.rules.minSale(g))
	}
	hand := &gs.hands[gs.current]
	if held := hand.Count(g); held < count {
		return fmt.Errorf("%w: sell %dx%v: only %d in hand", ErrIllegalAction, count, g, held)
	}
	var sold GoodCounts
	sold[g] = count
	hand.removeCounts(sold)
	satchel := &gs.satchels[gs.current]
	for _, c := range gs.bank.DrawCoins(g, count) {
		satchel.AddCoin(c)
	}
	for _, t := range tiersDescending {
		if !gs.rules.qualifies(t, count) {
			continue
		}
		if c, ok := gs.bank.DrawBonus(t); ok {
			satchel.AddBonusCoin(c)
			break
		}
	}
	return nil
}

// applyPass is a no-op turn. It is legal only when the trader has no other
// legal action, which keeps a stuck participant from stalling the loop
// without letting agents skip turns at will.
func (gs *GameState) applyPass() error {
	if len(gs.LegalActions()) != 0 {
		return fmt.Errorf("%w: pass: legal actions remain", ErrIllegalAction)
	}
	return nil
}
