package game

import "golang.org/x/exp/rand"

// Coin is a payout coin drawn from a good's coin stack. Immutable: once drawn
// it sits in exactly one satchel for the rest of the game.
type Coin struct {
	Value int
	Good  GoodType
}

// BonusCoin is drawn from a bonus tier stack for a large enough sale.
type BonusCoin struct {
	Value int
	Tier  BonusTier
}

// Bank holds the undrawn coins: one stack per standard good and one per bonus
// tier. Stacks are consumed strictly from the front and only ever shrink.
type Bank struct {
	coins [NumGoods][]Coin
	bonus [NumBonusTiers][]BonusCoin
}

// newBank builds the bank from the rule data. Coin stacks keep their
// configured order; bonus stacks are shuffled with the game rng so bonus
// values are awarded blind, tier by tier in ascending order so a fixed seed
// always yields the same bank.
func newBank(r *Rules, rng *rand.Rand) Bank {
	var b Bank
	for _, g := range StandardGoods() {
		values := r.CoinValues[g]
		stack := make([]Coin, len(values))
		for i, v := range values {
			stack[i] = Coin{Value: v, Good: g}
		}
		b.coins[g] = stack
	}
	for _, t := range AllBonusTiers() {
		values := r.BonusValues[t]
		stack := make([]BonusCoin, len(values))
		for i, v := range values {
			stack[i] = BonusCoin{Value: v, Tier: t}
		}
		rng.Shuffle(len(stack), func(i, j int) {
			stack[i], stack[j] = stack[j], stack[i]
		})
		b.bonus[t] = stack
	}
	return b
}

// TopCoin returns the next value the good's stack would pay out. The second
// result is false when the stack is exhausted (or the good has no stack).
func (b *Bank) TopCoin(g GoodType) (int, bool) {
	if !g.IsStandard() || len(b.coins[g]) == 0 {
		return 0, false
	}
	return b.coins[g][0].Value, true
}

// CoinsLeft returns how many coins remain in the good's stack.
func (b *Bank) CoinsLeft(g GoodType) int {
	if !g.IsStandard() {
		return 0
	}
	return len(b.coins[g])
}

// Exhausted reports whether the good's coin stack is empty.
func (b *Bank) Exhausted(g GoodType) bool {
	return g.IsStandard() && len(b.coins[g]) == 0
}

// DrawCoins removes up to n coins from the front of the good's stack and
// returns them. A short stack yields whatever remains, possibly nothing; that
// is expected behavior, not an error.
func (b *Bank) DrawCoins(g GoodType, n int) []Coin {
	if !g.IsStandard() || n <= 0 {
		return nil
	}
	if n > len(b.coins[g]) {
		n = len(b.coins[g])
	}
	drawn := make([]Coin, n)
	copy(drawn, b.coins[g][:n])
	b.coins[g] = b.coins[g][n:]
	return drawn
}

// BonusLeft returns how many coins remain in the tier's stack.
func (b *Bank) BonusLeft(t BonusTier) int {
	return len(b.bonus[t])
}

// DrawBonus removes the front coin of the tier's stack. The second result is
// false when the stack is empty.
func (b *Bank) DrawBonus(t BonusTier) (BonusCoin, bool) {
	if len(b.bonus[t]) == 0 {
		return BonusCoin{}, false
	}
	coin := b.bonus[t][0]
	b.bonus[t] = b.bonus[t][1:]
	return coin, true
}

// anyStandardExhausted returns the first standard good whose coin stack is
// empty, if there is one. Stack exhaustion is one of the game end triggers.
func (b *Bank) anyStandardExhausted() (GoodType, bool) {
	for _, g := range StandardGoods() {
		if len(b.coins[g]) == 0 {
			return g, true
		}
	}
	return 0, false
}

func (b *Bank) clone() Bank {
	var c Bank
	for g := range b.coins {
		if b.coins[g] != nil {
			c.coins[g] = append([]Coin(nil), b.coins[g]...)
		}
	}
	for t := range b.bonus {
		if b.bonus[t] != nil {
			c.bonus[t] = append([]BonusCoin(nil), b.bonus[t]...)
		}
	}
	return c
}
