package game

import "fmt"

// Rules is the configuration the game is set up from: hand limit, market
// shape, deck composition, coin stack values, bonus tiers and the herd
// majority bonus. Rules logic never hard-codes these numbers; variants are a
// matter of building a different Rules value.
type Rules struct {
	// HandLimit caps the number of non-camel goods a hand may hold.
	HandLimit int
	// MarketCapacity is the size the market is refilled toward.
	MarketCapacity int
	// MarketCamels is the number of camels seeding the market at setup.
	MarketCamels int
	// DealSize is the number of cards dealt to each hand at setup.
	DealSize int
	// DeckComposition is the number of cards per good in a fresh game,
	// market camels included.
	DeckComposition GoodCounts
	// CoinValues holds each standard good's payout stack, next coin first.
	// Values must be non-increasing front to back: later sales of a good
	// never pay more than earlier ones. The camel slot stays empty.
	CoinValues [NumGoods][]int
	// BonusValues holds each tier's bonus coin values. The stacks are
	// shuffled at setup, so the configured order carries no meaning.
	BonusValues [NumBonusTiers][]int
	// BonusThresholds is the minimum sale size qualifying for each tier.
	BonusThresholds [NumBonusTiers]int
	// MinSale is the minimum count a sale of each good must have. Zero
	// means the general minimum of one. The camel slot stays zero: camels
	// are never sold.
	MinSale [NumGoods]int
	// HerdBonus is awarded at the end to the trader holding strictly more
	// camels than the other. On a tie nobody gets it.
	HerdBonus int
}

// StandardRules returns the rule set of the reference game.
func StandardRules() *Rules {
	r := &Rules{
		HandLimit:      7,
		MarketCapacity: 5,
		MarketCamels:   3,
		DealSize:       5,
		HerdBonus:      5,
	}
	r.DeckComposition = GoodCounts{
		Diamond: 6,
		Gold:    6,
		Silver:  6,
		Silk:    8,
		Spice:   8,
		Leather: 10,
		Camel:   11,
	}
	r.CoinValues[Diamond] = []int{7, 7, 5, 5, 5}
	r.CoinValues[Gold] = []int{6, 6, 5, 5, 5}
	r.CoinValues[Silver] = []int{5, 5, 5, 5, 5}
	r.CoinValues[Silk] = []int{5, 3, 3, 2, 2, 1, 1}
	r.CoinValues[Spice] = []int{5, 3, 3, 2, 2, 1, 1}
	r.CoinValues[Leather] = []int{4, 3, 2, 1, 1, 1, 1, 1, 1}
	r.BonusValues[BonusThree] = []int{3, 3, 2, 2, 2, 1, 1}
	r.BonusValues[BonusFour] = []int{6, 6, 5, 5, 4, 4}
	r.BonusValues[BonusFive] = []int{10, 10, 9, 8, 8}
	r.BonusThresholds = [NumBonusTiers]int{3, 4, 5}
	r.MinSale[Diamond] = 2
	r.MinSale[Gold] = 2
	r.MinSale[Silver] = 2
	return r
}

// minSale returns the effective minimum sale count for a good.
func (r *Rules) minSale(g GoodType) int {
	if r.MinSale[g] < 1 {
		return 1
	}
	return r.MinSale[g]
}

// qualifies reports whether a sale of the given size reaches the tier's
// threshold.
func (r *Rules) qualifies(t BonusTier, count int) bool {
	return count >= r.BonusThresholds[t]
}

// Validate checks the rule data for internal consistency. A game can only be
// set up from valid rules.
func (r *Rules) Validate() error {
	if r.HandLimit < 1 {
		return fmt.Errorf("%w: hand limit %d", ErrInvalidRules, r.HandLimit)
	}
	if r.MarketCapacity < 1 {
		return fmt.Errorf("%w: market capacity %d", ErrInvalidRules, r.MarketCapacity)
	}
	if r.MarketCamels < 0 || r.MarketCamels > r.DeckComposition[Camel] {
		return fmt.Errorf("%w: %d market camels but %d camels in the deck",
			ErrInvalidRules, r.MarketCamels, r.DeckComposition[Camel])
	}
	if r.MarketCamels > r.MarketCapacity {
		return fmt.Errorf("%w: %d market camels exceed capacity %d",
			ErrInvalidRules, r.MarketCamels, r.MarketCapacity)
	}
	if r.DealSize < 0 {
		return fmt.Errorf("%w: deal size %d", ErrInvalidRules, r.DealSize)
	}
	if r.HerdBonus < 0 {
		return fmt.Errorf("%w: herd bonus %d", ErrInvalidRules, r.HerdBonus)
	}
	for g, n := range r.DeckComposition {
		if n < 0 {
			return fmt.Errorf("%w: %v count %d", ErrInvalidRules, GoodType(g), n)
		}
	}
	// Setup must be able to fill both hands and the market. The market
	// camels come out of the composition but also pre-fill the market, so
	// they cancel out of the bound.
	needed := 2*r.DealSize + r.MarketCapacity
	if r.DeckComposition.Total() < needed {
		return fmt.Errorf("%w: deck of %d cannot cover setup needing %d",
			ErrInvalidRules, r.DeckComposition.Total(), needed)
	}
	if len(r.CoinValues[Camel]) != 0 {
		return fmt.Errorf("%w: camels cannot have a coin stack", ErrInvalidRules)
	}
	if r.MinSale[Camel] != 0 {
		return fmt.Errorf("%w: camels cannot have a sale minimum", ErrInvalidRules)
	}
	for _, g := range StandardGoods() {
		values := r.CoinValues[g]
		if len(values) == 0 {
			return fmt.Errorf("%w: %v has an empty coin stack", ErrInvalidRules, g)
		}
		for i := 1; i < len(values); i++ {
			if values[i] > values[i-1] {
				return fmt.Errorf("%w: %v coin values increase at position %d",
					ErrInvalidRules, g, i)
			}
		}
		if r.MinSale[g] < 0 {
			return fmt.Errorf("%w: %v sale minimum %d", ErrInvalidRules, g, r.MinSale[g])
		}
	}
	prev := 0
	for _, t := range AllBonusTiers() {
		if r.BonusThresholds[t] <= prev {
			return fmt.Errorf("%w: bonus thresholds must increase tier to tier", ErrInvalidRules)
		}
		prev = r.BonusThresholds[t]
	}
	return nil
}
