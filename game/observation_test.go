package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := StandardRules()
	gs := testStateWith(r, NewHand(Silk, Silk, Camel),
		NewHand(Diamond, Camel, Camel, Camel, Camel).Counts(),
		[]GoodType{Leather, Spice})
	gs.bank.coins[Silk] = []Coin{{3, Silk}, {1, Silk}}
	gs.bank.coins[Diamond] = nil
	gs.hands[1] = NewHand(Leather)

	o := gs.Observe(0)

	require.Equal(t, gs.MarketCounts(), o.Market, "The market should be visible as is")
	require.Equal(t, NewHand(Silk, Silk, Camel).Counts(), o.Hand, "The own hand should be fully visible")
	require.Equal(t, 2, o.HandSize, "Hand size should exclude camels")
	require.Equal(t, r.HandLimit, o.HandLimit)
	require.Equal(t, 2, o.DeckSize)
	require.Equal(t, 3, o.TopCoins[Silk], "The next payout should be the stack front")
	require.Equal(t, 0, o.TopCoins[Diamond], "An exhausted stack should show zero")
	require.Equal(t, 2, o.CoinsLeft[Silk])
	require.Equal(t, len(r.BonusValues[BonusThree]), o.BonusLeft[BonusThree])

	other := gs.Observe(1)
	require.Equal(t, NewHand(Leather).Counts(), other.Hand,
		"Each trader should observe their own hand")
	require.Equal(t, 1, other.HandSize)
}
