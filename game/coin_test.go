package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewBankKeepsCoinStackOrder(t *testing.T) {
	r := StandardRules()
	b := newBank(r, rand.New(rand.NewSource(1)))

	for _, g := range StandardGoods() {
		require.Equal(t, len(r.CoinValues[g]), b.CoinsLeft(g), "Stack size should match the rules for %v", g)
		for i, want := range r.CoinValues[g] {
			require.Equal(t, want, b.coins[g][i].Value,
				"Coin stacks should keep their configured order for %v", g)
			require.Equal(t, g, b.coins[g][i].Good, "Coins should carry their good type")
		}
	}
	require.Equal(t, 0, b.CoinsLeft(Camel), "Camels should have no coin stack")
}

func TestNewBankShufflesBonusStacksDeterministically(t *testing.T) {
	r := StandardRules()
	a := newBank(r, rand.New(rand.NewSource(7)))
	b := newBank(r, rand.New(rand.NewSource(7)))

	for _, tier := range AllBonusTiers() {
		require.Equal(t, a.bonus[tier], b.bonus[tier],
			"Same seed should stack the %v bonus coins identically", tier)
		require.Equal(t, len(r.BonusValues[tier]), a.BonusLeft(tier),
			"Bonus stack size should match the rules")
	}
}

func TestDrawCoins(t *testing.T) {
	t.Run("drawing from the front", func(t *testing.T) {
		b := Bank{}
		b.coins[Silk] = []Coin{{5, Silk}, {4, Silk}, {3, Silk}, {2, Silk}, {1, Silk}}

		drawn := b.DrawCoins(Silk, 3)

		require.Equal(t, []Coin{{5, Silk}, {4, Silk}, {3, Silk}}, drawn,
			"Should pay the front of the stack first")
		require.Equal(t, 2, b.CoinsLeft(Silk), "Stack should shrink by the draw")
		top, ok := b.TopCoin(Silk)
		require.True(t, ok, "Stack should still have a top coin")
		require.Equal(t, 2, top, "Next payout should be the new front")
	})

	t.Run("drawing past exhaustion", func(t *testing.T) {
		b := Bank{}
		b.coins[Spice] = []Coin{{2, Spice}}

		drawn := b.DrawCoins(Spice, 4)

		require.Equal(t, []Coin{{2, Spice}}, drawn, "A short stack should pay whatever remains")
		require.True(t, b.Exhausted(Spice), "Stack should be exhausted after the draw")
		require.Empty(t, b.DrawCoins(Spice, 1), "An exhausted stack should pay nothing")
	})

	t.Run("camels never pay", func(t *testing.T) {
		b := Bank{}

		require.Empty(t, b.DrawCoins(Camel, 2), "Camels should have no payouts")
		_, ok := b.TopCoin(Camel)
		require.False(t, ok, "Camels should have no top coin")
	})
}

func TestPayoutsNeverIncrease(t *testing.T) {
	r := StandardRules()
	for seed := uint64(1); seed <= 5; seed++ {
		b := newBank(r, rand.New(rand.NewSource(seed)))
		for _, g := range StandardGoods() {
			prev, ok := b.TopCoin(g)
			require.True(t, ok)
			for !b.Exhausted(g) {
				coin := b.DrawCoins(g, 1)[0]
				require.LessOrEqual(t, coin.Value, prev,
					"A later %v payout should never beat an earlier one", g)
				prev = coin.Value
			}
		}
	}
}

func TestDrawBonus(t *testing.T) {
	b := Bank{}
	b.bonus[BonusThree] = []BonusCoin{{2, BonusThree}, {1, BonusThree}}

	first, ok := b.DrawBonus(BonusThree)
	require.True(t, ok)
	require.Equal(t, BonusCoin{2, BonusThree}, first, "Should draw the front coin")
	require.Equal(t, 1, b.BonusLeft(BonusThree))

	second, ok := b.DrawBonus(BonusThree)
	require.True(t, ok)
	require.Equal(t, BonusCoin{1, BonusThree}, second)

	_, ok = b.DrawBonus(BonusThree)
	require.False(t, ok, "An empty tier should yield nothing")
}

func TestAnyStandardExhausted(t *testing.T) {
	r := StandardRules()
	b := newBank(r, rand.New(rand.NewSource(1)))

	_, exhausted := b.anyStandardExhausted()
	require.False(t, exhausted, "A fresh bank should have no empty stack")

	b.DrawCoins(Silver, len(r.CoinValues[Silver]))

	g, exhausted := b.anyStandardExhausted()
	require.True(t, exhausted, "Draining a stack should be noticed")
	require.Equal(t, Silver, g, "The drained good should be reported")
}
