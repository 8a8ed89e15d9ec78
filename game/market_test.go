package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewDeckHoldsCompositionMinusMarketCamels(t *testing.T) {
	r := StandardRules()
	d := newDeck(r, rand.New(rand.NewSource(3)))

	var counts GoodCounts
	for _, g := range d.cards {
		counts[g]++
	}
	for _, g := range StandardGoods() {
		require.Equal(t, r.DeckComposition[g], counts[g],
			"Deck should carry the configured number of %v", g)
	}
	require.Equal(t, r.DeckComposition[Camel]-r.MarketCamels, counts[Camel],
		"Market-seeding camels should not be in the deck")
}

func TestNewDeckShufflesDeterministically(t *testing.T) {
	r := StandardRules()
	a := newDeck(r, rand.New(rand.NewSource(9)))
	b := newDeck(r, rand.New(rand.NewSource(9)))

	require.Equal(t, a.cards, b.cards, "Same seed should shuffle identically")
}

func TestMarketRefill(t *testing.T) {
	t.Run("refilling to capacity", func(t *testing.T) {
		m := Market{capacity: 5}
		m.add(Silk)
		d := Deck{cards: []GoodType{Gold, Camel, Spice, Leather, Diamond}}

		m.refill(&d)

		require.Equal(t, 5, m.Size(), "Market should refill to capacity")
		require.Equal(t, 1, m.Count(Gold), "Refill should draw from the deck front")
		require.Equal(t, 1, d.Size(), "Deck should shrink by the cards drawn")
	})

	t.Run("refilling from a short deck", func(t *testing.T) {
		m := Market{capacity: 5}
		m.add(Silk)
		d := Deck{cards: []GoodType{Gold, Spice, Leather}}

		m.refill(&d)

		require.Equal(t, 4, m.Size(), "Market should stop short when the deck runs dry")
		require.True(t, d.Empty(), "Deck should be exhausted")
		require.False(t, m.AtCapacity(), "Market below capacity should report so")
	})

	t.Run("refilling a full market", func(t *testing.T) {
		m := Market{capacity: 2}
		m.add(Silk)
		m.add(Gold)
		d := Deck{cards: []GoodType{Spice}}

		m.refill(&d)

		require.Equal(t, 2, m.Size(), "A full market should not draw")
		require.Equal(t, 1, d.Size(), "Deck should be untouched")
	})
}

func TestMarketTakeAllCamels(t *testing.T) {
	m := Market{capacity: 5}
	m.add(Camel)
	m.add(Camel)
	m.add(Silk)

	n := m.takeAllCamels()

	require.Equal(t, 2, n, "All camels should leave at once")
	require.Equal(t, 0, m.Camels(), "No camels should remain")
	require.Equal(t, 1, m.Count(Silk), "Standard goods should be untouched")
}

func TestMarketTake(t *testing.T) {
	m := Market{capacity: 5}
	m.add(Silk)

	require.True(t, m.take(Silk), "Taking an offered good should succeed")
	require.False(t, m.take(Silk), "Taking a missing good should fail")
	require.Equal(t, 0, m.Size())
}
