package game

import "golang.org/x/exp/rand"

// Deck is the face-down draw pile the market replenishes from. It is built
// once at setup from the configured composition, shuffled with the game rng,
// and only ever shrinks.
type Deck struct {
	cards []GoodType
}

func newDeck(r *Rules, rng *rand.Rand) Deck {
	cards := []GoodType{}
	for g, n := range r.DeckComposition {
		count := n
		if GoodType(g) == Camel {
			// The camels seeding the market never enter the deck.
			count -= r.MarketCamels
		}
		for i := 0; i < count; i++ {
			cards = append(cards, GoodType(g))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return Deck{cards: cards}
}

// Size returns how many cards remain.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Empty reports whether the deck is exhausted.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Draw removes the top card. The second result is false when the deck is
// empty.
func (d *Deck) Draw() (GoodType, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	g := d.cards[0]
	d.cards = d.cards[1:]
	return g, true
}

func (d *Deck) clone() Deck {
	if d.cards == nil {
		return Deck{}
	}
	return Deck{cards: append([]GoodType(nil), d.cards...)}
}

// Market is the shared pool of goods both traders draw from. It is refilled
// from the deck up to its capacity after goods leave it for a hand; once the
// deck runs dry the market simply shrinks, which ends the game.
type Market struct {
	goods    GoodCounts
	capacity int
}

// Counts returns the market's composition.
func (m *Market) Counts() GoodCounts {
	return m.goods
}

// Count returns how many goods of the given type are on offer.
func (m *Market) Count(g GoodType) int {
	return m.goods[g]
}

// Camels returns the number of camels currently in the market.
func (m *Market) Camels() int {
	return m.goods[Camel]
}

// Size returns the total number of goods in the market.
func (m *Market) Size() int {
	return m.goods.Total()
}

// Capacity returns the size the market is refilled toward.
func (m *Market) Capacity() int {
	return m.capacity
}

// AtCapacity reports whether the market is full.
func (m *Market) AtCapacity() bool {
	return m.goods.Total() >= m.capacity
}

func (m *Market) add(g GoodType) {
	m.goods[g]++
}

func (m *Market) take(g GoodType) bool {
	if m.goods[g] == 0 {
		return false
	}
	m.goods[g]--
	return true
}

func (m *Market) addCounts(c GoodCounts) {
	for g, n := range c {
		m.goods[g] += n
	}
}

// removeCounts must only be called after the market is known to contain c.
func (m *Market) removeCounts(c GoodCounts) {
	for g, n := range c {
		m.goods[g] -= n
	}
}

// takeAllCamels removes every camel from the market and returns how many
// there were. A herd takes them all in one action.
func (m *Market) takeAllCamels() int {
	n := m.goods[Camel]
	m.goods[Camel] = 0
	return n
}

// refill draws from the deck until the market is back at capacity or the
// deck is empty.
func (m *Market) refill(d *Deck) {
	for m.goods.Total() < m.capacity {
		g, ok := d.Draw()
		if !ok {
			return
		}
		m.goods[g]++
	}
}
