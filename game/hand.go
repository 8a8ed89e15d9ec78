package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Hand is the multiset of goods one trader holds. Camels live in the hand
// like any other good but are ignored by the hand limit. The representation
// is a per-type count vector, so composition alone decides equality and
// hashing: the order goods were acquired in never matters.
//
// Only the resolver mutates hands during play.
type Hand struct {
	goods GoodCounts
}

// NewHand builds a hand holding the given goods.
func NewHand(goods ...GoodType) Hand {
	var h Hand
	for _, g := range goods {
		h.goods[g]++
	}
	return h
}

// Add puts one good of the given type into the hand.
func (h *Hand) Add(g GoodType) {
	h.goods[g]++
}

// Remove takes one good of the given type out of the hand.
func (h *Hand) Remove(g GoodType) error {
	if h.goods[g] == 0 {
		return fmt.Errorf("remove %v: not in hand", g)
	}
	h.goods[g]--
	return nil
}

// Count returns how many goods of the given type the hand holds.
func (h Hand) Count(g GoodType) int {
	return h.goods[g]
}

// Size returns the number of goods held. With includeCamels false it is the
// capped count compared against the hand limit.
func (h Hand) Size(includeCamels bool) int {
	if includeCamels {
		return h.goods.Total()
	}
	return h.goods.Standard()
}

// Counts returns the hand's composition as a count vector.
func (h Hand) Counts() GoodCounts {
	return h.goods
}

// Contains reports whether the hand covers the given multiset.
func (h Hand) Contains(c GoodCounts) bool {
	return h.goods.Contains(c)
}

// addCounts and removeCounts move whole multisets, used by trade resolution.
// removeCounts must only be called after Contains has been checked.
func (h *Hand) addCounts(c GoodCounts) {
	for g, n := range c {
		h.goods[g] += n
	}
}

func (h *Hand) removeCounts(c GoodCounts) {
	for g, n := range c {
		h.goods[g] -= n
	}
}

// Goods returns the held goods expanded into a slice, ordered by type. This
// is the canonical enumeration used for display.
func (h Hand) Goods() []GoodType {
	goods := make([]GoodType, 0, h.goods.Total())
	for g, n := range h.goods {
		for i := 0; i < n; i++ {
			goods = append(goods, GoodType(g))
		}
	}
	return goods
}

// Equal reports whether both hands hold exactly the same goods.
func (h Hand) Equal(other Hand) bool {
	return h.goods == other.goods
}

// Hash returns a digest of the hand's composition. Equal hands always hash
// the same, whatever order their goods arrived in.
func (h Hand) Hash() uint64 {
	hasher := fnv.New64a()
	for _, n := range h.goods {
		binary.Write(hasher, binary.LittleEndian, int64(n))
	}
	return hasher.Sum64()
}

func (h Hand) String() string {
	return h.goods.String()
}
