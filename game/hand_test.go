package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandAddRemove(t *testing.T) {
	h := NewHand(Silk, Silk, Camel)

	require.Equal(t, 2, h.Count(Silk), "Hand should hold both silk")
	require.Equal(t, 3, h.Size(true), "Full size should include camels")
	require.Equal(t, 2, h.Size(false), "Capped size should exclude camels")

	h.Add(Diamond)
	require.Equal(t, 1, h.Count(Diamond), "Added good should be counted")

	require.NoError(t, h.Remove(Silk), "Removing a held good should succeed")
	require.Equal(t, 1, h.Count(Silk), "Removed good should be gone")

	require.Error(t, h.Remove(Gold), "Removing an absent good should fail")
	require.Equal(t, 0, h.Count(Gold), "Failed remove should not change the hand")
}

func TestHandAddThenRemoveRoundTrips(t *testing.T) {
	h := NewHand(Silk, Gold, Camel)
	want := h.Counts()

	h.Add(Spice)
	require.NoError(t, h.Remove(Spice))

	require.Equal(t, want, h.Counts(), "Adding and removing a good should restore the hand")
	require.True(t, h.Equal(NewHand(Silk, Gold, Camel)), "The round-tripped hand should equal the original")
}

func TestHandEqualityIgnoresAcquisitionOrder(t *testing.T) {
	a := NewHand(Silk, Gold, Camel, Silk)
	b := NewHand(Camel, Silk, Silk, Gold)

	require.True(t, a.Equal(b), "Hands with the same composition should be equal")
	require.Equal(t, a.Hash(), b.Hash(), "Equal hands should hash the same")

	b.Add(Leather)

	require.False(t, a.Equal(b), "Hands with different compositions should differ")
	require.NotEqual(t, a.Hash(), b.Hash(), "Different hands should hash differently")
}

func TestHandGoodsExpandsInCatalogOrder(t *testing.T) {
	h := NewHand(Camel, Silk, Diamond, Silk)

	require.Equal(t, []GoodType{Diamond, Silk, Silk, Camel}, h.Goods(),
		"Goods should list the hand in catalog order regardless of insertion order")
}

func TestHandContains(t *testing.T) {
	h := NewHand(Silk, Silk, Spice, Camel)

	var want GoodCounts
	want[Silk] = 2
	want[Camel] = 1
	require.True(t, h.Contains(want), "Hand should cover a sub-multiset of itself")

	want[Spice] = 2
	require.False(t, h.Contains(want), "Hand should not cover more spice than it holds")
}

func TestGoodCountsString(t *testing.T) {
	require.Equal(t, "none", GoodCounts{}.String())

	h := NewHand(Silk, Silk, Camel)
	require.Equal(t, "2xsilk+camel", h.String())
}
