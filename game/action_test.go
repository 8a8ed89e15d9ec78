package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionComparability(t *testing.T) {
	require.Equal(t, Take(Silk), Take(Silk), "Identical actions should compare equal")
	require.NotEqual(t, Take(Silk), Take(Spice))
	require.NotEqual(t, Sell(Silk, 2), Sell(Silk, 3))

	give := NewHand(Silk, Camel).Counts()
	get := NewHand(Diamond, Gold).Counts()
	require.Equal(t, Trade(give, get), Trade(give, get))
	require.NotEqual(t, Trade(give, get), Trade(get, give))

	// Membership by == is what the engine relies on to validate choices.
	legal := []Action{Take(Silk), Herd(), Sell(Silk, 2)}
	require.Contains(t, legal, Sell(Silk, 2))
	require.NotContains(t, legal, Sell(Silk, 1))
}

func TestActionString(t *testing.T) {
	require.Equal(t, "take[silk]", Take(Silk).String())
	require.Equal(t, "herd", Herd().String())
	require.Equal(t, "sell[3xspice]", Sell(Spice, 3).String())
	require.Equal(t, "pass", Pass().String())
	require.Equal(t, "trade[2xsilk for diamond+gold]",
		Trade(NewHand(Silk, Silk).Counts(), NewHand(Diamond, Gold).Counts()).String())
}
