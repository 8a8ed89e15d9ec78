package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRulesValidate(t *testing.T) {
	require.NoError(t, StandardRules().Validate(), "The standard rules should be valid")
}

func TestValidateRejectsBrokenRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero hand limit", func(r *Rules) { r.HandLimit = 0 }},
		{"zero market capacity", func(r *Rules) { r.MarketCapacity = 0 }},
		{"more market camels than the deck holds", func(r *Rules) { r.MarketCamels = r.DeckComposition[Camel] + 1 }},
		{"market camels beyond capacity", func(r *Rules) { r.MarketCamels = r.MarketCapacity + 1 }},
		{"negative deal size", func(r *Rules) { r.DealSize = -1 }},
		{"negative herd bonus", func(r *Rules) { r.HerdBonus = -1 }},
		{"negative deck count", func(r *Rules) { r.DeckComposition[Silk] = -1 }},
		{"deck too small for setup", func(r *Rules) { r.DealSize = 30 }},
		{"camel coin stack", func(r *Rules) { r.CoinValues[Camel] = []int{1} }},
		{"camel sale minimum", func(r *Rules) { r.MinSale[Camel] = 2 }},
		{"empty coin stack", func(r *Rules) { r.CoinValues[Gold] = nil }},
		{"increasing coin stack", func(r *Rules) { r.CoinValues[Leather] = []int{1, 2} }},
		{"negative sale minimum", func(r *Rules) { r.MinSale[Silver] = -2 }},
		{"non-increasing bonus thresholds", func(r *Rules) { r.BonusThresholds = [NumBonusTiers]int{3, 3, 5} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := StandardRules()
			tc.mutate(r)

			err := r.Validate()

			require.ErrorIs(t, err, ErrInvalidRules, "Broken rules should fail validation")
		})
	}
}

func TestMinSaleDefaultsToOne(t *testing.T) {
	r := StandardRules()

	require.Equal(t, 2, r.minSale(Diamond), "High value goods should keep their configured minimum")
	require.Equal(t, 1, r.minSale(Leather), "Unconfigured goods should default to one")
}

func TestQualifies(t *testing.T) {
	r := StandardRules()

	require.False(t, r.qualifies(BonusThree, 2), "Two cards should not reach the three tier")
	require.True(t, r.qualifies(BonusThree, 3), "Three cards should reach the three tier")
	require.True(t, r.qualifies(BonusFive, 7), "Large sales should reach the five tier")
	require.False(t, r.qualifies(BonusFive, 4), "Four cards should not reach the five tier")
}
