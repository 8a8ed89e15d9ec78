package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Satchel collects the coins a trader has earned. Payout coins always count
// toward the score; bonus coins only count in the final tally. Both
// collections are append-only and the satchel is never mutated once the game
// has ended.
type Satchel struct {
	coins []Coin
	bonus [NumBonusTiers][]BonusCoin
}

// AddCoin deposits a payout coin.
func (s *Satchel) AddCoin(c Coin) {
	s.coins = append(s.coins, c)
}

// AddBonusCoin deposits a bonus coin into its tier's collection.
func (s *Satchel) AddBonusCoin(c BonusCoin) {
	s.bonus[c.Tier] = append(s.bonus[c.Tier], c)
}

// Points returns the satchel's score. With includeBonus false it is the
// interim score visible during play; with true it is the value used for the
// final tally. The former never exceeds the latter.
func (s *Satchel) Points(includeBonus bool) int {
	points := 0
	for _, c := range s.coins {
		points += c.Value
	}
	if includeBonus {
		for _, tier := range s.bonus {
			for _, c := range tier {
				points += c.Value
			}
		}
	}
	return points
}

// CoinCount returns how many payout coins the satchel holds.
func (s *Satchel) CoinCount() int {
	return len(s.coins)
}

// Coins returns a copy of the payout coins in the order they were earned.
func (s *Satchel) Coins() []Coin {
	return append([]Coin(nil), s.coins...)
}

// BonusCount returns how many bonus coins of the given tier the satchel holds.
func (s *Satchel) BonusCount(t BonusTier) int {
	return len(s.bonus[t])
}

// Equal reports whether two satchels look the same: identical point totals
// and identical bonus coin counts per tier.
func (s *Satchel) Equal(other *Satchel) bool {
	if s.Points(false) != other.Points(false) || s.Points(true) != other.Points(true) {
		return false
	}
	for _, t := range AllBonusTiers() {
		if s.BonusCount(t) != other.BonusCount(t) {
			return false
		}
	}
	return true
}

// Hash returns a digest of the satchel's canonical content: point totals and
// per-tier bonus counts.
func (s *Satchel) Hash() uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Points(false)))
	binary.Write(hasher, binary.LittleEndian, int64(s.Points(true)))
	for _, tier := range s.bonus {
		binary.Write(hasher, binary.LittleEndian, int64(len(tier)))
	}
	return hasher.Sum64()
}

// SatchelSummary is the structured display form of a satchel. Rendering it is
// the caller's business; the game core produces data only.
type SatchelSummary struct {
	Points      int
	FinalPoints int
	BonusCounts [NumBonusTiers]int
}

// Summary returns the satchel's display form.
func (s *Satchel) Summary() SatchelSummary {
	var sum SatchelSummary
	sum.Points = s.Points(false)
	sum.FinalPoints = s.Points(true)
	for t, tier := range s.bonus {
		sum.BonusCounts[t] = len(tier)
	}
	return sum
}

func (s *Satchel) clone() Satchel {
	var c Satchel
	if s.coins != nil {
		c.coins = append([]Coin(nil), s.coins...)
	}
	for t, tier := range s.bonus {
		if tier != nil {
			c.bonus[t] = append([]BonusCoin(nil), tier...)
		}
	}
	return c
}
