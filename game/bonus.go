package game

import "fmt"

// BonusTier identifies one of the bonus coin stacks awarded for large sales.
// The enumeration is closed: bonus logic switches over it exhaustively, and
// the qualifying thresholds come from the Rules rather than the tier names.
type BonusTier int

const (
	BonusThree BonusTier = iota
	BonusFour
	BonusFive
)

// NumBonusTiers is the number of bonus tiers.
const NumBonusTiers = int(BonusFive) + 1

var bonusNames = [NumBonusTiers]string{"three", "four", "five"}

func (t BonusTier) String() string {
	if t < 0 || int(t) >= NumBonusTiers {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return bonusNames[t]
}

// AllBonusTiers returns the tiers ordered by ascending threshold.
func AllBonusTiers() []BonusTier {
	return []BonusTier{BonusThree, BonusFour, BonusFive}
}

// tiersDescending is the award lookup order: a sale draws from the highest
// qualifying tier that still has coins.
var tiersDescending = [NumBonusTiers]BonusTier{BonusFive, BonusFour, BonusThree}
