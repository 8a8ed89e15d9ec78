package agent

import "bazaar/game"

// Tunable weights of the rule agent. They are part of its character, not of
// the game rules.
const (
	// bonusIncentive is added to a sale's score once it is big enough to
	// draw a bonus coin.
	bonusIncentive = 3
	bonusSize      = 3
	// takeThreshold is the minimum top coin value worth taking a good for.
	takeThreshold = 4
)

// Rule is a deterministic agent playing fixed priorities: sell the most
// valuable lot first, otherwise take a good whose next payout is high while
// the hand has room, otherwise herd camels, otherwise trade, and move at all
// only when forced. Two runs against the same opponent and seed are
// identical.
type Rule struct{}

// NewRule returns the rule agent. It keeps no state between turns.
func NewRule() *Rule {
	return &Rule{}
}

func (r *Rule) SelectAction(actions []game.Action, obs game.Observation) game.Action {
	if len(actions) == 0 {
		return game.Pass()
	}
	if a, ok := bestSell(actions, obs); ok {
		return a
	}
	if a, ok := bestTake(actions, obs); ok {
		return a
	}
	for _, a := range actions {
		if a.Type == game.HerdAction {
			return a
		}
	}
	for _, a := range actions {
		if a.Type == game.TradeAction {
			return a
		}
	}
	return actions[0]
}

// bestSell scores each sale by its immediate payout estimate, top coin value
// times count, plus a flat incentive for sales big enough to draw a bonus
// coin. Ties keep the earliest enumerated sale.
func bestSell(actions []game.Action, obs game.Observation) (game.Action, bool) {
	var best game.Action
	bestScore, found := 0, false
	for _, a := range actions {
		if a.Type != game.SellAction {
			continue
		}
		score := obs.TopCoins[a.Good] * a.Count
		if a.Count >= bonusSize {
			score += bonusIncentive
		}
		if !found || score > bestScore {
			best, bestScore, found = a, score, true
		}
	}
	return best, found
}

// bestTake picks the take with the most valuable next payout, but only while
// the hand has room and the payout clears the threshold.
func bestTake(actions []game.Action, obs game.Observation) (game.Action, bool) {
	if obs.HandSize >= obs.HandLimit {
		return game.Action{}, false
	}
	var best game.Action
	bestValue, found := 0, false
	for _, a := range actions {
		if a.Type != game.TakeAction {
			continue
		}
		value := obs.TopCoins[a.Good]
		if value < takeThreshold {
			continue
		}
		if !found || value > bestValue {
			best, bestValue, found = a, value, true
		}
	}
	return best, found
}
