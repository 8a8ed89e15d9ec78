package game

import "fmt"

// ActionType identifies what kind of move an action is.
type ActionType int

const (
	TakeAction ActionType = iota
	HerdAction
	TradeAction
	SellAction
	PassAction
)

func (t ActionType) String() string {
	switch t {
	case TakeAction:
		return "take"
	case HerdAction:
		return "herd"
	case TradeAction:
		return "trade"
	case SellAction:
		return "sell"
	case PassAction:
		return "pass"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// Action is one move a trader can make. Which fields matter depends on Type:
// Take uses Good, Sell uses Good and Count, Trade uses Give and Get, and
// Herd and Pass stand alone. Every field is a value, so actions compare with
// == and legality checks are plain membership tests.
type Action struct {
	Type  ActionType
	Good  GoodType
	Count int
	// Give is the multiset handed from the acting hand to the market,
	// Get the multiset taken from the market in exchange. Camels may be
	// given away but never gotten: a herd is the only way to acquire them.
	Give GoodCounts
	Get  GoodCounts
}

// Take builds the action taking one good of the given type from the market.
func Take(g GoodType) Action {
	return Action{Type: TakeAction, Good: g}
}

// Herd builds the action taking every camel from the market.
func Herd() Action {
	return Action{Type: HerdAction}
}

// Trade builds the action swapping the give multiset for the get multiset.
func Trade(give, get GoodCounts) Action {
	return Action{Type: TradeAction, Give: give, Get: get}
}

// Sell builds the action selling count goods of the given type.
func Sell(g GoodType, count int) Action {
	return Action{Type: SellAction, Good: g, Count: count}
}

// Pass builds the do-nothing action. The generator never offers it; the
// engine falls back to it when a trader has no legal action at all.
func Pass() Action {
	return Action{Type: PassAction}
}

func (a Action) String() string {
	switch a.Type {
	case TakeAction:
		return fmt.Sprintf("take[%v]", a.Good)
	case HerdAction:
		return "herd"
	case TradeAction:
		return fmt.Sprintf("trade[%v for %v]", a.Give, a.Get)
	case SellAction:
		return fmt.Sprintf("sell[%dx%v]", a.Count, a.Good)
	case PassAction:
		return "pass"
	default:
		return a.Type.String()
	}
}
