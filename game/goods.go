package game

import (
	"fmt"
	"strings"
)

// GoodType identifies one kind of tradable good. Camel is special: it is the
// only good exempt from the hand limit, it enters a hand only through a Herd
// action, and it has no coin stack of its own.
type GoodType int

const (
	Diamond GoodType = iota
	Gold
	Silver
	Silk
	Spice
	Leather
	Camel
)

// NumGoods is the number of good types, camels included.
const NumGoods = int(Camel) + 1

var goodNames = [NumGoods]string{"diamond", "gold", "silver", "silk", "spice", "leather", "camel"}

func (g GoodType) String() string {
	if g < 0 || int(g) >= NumGoods {
		return fmt.Sprintf("good(%d)", int(g))
	}
	return goodNames[g]
}

// IsStandard reports whether the good participates in coin payouts and the
// hand limit. Everything but the camel does.
func (g GoodType) IsStandard() bool {
	return g >= 0 && int(g) < NumGoods && g != Camel
}

// AllGoods returns every good type in catalog order.
func AllGoods() []GoodType {
	goods := make([]GoodType, 0, NumGoods)
	for g := GoodType(0); int(g) < NumGoods; g++ {
		goods = append(goods, g)
	}
	return goods
}

// StandardGoods returns every non-camel good type in catalog order.
func StandardGoods() []GoodType {
	goods := make([]GoodType, 0, NumGoods-1)
	for g := GoodType(0); int(g) < NumGoods; g++ {
		if g.IsStandard() {
			goods = append(goods, g)
		}
	}
	return goods
}

// GoodCounts is a per-type multiset of goods. Being a fixed-size array it is
// comparable with ==, copies by value, and is canonical by construction: two
// multisets with the same composition are always equal regardless of the
// order goods were added in.
type GoodCounts [NumGoods]int

// Total returns the number of goods counted, camels included.
func (c GoodCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Standard returns the number of non-camel goods counted.
func (c GoodCounts) Standard() int {
	return c.Total() - c[Camel]
}

// Empty reports whether no goods are counted.
func (c GoodCounts) Empty() bool {
	return c.Total() == 0
}

// Negative reports whether any count is below zero. Multisets built by the
// game are never negative; ones handed in from outside may be.
func (c GoodCounts) Negative() bool {
	for _, n := range c {
		if n < 0 {
			return true
		}
	}
	return false
}

// Contains reports whether other is a sub-multiset of c.
func (c GoodCounts) Contains(other GoodCounts) bool {
	for g, n := range other {
		if n > c[g] {
			return false
		}
	}
	return true
}

// Overlaps reports whether c and other share any good type.
func (c GoodCounts) Overlaps(other GoodCounts) bool {
	for g, n := range other {
		if n > 0 && c[g] > 0 {
			return true
		}
	}
	return false
}

func (c GoodCounts) String() string {
	if c.Empty() {
		return "none"
	}
	parts := []string{}
	for g, n := range c {
		if n == 1 {
			parts = append(parts, GoodType(g).String())
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%dx%s", n, GoodType(g)))
		}
	}
	return strings.Join(parts, "+")
}
