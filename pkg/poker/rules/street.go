package rules

import "fmt"

// Street is a betting round
type Street int

// Street constants
const (
	Preflop Street = iota + 1
	Flop
	Turn
	River
)

// BoardCards returns how many board cards are visible on the street
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	}

	return 0
}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	}

	panic(fmt.Sprintf("unknown street: %d", int(s)))
}

// Position is where a player sits relative to the button
type Position int

// Position constants
const (
	SmallBlind Position = iota + 1
	BigBlind
	UnderTheGun
	Middle
	Cutoff
	Dealer
)

// preflop the blinds act last, postflop the button does
var (
	preflopPriority  = map[Position]int{UnderTheGun: 0, Middle: 1, Cutoff: 2, Dealer: 3, SmallBlind: 4, BigBlind: 5}
	postflopPriority = map[Position]int{SmallBlind: 0, BigBlind: 1, UnderTheGun: 2, Middle: 3, Cutoff: 4, Dealer: 5}
)

// Priority returns the acting priority of the position on the street. Lower acts first.
func (p Position) Priority(street Street) int {
	if street == Preflop {
		return preflopPriority[p]
	}

	return postflopPriority[p]
}

func (p Position) String() string {
	switch p {
	case SmallBlind:
		return "Small Blind"
	case BigBlind:
		return "Big Blind"
	case UnderTheGun:
		return "UTG"
	case Middle:
		return "Middle"
	case Cutoff:
		return "Cutoff"
	case Dealer:
		return "Dealer"
	}

	panic(fmt.Sprintf("unknown position: %d", int(p)))
}

// positionsForPlayers returns the position of every seat, in seat order
// Heads-up the dealer sits in seat 1 and posts the small blind.
func positionsForPlayers(n int) []Position {
	if n == 2 {
		return []Position{Dealer, BigBlind}
	}

	positions := []Position{SmallBlind, BigBlind}
	positions = append(positions, []Position{UnderTheGun, Middle, Cutoff}[:n-3]...)
	return append(positions, Dealer)
}
