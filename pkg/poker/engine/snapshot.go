package engine

import (
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// BoardSize is the number of board cards at showdown
const BoardSize = 5

// Seat is the state of one seat at the table
type Seat struct {
	Position rules.Position
	Stack    chips.Chips
	// Active is false once the seat folds
	Active bool
	Hole   [rules.MaxHoleCards]deck.Code
}

// AllIn returns true if the seat is still in the hand with nothing behind
func (s Seat) AllIn() bool {
	return s.Active && s.Stack == 0
}

// CanAct returns true if the seat is in the hand and has chips
func (s Seat) CanAct() bool {
	return s.Active && s.Stack > 0
}

// ActionRecord describes an action taken at the table
// For a bet or raise, Amount is the street total the seat reached. For a call
// it is the amount added.
type ActionRecord struct {
	Seat     int           `json:"seat"`
	Category action.Action `json:"category"`
	Amount   chips.Chips   `json:"amount"`
	IsBlind  bool          `json:"isBlind"`
}

// Snapshot is the table at one instant
// Seats are numbered from 1. Index 0 of Seats is unused.
type Snapshot struct {
	NumPlayers int
	Seats      [rules.MaxSeats + 1]Seat
	// Board holds the cards revealed so far, zero-filled
	Board  [BoardSize]deck.Code
	Pot    chips.Chips
	Street rules.Street
	// Current is the seat on the clock, Next the seat expected after it. 0 means none.
	Current   int
	Next      int
	Previous  ActionRecord
	Aggressor ActionRecord
	Settled   bool
}

// ActiveCount returns the number of seats still holding cards
func (s Snapshot) ActiveCount() int {
	n := 0
	for seat := 1; seat <= s.NumPlayers; seat++ {
		if s.Seats[seat].Active {
			n++
		}
	}

	return n
}

// CanActCount returns the number of seats holding cards with chips behind
func (s Snapshot) CanActCount() int {
	n := 0
	for seat := 1; seat <= s.NumPlayers; seat++ {
		if s.Seats[seat].CanAct() {
			n++
		}
	}

	return n
}

// TotalStacks returns the sum of every stack
func (s Snapshot) TotalStacks() chips.Chips {
	total := chips.Chips(0)
	for seat := 1; seat <= s.NumPlayers; seat++ {
		total += s.Seats[seat].Stack
	}

	return total
}

// VisibleBoard returns the revealed board cards
func (s Snapshot) VisibleBoard() []deck.Code {
	board := make([]deck.Code, 0, BoardSize)
	for _, code := range s.Board {
		if code != deck.Empty {
			board = append(board, code)
		}
	}

	return board
}

// Level returns the street total needed to stay in the hand
func (s Snapshot) Level() chips.Chips {
	if !s.Aggressor.Category.IsAggressive() {
		return 0
	}

	return s.Aggressor.Amount
}

// HoleCards returns the non-empty hole cards of the seat
func (s Snapshot) HoleCards(seat int) []deck.Code {
	hole := make([]deck.Code, 0, rules.MaxHoleCards)
	for _, code := range s.Seats[seat].Hole {
		if code != deck.Empty {
			hole = append(hole, code)
		}
	}

	return hole
}

// reveal copies the runout cards visible on the street into the board
func (s *Snapshot) reveal(runout [BoardSize]deck.Code) {
	s.Board = [BoardSize]deck.Code{}
	copy(s.Board[:], runout[:s.Street.BoardCards()])
}
