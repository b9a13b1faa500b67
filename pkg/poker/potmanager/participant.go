package potmanager

import (
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/handrank"
)

// Participant is a seat that put chips into the hand
type Participant struct {
	Seat int
	// Invested is everything the seat put in this hand
	Invested chips.Chips
	// Folded participants pay into pots but cannot win them
	Folded bool
	// Value is the hand value of the seat, lower is stronger
	Value handrank.Value
}

// canWin returns true if the participant contests pots
func (p *Participant) canWin() bool {
	return !p.Folded
}
