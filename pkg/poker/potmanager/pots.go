package potmanager

import (
	"encoding/json"

	"pokerrl/pkg/poker/chips"
)

// Pot is a main or side pot and the seats contesting it
type Pot struct {
	Amount chips.Chips
	// Contestants are the seats that can win the pot
	Contestants []*Participant
}

type potJSON struct {
	Amount      float64 `json:"amount"`
	Contestants []int   `json:"contestants"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	seats := make([]int, len(p.Contestants))
	for i, c := range p.Contestants {
		seats[i] = c.Seat
	}

	return json.Marshal(potJSON{
		Amount:      p.Amount.Float64(),
		Contestants: seats,
	})
}

// Pots is a collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() chips.Chips {
	total := chips.Chips(0)
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
