package engine

import (
	"fmt"
	"sort"

	"pokerrl/pkg/poker/rules"
)

// actingOrder returns the seats that hold cards and have chips, in acting order for the street
func actingOrder(s *Snapshot) []int {
	order := make([]int, 0, s.NumPlayers)
	for seat := 1; seat <= s.NumPlayers; seat++ {
		if s.Seats[seat].CanAct() {
			order = append(order, seat)
		}
	}

	sortByPriority(s, order, s.Street)
	return order
}

// payoutOrder returns every seat starting left of the button
func payoutOrder(s *Snapshot) []int {
	order := make([]int, s.NumPlayers)
	for i := range order {
		order[i] = i + 1
	}

	sortByPriority(s, order, rules.River)
	return order
}

func sortByPriority(s *Snapshot, seats []int, street rules.Street) {
	sort.SliceStable(seats, func(i, j int) bool {
		return s.Seats[seats[i]].Position.Priority(street) < s.Seats[seats[j]].Position.Priority(street)
	})
}

// advanceActor hands the clock to the next seat
// order is the acting order before actor acted. The seat after the new
// current one is two places after actor, since current was one place after.
func advanceActor(s *Snapshot, order []int, actor int) error {
	idx := -1
	for i, seat := range order {
		if seat == actor {
			idx = i
			break
		}
	}

	if idx < 0 {
		return fmt.Errorf("seat %d is not in the acting order %v: %w", actor, order, ErrInconsistentState)
	}

	s.Current = s.Next
	s.Next = order[(idx+2)%len(order)]
	return nil
}

// resetOrderForNewStreet puts the first two seats of the street order on the clock
func resetOrderForNewStreet(s *Snapshot) {
	order := actingOrder(s)
	s.Current, s.Next = 0, 0
	if len(order) > 0 {
		s.Current = order[0]
	}

	if len(order) > 1 {
		s.Next = order[1]
	}
}
