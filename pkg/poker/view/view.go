// Package view projects a hand history onto what a single seat can see
package view

import (
	"errors"
	"fmt"

	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/engine"
	"pokerrl/pkg/poker/rules"
)

// ErrUnknownSeat is returned when the seat is not at the table
var ErrUnknownSeat = errors.New("seat is not at the table")

// SeatView is what anybody at the table can see of a seat
type SeatView struct {
	Seat     int            `json:"seat"`
	Position rules.Position `json:"position"`
	Stack    chips.Chips    `json:"stack"`
	Active   bool           `json:"active"`
	AllIn    bool           `json:"allIn"`
}

// View is one snapshot as seen by the hero
type View struct {
	Hero int `json:"hero"`
	// Hole is only the hero's hole cards
	Hole       []deck.Code         `json:"hole"`
	Seats      []SeatView          `json:"seats"`
	Board      []deck.Code         `json:"board"`
	Pot        chips.Chips         `json:"pot"`
	Street     rules.Street        `json:"street"`
	NumPlayers int                 `json:"numPlayers"`
	Current    int                 `json:"current"`
	Next       int                 `json:"next"`
	Previous   engine.ActionRecord `json:"previous"`
	Aggressor  engine.ActionRecord `json:"aggressor"`
	// ToCall is what the hero must add to stay in the hand
	ToCall  chips.Chips `json:"toCall"`
	PotOdds float64     `json:"potOdds"`
	Settled bool        `json:"settled"`
}

// HeroSeat returns the hero's own seat
func (v View) HeroSeat() SeatView {
	return v.Seats[v.Hero-1]
}

// Project returns the view of the seat for every snapshot of the history
func Project(h *engine.History, seat int) ([]View, error) {
	if h == nil || h.Len() == 0 {
		return nil, fmt.Errorf("empty history: %w", engine.ErrInconsistentState)
	}

	if n := h.At(0).NumPlayers; seat < 1 || seat > n {
		return nil, fmt.Errorf("seat %d of %d: %w", seat, n, ErrUnknownSeat)
	}

	views := make([]View, h.Len())
	for i := range views {
		views[i] = project(h.At(i), h.InvestmentsAt(i), seat)
	}

	return views, nil
}

// Latest returns the view of the seat for the latest snapshot only
func Latest(h *engine.History, seat int) (View, error) {
	if h == nil || h.Len() == 0 {
		return View{}, fmt.Errorf("empty history: %w", engine.ErrInconsistentState)
	}

	s := h.Latest()
	if seat < 1 || seat > s.NumPlayers {
		return View{}, fmt.Errorf("seat %d of %d: %w", seat, s.NumPlayers, ErrUnknownSeat)
	}

	return project(s, h.Investments(), seat), nil
}

func project(s engine.Snapshot, inv engine.Investments, hero int) View {
	v := View{
		Hero:       hero,
		Hole:       s.HoleCards(hero),
		Seats:      make([]SeatView, s.NumPlayers),
		Board:      s.VisibleBoard(),
		Pot:        s.Pot,
		Street:     s.Street,
		NumPlayers: s.NumPlayers,
		Current:    s.Current,
		Next:       s.Next,
		Previous:   s.Previous,
		Aggressor:  s.Aggressor,
		Settled:    s.Settled,
	}

	for seat := 1; seat <= s.NumPlayers; seat++ {
		v.Seats[seat-1] = SeatView{
			Seat:     seat,
			Position: s.Seats[seat].Position,
			Stack:    s.Seats[seat].Stack,
			Active:   s.Seats[seat].Active,
			AllIn:    s.Seats[seat].AllIn(),
		}
	}

	if !s.Settled && s.Seats[hero].Active {
		toCall := chips.Max(0, s.Level()-inv.Street[hero])
		v.ToCall = chips.Min(toCall, s.Seats[hero].Stack)
	}

	if v.ToCall > 0 {
		v.PotOdds = v.ToCall.Float64() / (s.Pot + v.ToCall).Float64()
	}

	return v
}
