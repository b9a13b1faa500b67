package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerrl/internal/golden"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/engine"
	"pokerrl/pkg/poker/rules"
)

type stackedDealer []*deck.Card

func (s *stackedDealer) Draw() (*deck.Card, error) {
	if len(*s) == 0 {
		return nil, deck.ErrEndOfDeck
	}

	card := (*s)[0]
	*s = (*s)[1:]
	return card, nil
}

func newHand(t *testing.T, stack float64, codes ...action.Code) *engine.History {
	t.Helper()

	e, err := engine.New(rules.New(2, chips.FromFloat(stack)), nil, nil)
	require.NoError(t, err)

	dealer := stackedDealer(deck.CardsFromString("14c,14d,3h,4s,7c,8d,2h,2s,14h,9c,5d,11s,12c"))
	res, err := e.Init(&dealer)
	require.NoError(t, err)

	for _, code := range codes {
		res, err = e.Step(res.History, code)
		require.NoError(t, err)
	}

	return res.History
}

func TestProject(t *testing.T) {
	a := assert.New(t)

	h := newHand(t, 1000, action.CodeForRatio(0))
	views, err := Project(h, 2)
	a.NoError(err)
	a.Len(views, 3)

	// only the hero's cards are visible
	for _, v := range views {
		a.Equal(2, v.Hero)
		a.Equal(deck.CodesFromString("7c,8d,2h,2s"), v.Hole)
		a.Empty(v.Board)
		a.Equal(rules.Preflop, v.Street)
		a.Equal(2, v.NumPlayers)
		a.Len(v.Seats, 2)
	}

	a.Equal(chips.FromFloat(0.5), views[0].Pot)
	a.Equal(chips.FromFloat(0.5), views[0].ToCall)
	a.InDelta(0.5, views[0].PotOdds, 0.0001)

	a.Equal(chips.Chips(0), views[1].ToCall)
	a.Equal(0.0, views[1].PotOdds)

	v := views[2]
	a.Equal(chips.FromFloat(4), v.Pot)
	a.Equal(chips.FromFloat(2), v.ToCall)
	a.InDelta(1.0/3.0, v.PotOdds, 0.0001)
	a.Equal(2, v.Current)
	a.Equal(1, v.Next)
	a.Equal(engine.ActionRecord{Seat: 1, Category: action.Raise, Amount: chips.FromFloat(3)}, v.Previous)
	a.Equal(v.Previous, v.Aggressor)
	a.Equal(SeatView{Seat: 1, Position: rules.Dealer, Stack: chips.FromFloat(997), Active: true}, v.Seats[0])
	a.Equal(SeatView{Seat: 2, Position: rules.BigBlind, Stack: chips.FromFloat(999), Active: true}, v.HeroSeat())

	views, err = Project(h, 1)
	a.NoError(err)
	a.Equal(deck.CodesFromString("14c,14d,3h,4s"), views[2].Hole)
	a.Equal(chips.Chips(0), views[2].ToCall)

	latest, err := Latest(h, 1)
	a.NoError(err)
	a.Equal(views[2], latest)
}

func TestProject_allIn(t *testing.T) {
	a := assert.New(t)

	h := newHand(t, 9, action.CodeForRatio(0), action.CodeForRatio(0))
	v, err := Latest(h, 1)
	a.NoError(err)
	a.Equal(chips.FromFloat(6), v.ToCall)
	a.InDelta(1.0/3.0, v.PotOdds, 0.0001)
	a.True(v.Seats[1].AllIn)
	a.False(v.HeroSeat().AllIn)

	h = newHand(t, 9, action.CodeForRatio(0), action.CodeForRatio(0), action.CodeCall)
	v, err = Latest(h, 1)
	a.NoError(err)
	a.True(v.Settled)
	a.Equal(chips.Chips(0), v.ToCall)
	a.Equal(rules.River, v.Street)
	a.Len(v.Board, 5)

	golden.Validate(t, v)
}

func TestProject_errors(t *testing.T) {
	a := assert.New(t)

	h := newHand(t, 1000)
	_, err := Project(h, 3)
	a.ErrorIs(err, ErrUnknownSeat)

	_, err = Latest(h, 0)
	a.ErrorIs(err, ErrUnknownSeat)

	_, err = Project(nil, 1)
	a.ErrorIs(err, engine.ErrInconsistentState)
}
