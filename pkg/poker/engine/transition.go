package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/rules"
)

// Step applies the action of the seat on the clock and returns the new history
// The history passed in is never modified.
func (e *Engine) Step(h *History, code action.Code) (*Result, error) {
	if h == nil || h.Len() == 0 {
		return nil, fmt.Errorf("empty history: %w", ErrInconsistentState)
	}

	prev := h.Latest()
	if prev.Settled {
		return nil, ErrHandComplete
	}

	cur := prev.Current
	if cur < 1 || cur > prev.NumPlayers || !prev.Seats[cur].CanAct() {
		return nil, fmt.Errorf("seat %d cannot be on the clock: %w", cur, ErrInconsistentState)
	}

	inv := h.Investments()
	f := facing(&prev, inv, cur)
	category, amount, err := e.classify(code, f)
	if err != nil {
		return nil, err
	}

	if !e.LegalActionMask(prev, inv.Street).IsLegal(code) {
		return nil, fmt.Errorf("seat %d cannot %s (code %s): %w", cur, category, code, ErrInvalidAction)
	}

	delta := amount
	if category.IsAggressive() {
		delta = amount - f.Committed
	}

	if delta < 0 || delta > f.Stack {
		return nil, fmt.Errorf("seat %d cannot put in %s with %s behind: %w", cur, delta, f.Stack, ErrInconsistentState)
	}

	e.logger.WithFields(logrus.Fields{
		"hand":   h.ID,
		"seat":   cur,
		"action": category,
		"amount": amount,
		"street": prev.Street,
	}).Debug(category.LogMessage(amount))

	next := prev
	next.Seats[cur].Stack -= delta
	next.Pot += delta
	next.Previous = ActionRecord{Seat: cur, Category: category, Amount: amount}
	inv.Street[cur] += delta
	inv.Hand[cur] += delta

	order := actingOrder(&prev)
	closed := false
	switch category {
	case action.Bet, action.Raise:
		next.Aggressor = next.Previous
	case action.Check:
		closed = order[len(order)-1] == cur
	case action.Call:
		closed = e.roundClosed(&prev, &next, inv.Street)
	case action.Fold:
		next.Seats[cur].Active = false
		closed = next.ActiveCount() == 1 || e.roundClosed(&prev, &next, inv.Street)
	}

	if !closed {
		err = advanceActor(&next, order, cur)
	} else {
		err = e.closeRound(h, &next)
	}

	if err != nil {
		return nil, err
	}

	var winnings Winnings
	if next.Settled {
		if winnings, err = e.settle(h, &next, inv.Hand); err != nil {
			return nil, err
		}
	}

	if total := next.TotalStacks() + next.Pot; total != e.cfg.TotalChips() {
		return nil, fmt.Errorf("stacks and pot hold %s, expected %s: %w", total, e.cfg.TotalChips(), ErrInconsistentState)
	}

	nh := h.append(next)
	res := &Result{
		History:  nh,
		Done:     next.Settled,
		Winnings: winnings,
	}

	if next.Settled {
		res.Mask = make(Mask, e.cfg.NumActions())
	} else {
		res.Mask = e.LegalActionMask(next, nh.Investments().Street)
	}

	return res, nil
}

// roundClosed returns true if the call or fold ended the betting round
// prev is the snapshot before the action, next after it.
func (e *Engine) roundClosed(prev, next *Snapshot, street PerSeat) bool {
	// the big blind still has its option
	if prev.Street == rules.Preflop && prev.Aggressor.IsBlind &&
		prev.Aggressor.Seat == e.cfg.BigBlindSeat() && prev.Next == e.cfg.BigBlindSeat() {
		return false
	}

	// the action has gone around to the aggressor
	if prev.Next != 0 && prev.Next == next.Aggressor.Seat {
		return true
	}

	level := next.Level()
	canAct := 0
	for seat := 1; seat <= next.NumPlayers; seat++ {
		if !next.Seats[seat].CanAct() {
			continue
		}

		canAct++
		if street[seat] < level {
			return false
		}
	}

	aggressor := next.Aggressor.Seat
	return canAct <= 1 || (aggressor != 0 && next.Seats[aggressor].Stack == 0)
}

// closeRound moves to the next street, or marks the hand settled when no more betting can happen
func (e *Engine) closeRound(h *History, s *Snapshot) error {
	if s.Street == rules.River || s.ActiveCount() < 2 || s.CanActCount() < 2 {
		s.Settled = true
		s.Current, s.Next = 0, 0
		return nil
	}

	s.Street++
	s.Aggressor = ActionRecord{}
	s.reveal(h.runout)
	resetOrderForNewStreet(s)

	if s.Current == 0 {
		return fmt.Errorf("no seat can act on the %s: %w", s.Street, ErrInconsistentState)
	}

	return nil
}
