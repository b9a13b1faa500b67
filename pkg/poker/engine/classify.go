package engine

import (
	"fmt"

	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// facing returns the betting situation of the seat
func facing(s *Snapshot, inv Investments, seat int) rules.Facing {
	return rules.Facing{
		Aggressor:       s.Aggressor.Category,
		AggressorAmount: s.Aggressor.Amount,
		Pot:             s.Pot,
		Committed:       inv.Street[seat],
		Stack:           s.Seats[seat].Stack,
	}
}

// classify resolves an action code into a category and an amount
// The amount of a bet or raise is the street total, the amount of a call is
// what the seat adds. Both are capped at the stack.
func (e *Engine) classify(code action.Code, f rules.Facing) (action.Action, chips.Chips, error) {
	if code < 0 || int(code) >= e.cfg.NumActions() {
		return action.None, 0, fmt.Errorf("code %d is outside of [0, %d): %w", code, e.cfg.NumActions(), ErrInvalidAction)
	}

	switch code {
	case action.CodeFold:
		return action.Fold, 0, nil
	case action.CodeCheck:
		return action.Check, 0, nil
	case action.CodeCall:
		toCall := chips.Max(0, f.Level()-f.Committed)
		return action.Call, chips.Min(toCall, f.Stack), nil
	}

	i, _ := code.LadderIndex()
	category, amount, err := e.sizer.Size(e.cfg.BetSizes[i], f)
	if err != nil {
		return action.None, 0, err
	}

	return category, amount, nil
}
