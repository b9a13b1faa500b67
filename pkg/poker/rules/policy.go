package rules

import (
	"errors"
	"fmt"

	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
)

// ErrUnimplementedPolicy is returned by a betting policy that cannot size bets
var ErrUnimplementedPolicy = errors.New("betting policy is not implemented")

// Limit is a betting-structure policy
type Limit string

// Limit constants
const (
	PotLimit   Limit = "pot-limit"
	NoLimit    Limit = "no-limit"
	FixedLimit Limit = "fixed-limit"
)

var validLimits = map[Limit]bool{
	PotLimit:   true,
	NoLimit:    true,
	FixedLimit: true,
}

// LimitFromString returns the limit from a string
func LimitFromString(s string) (Limit, error) {
	l := Limit(s)
	if _, ok := validLimits[l]; ok {
		return l, nil
	}

	return "", fmt.Errorf("invalid bet limit: %s", s)
}

// Facing describes the betting situation of the seat on the clock
type Facing struct {
	// Aggressor is the category of the last bet or raise this street, action.None if unopened
	Aggressor action.Action
	// AggressorAmount is the street total the aggressor reached
	AggressorAmount chips.Chips
	// Pot is every chip put in this hand
	Pot chips.Chips
	// Committed is what the seat already put in this street
	Committed chips.Chips
	// Stack is what the seat has behind
	Stack chips.Chips
}

// Opened returns true if there is a bet or raise to respond to
func (f Facing) Opened() bool {
	return f.Aggressor.IsAggressive()
}

// AllIn returns the street total the seat reaches by putting in every chip
func (f Facing) AllIn() chips.Chips {
	return f.Committed + f.Stack
}

// Level returns the street total required to stay in the hand
func (f Facing) Level() chips.Chips {
	if !f.Opened() {
		return 0
	}

	return f.AggressorAmount
}

// BetSizer maps a ladder ratio to a concrete bet or raise
// The amount returned is the street total the seat reaches, capped at all-in
type BetSizer interface {
	Size(ratio float64, f Facing) (action.Action, chips.Chips, error)
}

// LadderMasker determines which ladder ratios are available
type LadderMasker interface {
	Ladder(ratios []float64, f Facing) []bool
}

// Policy is both a BetSizer and a LadderMasker
type Policy interface {
	BetSizer
	LadderMasker
}

func policyForLimit(l Limit) Policy {
	switch l {
	case PotLimit:
		return potLimit{}
	case NoLimit:
		return noLimit{}
	case FixedLimit:
		return fixedLimit{}
	}

	panic(fmt.Sprintf("unknown limit: %s", string(l)))
}

type potLimit struct{}

// Size interpolates between the minimum raise (call plus the pot) and the pot-sized raise
func (potLimit) Size(ratio float64, f Facing) (action.Action, chips.Chips, error) {
	if f.Opened() {
		minRaise := f.AggressorAmount + (f.Pot - f.Committed)
		maxRaise := 2*f.AggressorAmount + (f.Pot - f.Committed)
		amount := minRaise + (maxRaise - minRaise).Scale(ratio)
		return action.Raise, chips.Min(amount, f.AllIn()), nil
	}

	return action.Bet, chips.Min(f.Pot.Scale(ratio), f.AllIn()), nil
}

func (p potLimit) Ladder(ratios []float64, f Facing) []bool {
	return ladderMask(p, ratios, f)
}

type noLimit struct{}

// Size scales between the minimum raise and all-in, or between nothing and all-in when unopened
func (noLimit) Size(ratio float64, f Facing) (action.Action, chips.Chips, error) {
	allIn := f.AllIn()
	if f.Opened() {
		minRaise := f.AggressorAmount + (f.Pot - f.Committed)
		if minRaise >= allIn {
			return action.Raise, allIn, nil
		}

		return action.Raise, minRaise + (allIn - minRaise).Scale(ratio), nil
	}

	return action.Bet, allIn.Scale(ratio), nil
}

func (p noLimit) Ladder(ratios []float64, f Facing) []bool {
	return ladderMask(p, ratios, f)
}

// fixedLimit has no agreed raise schedule yet; it refuses to size rather than guess
type fixedLimit struct{}

func (fixedLimit) Size(_ float64, _ Facing) (action.Action, chips.Chips, error) {
	return action.None, 0, fmt.Errorf("%s: %w", FixedLimit, ErrUnimplementedPolicy)
}

func (fixedLimit) Ladder(ratios []float64, _ Facing) []bool {
	return make([]bool, len(ratios))
}

// ladderMask enables every ratio whose amount is a real bet or raise below all-in,
// plus the smallest ratio that reaches all-in
func ladderMask(sizer BetSizer, ratios []float64, f Facing) []bool {
	mask := make([]bool, len(ratios))
	if f.Stack <= 0 || f.AllIn() <= f.Level() {
		return mask
	}

	allIn := f.AllIn()
	allInIndex := -1
	for i, ratio := range ratios {
		_, amount, err := sizer.Size(ratio, f)
		if err != nil || amount <= f.Level() {
			continue
		}

		if amount < allIn {
			mask[i] = true
			continue
		}

		if allInIndex < 0 || ratio < ratios[allInIndex] {
			allInIndex = i
		}
	}

	if allInIndex >= 0 {
		mask[allInIndex] = true
	}

	return mask
}
