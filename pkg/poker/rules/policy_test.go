package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
)

func TestPotLimit_Size(t *testing.T) {
	a := assert.New(t)
	sizer := New(2, 900).BetSizer()

	// heads-up small blind opens for a pot-sized raise
	cat, amount, err := sizer.Size(1, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(1),
		Pot:             chips.FromFloat(1.5),
		Committed:       chips.FromFloat(0.5),
		Stack:           chips.FromFloat(9),
	})
	a.NoError(err)
	a.Equal(action.Raise, cat)
	a.Equal(chips.FromFloat(3), amount)

	// big blind re-raises the pot
	cat, amount, err = sizer.Size(1, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(3),
		Pot:             chips.FromFloat(4),
		Committed:       chips.FromFloat(1),
		Stack:           chips.FromFloat(9),
	})
	a.NoError(err)
	a.Equal(action.Raise, cat)
	a.Equal(chips.FromFloat(9), amount)

	// small blind three-bets
	_, amount, err = sizer.Size(1, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(9),
		Pot:             chips.FromFloat(12),
		Committed:       chips.FromFloat(3),
		Stack:           chips.FromFloat(27),
	})
	a.NoError(err)
	a.Equal(chips.FromFloat(27), amount)

	// three-handed, first in
	_, amount, err = sizer.Size(1, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(1),
		Pot:             chips.FromFloat(1.5),
		Stack:           chips.FromFloat(9),
	})
	a.NoError(err)
	a.Equal(chips.FromFloat(3.5), amount)

	// smallest ratio lands near the minimum raise
	_, amount, err = sizer.Size(0.5, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(1),
		Pot:             chips.FromFloat(1.5),
		Committed:       chips.FromFloat(0.5),
		Stack:           chips.FromFloat(9),
	})
	a.NoError(err)
	a.Equal(chips.FromFloat(2.5), amount)

	// capped at all-in
	_, amount, err = sizer.Size(1, Facing{
		Aggressor:       action.Bet,
		AggressorAmount: chips.FromFloat(10),
		Pot:             chips.FromFloat(30),
		Committed:       chips.FromFloat(2),
		Stack:           chips.FromFloat(5),
	})
	a.NoError(err)
	a.Equal(chips.FromFloat(7), amount)

	// unopened bets are a fraction of the pot
	cat, amount, err = sizer.Size(0.5, Facing{Pot: chips.FromFloat(6), Stack: chips.FromFloat(100)})
	a.NoError(err)
	a.Equal(action.Bet, cat)
	a.Equal(chips.FromFloat(3), amount)

	_, amount, err = sizer.Size(1, Facing{Pot: chips.FromFloat(60), Stack: chips.FromFloat(20)})
	a.NoError(err)
	a.Equal(chips.FromFloat(20), amount)
}

func TestNoLimit_Size(t *testing.T) {
	a := assert.New(t)
	cfg := New(2, 900)
	cfg.Limit = NoLimit
	sizer := cfg.BetSizer()

	f := Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(1),
		Pot:             chips.FromFloat(1.5),
		Committed:       chips.FromFloat(0.5),
		Stack:           chips.FromFloat(9.5),
	}

	cat, amount, err := sizer.Size(1, f)
	a.NoError(err)
	a.Equal(action.Raise, cat)
	a.Equal(chips.FromFloat(10), amount)

	_, amount, err = sizer.Size(0.5, f)
	a.NoError(err)
	a.Equal(chips.FromFloat(6), amount)

	// short stacks can only shove
	_, amount, err = sizer.Size(0.1, Facing{
		Aggressor:       action.Bet,
		AggressorAmount: chips.FromFloat(10),
		Pot:             chips.FromFloat(30),
		Stack:           chips.FromFloat(15),
	})
	a.NoError(err)
	a.Equal(chips.FromFloat(15), amount)

	cat, amount, err = sizer.Size(0.25, Facing{Pot: chips.FromFloat(6), Stack: chips.FromFloat(100)})
	a.NoError(err)
	a.Equal(action.Bet, cat)
	a.Equal(chips.FromFloat(25), amount)
}

func TestFixedLimit(t *testing.T) {
	a := assert.New(t)
	cfg := New(2, 900)
	cfg.Limit = FixedLimit

	cat, amount, err := cfg.BetSizer().Size(1, Facing{Pot: 150, Stack: 1000})
	a.ErrorIs(err, ErrUnimplementedPolicy)
	a.Equal(action.None, cat)
	a.Equal(chips.Chips(0), amount)

	a.Equal([]bool{false, false}, cfg.LadderMasker().Ladder([]float64{1, 0.5}, Facing{Pot: 150, Stack: 1000}))
}

func TestLadderMask(t *testing.T) {
	a := assert.New(t)
	masker := New(2, 900).LadderMasker()
	ratios := []float64{1, 0.5, 0.1}

	// deep stack: every ratio is a distinct raise
	a.Equal([]bool{true, true, true}, masker.Ladder(ratios, Facing{
		Aggressor:       action.Raise,
		AggressorAmount: chips.FromFloat(1),
		Pot:             chips.FromFloat(1.5),
		Committed:       chips.FromFloat(0.5),
		Stack:           chips.FromFloat(999.5),
	}))

	// the pot-sized bet would be all-in, a half pot would not
	a.Equal([]bool{true, true, true}, masker.Ladder(ratios, Facing{Pot: chips.FromFloat(10), Stack: chips.FromFloat(10)}))
	// the half pot and the full pot are both all-in; only the smaller is kept
	a.Equal([]bool{false, true, true}, masker.Ladder(ratios, Facing{Pot: chips.FromFloat(10), Stack: chips.FromFloat(4)}))
	// everything is all-in
	a.Equal([]bool{false, false, true}, masker.Ladder(ratios, Facing{Pot: chips.FromFloat(10), Stack: chips.FromFloat(0.5)}))

	// cannot put in more than the bet
	a.Equal([]bool{false, false, false}, masker.Ladder(ratios, Facing{
		Aggressor:       action.Bet,
		AggressorAmount: chips.FromFloat(10),
		Pot:             chips.FromFloat(30),
		Stack:           chips.FromFloat(8),
	}))

	// nothing behind
	a.Equal([]bool{false, false, false}, masker.Ladder(ratios, Facing{Pot: chips.FromFloat(10)}))
}

func TestLimitFromString(t *testing.T) {
	a := assert.New(t)

	l, err := LimitFromString("no-limit")
	a.NoError(err)
	a.Equal(NoLimit, l)

	_, err = LimitFromString("Pot limit")
	a.EqualError(err, "invalid bet limit: Pot limit")
}
