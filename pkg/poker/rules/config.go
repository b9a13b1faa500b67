package rules

import (
	"errors"
	"fmt"

	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
)

// seat limits
const (
	MinSeats = 2
	MaxSeats = 6
)

// DefaultBetSizes is the ratio ladder used when none is configured
var DefaultBetSizes = []float64{1, 0.9, 0.75, 0.67, 0.5, 0.33, 0.25, 0.1}

// Config holds the parameters of a single hand
// A Config is treated as immutable once it is handed to the engine
type Config struct {
	Variant    Variant
	NumPlayers int
	SmallBlind chips.Chips
	BigBlind   chips.Chips
	// Stacks holds the starting stack of every seat, in seat order
	Stacks []chips.Chips
	// BetSizes is the bet-size ratio ladder. Each ratio maps to one action code.
	BetSizes []float64
	Limit    Limit
}

// Default returns the default configuration: six-handed pot-limit Omaha, blinds 0.5/1 and 1000 chip stacks
func Default() Config {
	return New(6, chips.FromFloat(1000))
}

// New returns a default configuration for n players with uniform stacks
func New(n int, stack chips.Chips) Config {
	betSizes := make([]float64, len(DefaultBetSizes))
	copy(betSizes, DefaultBetSizes)

	return Config{
		Variant:    OmahaHi,
		NumPlayers: n,
		SmallBlind: chips.FromFloat(0.5),
		BigBlind:   chips.FromFloat(1),
		Stacks:     UniformStacks(n, stack),
		BetSizes:   betSizes,
		Limit:      PotLimit,
	}
}

// UniformStacks returns n copies of stack
func UniformStacks(n int, stack chips.Chips) []chips.Chips {
	if n < 0 {
		n = 0
	}

	stacks := make([]chips.Chips, n)
	for i := range stacks {
		stacks[i] = stack
	}

	return stacks
}

// Clone returns a deep copy of the config
func (c Config) Clone() Config {
	cp := c
	cp.Stacks = append([]chips.Chips(nil), c.Stacks...)
	cp.BetSizes = append([]float64(nil), c.BetSizes...)
	return cp
}

// Validate ensures the configuration describes a playable hand
func (c Config) Validate() error {
	if c.NumPlayers < MinSeats || c.NumPlayers > MaxSeats {
		return fmt.Errorf("number of players must be between %d and %d", MinSeats, MaxSeats)
	}

	if _, ok := validVariants[c.Variant]; !ok {
		return fmt.Errorf("invalid variant: %s", string(c.Variant))
	}

	if _, ok := validLimits[c.Limit]; !ok {
		return fmt.Errorf("invalid bet limit: %s", string(c.Limit))
	}

	if c.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if c.SmallBlind > c.BigBlind {
		return errors.New("small blind must be <= big blind")
	}

	if len(c.Stacks) != c.NumPlayers {
		return fmt.Errorf("expected %d stacks, got %d", c.NumPlayers, len(c.Stacks))
	}

	for i, stack := range c.Stacks {
		if stack <= c.BigBlind {
			return fmt.Errorf("stack of seat %d must be greater than the big blind", i+1)
		}
	}

	if len(c.BetSizes) == 0 {
		return errors.New("at least one bet size is required")
	}

	for _, ratio := range c.BetSizes {
		if ratio <= 0 || ratio > 1 {
			return fmt.Errorf("bet size %v must be > 0 and <= 1", ratio)
		}
	}

	return nil
}

// NumActions returns the length of the action space
func (c Config) NumActions() int {
	return action.NumCodes(len(c.BetSizes))
}

// Positions returns the position of every seat, in seat order
func (c Config) Positions() []Position {
	return positionsForPlayers(c.NumPlayers)
}

// SmallBlindSeat returns the seat that posts the first blind
func (c Config) SmallBlindSeat() int {
	return 1
}

// BigBlindSeat returns the seat that posts the big blind
func (c Config) BigBlindSeat() int {
	return 2
}

// Stack returns the starting stack of the seat (1-based)
func (c Config) Stack(seat int) chips.Chips {
	return c.Stacks[seat-1]
}

// TotalChips returns the sum of every starting stack
func (c Config) TotalChips() chips.Chips {
	return chips.Sum(c.Stacks...)
}

// BetSizer returns the bet-size policy selected by the limit
func (c Config) BetSizer() BetSizer {
	return policyForLimit(c.Limit)
}

// LadderMasker returns the ladder mask policy selected by the limit
func (c Config) LadderMasker() LadderMasker {
	return policyForLimit(c.Limit)
}
