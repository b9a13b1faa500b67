package chips

import (
	"fmt"
	"math"
)

// Unit is the number of Chips that make up a single whole chip
const Unit Chips = 100

// Chips is an amount of chips expressed in hundredths of a chip
// Blinds of 0.5 and 1 are 50 and 100 respectively
type Chips int64

// FromFloat converts a whole-chip amount (i.e., 0.5) into Chips
// The value is rounded to the nearest hundredth
func FromFloat(f float64) Chips {
	return Chips(math.Round(f * float64(Unit)))
}

// Float64 returns the amount in whole chips
func (c Chips) Float64() float64 {
	return float64(c) / float64(Unit)
}

// Scale multiplies the amount by a ratio, rounding down to the nearest hundredth
func (c Chips) Scale(ratio float64) Chips {
	return Chips(math.Floor(float64(c)*ratio + 1e-9))
}

func (c Chips) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}

	return fmt.Sprintf("%s%d.%02d", sign, c/Unit, c%Unit)
}

// Min returns the smaller of two amounts
func Min(a, b Chips) Chips {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of two amounts
func Max(a, b Chips) Chips {
	if a > b {
		return a
	}

	return b
}

// Sum returns the total of all amounts
func Sum(amounts ...Chips) Chips {
	total := Chips(0)
	for _, amount := range amounts {
		total += amount
	}

	return total
}
