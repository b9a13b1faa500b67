package rules

import (
	"fmt"
	"strings"
)

// Variant specifies the hand-forming rules
type Variant string

// Variant constants
const (
	OmahaHi Variant = "omaha-hi"
	Holdem  Variant = "holdem"
)

// MaxHoleCards is the width of the hole-card slot in a snapshot
const MaxHoleCards = 4

var validVariants = map[Variant]bool{
	OmahaHi: true,
	Holdem:  true,
}

// HoleCards returns the number of hole cards for the variant
func (v Variant) HoleCards() int {
	if v == Holdem {
		return 2
	}

	return 4
}

func (v Variant) String() string {
	switch v {
	case OmahaHi:
		return "Omaha Hi"
	case Holdem:
		return "Hold'em"
	}

	panic(fmt.Sprintf("unknown variant: %s", string(v)))
}

// VariantFromString returns the variant from a string
func VariantFromString(s string) (Variant, error) {
	variant := Variant(strings.ToLower(s))
	if _, ok := validVariants[variant]; ok {
		return variant, nil
	}

	return "", fmt.Errorf("invalid variant: %s", s)
}
