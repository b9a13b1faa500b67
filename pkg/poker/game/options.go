package game

import (
	"pokerrl/pkg/poker/handrank"
	"pokerrl/pkg/poker/rules"
)

// Options are options for creating a new game
type Options struct {
	Rules rules.Config
	// Ranker ranks hands at showdown. Defaults to the analyzer of the variant.
	Ranker handrank.Ranker
}

// DefaultOptions returns six-handed pot-limit Omaha with 1000 chip stacks
func DefaultOptions() Options {
	return Options{
		Rules: rules.Default(),
	}
}
