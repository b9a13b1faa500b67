package handrank

import (
	"fmt"

	"github.com/paulhankin/poker"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/rules"
)

var suitMap = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

// Fast ranks hands with table-driven evaluation
// Values are comparable with each other but not with Analyzer values.
type Fast struct {
	variant rules.Variant
}

// NewFast returns a table-driven ranker for the variant
func NewFast(variant rules.Variant) *Fast {
	return &Fast{variant: variant}
}

func toPokerCard(card *deck.Card) (poker.Card, error) {
	rank := card.Rank
	if rank == deck.Ace {
		rank = deck.LowAce
	}

	suit, ok := suitMap[card.Suit]
	if !ok {
		return 0, fmt.Errorf("suit %q: %w", card.Suit, deck.ErrInvalidCode)
	}

	return poker.MakeCard(suit, poker.Rank(rank))
}

// Rank returns the value of the best hand
func (f *Fast) Rank(hole, board []deck.Code) (Value, error) {
	h, b, err := decode(hole, board)
	if err != nil {
		return 0, err
	}

	if f.variant == rules.Holdem && len(h)+len(b) == 7 {
		var cards [7]poker.Card
		for i, card := range append(h.Clone(), b...) {
			if cards[i], err = toPokerCard(card); err != nil {
				return 0, err
			}
		}

		return Value(-poker.Eval7(&cards)), nil
	}

	best := int16(-1)
	var convErr error
	err = combinations(f.variant, h, b, func(five [5]*deck.Card) {
		if convErr != nil {
			return
		}

		var cards [5]poker.Card
		for i, card := range five {
			if cards[i], convErr = toPokerCard(card); convErr != nil {
				return
			}
		}

		if score := poker.Eval5(&cards); score > best {
			best = score
		}
	})

	if err != nil {
		return 0, err
	}

	if convErr != nil {
		return 0, convErr
	}

	return Value(-best), nil
}
