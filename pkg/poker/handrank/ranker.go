package handrank

import (
	"errors"
	"fmt"

	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/rules"
)

// ErrNotEnoughCards is returned when a five-card hand cannot be formed
var ErrNotEnoughCards = errors.New("not enough cards to form a hand")

// Value is an orderable hand value. A lower value is a stronger hand.
type Value int64

// Ranker ranks the best hand a player can form from their hole cards and the board
// Empty card codes are ignored.
type Ranker interface {
	Rank(hole, board []deck.Code) (Value, error)
}

// combinations calls fn with every five-card hand the variant allows
// Omaha must use exactly two hole cards and three board cards. Hold'em
// may use any five of the seven.
func combinations(variant rules.Variant, hole, board deck.Hand, fn func(cards [5]*deck.Card)) error {
	if variant == rules.OmahaHi {
		if len(hole) < 2 || len(board) < 3 {
			return fmt.Errorf("%d hole and %d board cards: %w", len(hole), len(board), ErrNotEnoughCards)
		}

		var cards [5]*deck.Card
		for i := 0; i < len(hole); i++ {
			for j := i + 1; j < len(hole); j++ {
				cards[0], cards[1] = hole[i], hole[j]
				for a := 0; a < len(board); a++ {
					for b := a + 1; b < len(board); b++ {
						for c := b + 1; c < len(board); c++ {
							cards[2], cards[3], cards[4] = board[a], board[b], board[c]
							fn(cards)
						}
					}
				}
			}
		}

		return nil
	}

	all := make(deck.Hand, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	if len(all) < 5 {
		return fmt.Errorf("%d cards: %w", len(all), ErrNotEnoughCards)
	}

	var cards [5]*deck.Card
	var choose func(start, depth int)
	choose = func(start, depth int) {
		if depth == 5 {
			fn(cards)
			return
		}

		for i := start; i <= len(all)-(5-depth); i++ {
			cards[depth] = all[i]
			choose(i+1, depth+1)
		}
	}

	choose(0, 0)
	return nil
}

func decode(hole, board []deck.Code) (deck.Hand, deck.Hand, error) {
	h, err := deck.HandFromCodes(hole)
	if err != nil {
		return nil, nil, err
	}

	b, err := deck.HandFromCodes(board)
	if err != nil {
		return nil, nil, err
	}

	return h, b, nil
}

// Analyzer ranks hands by category and kickers
type Analyzer struct {
	variant rules.Variant
}

// NewAnalyzer returns an analyzer for the variant
func NewAnalyzer(variant rules.Variant) *Analyzer {
	return &Analyzer{variant: variant}
}

// Rank returns the value of the best hand
func (a *Analyzer) Rank(hole, board []deck.Code) (Value, error) {
	_, value, err := a.Evaluate(hole, board)
	return value, err
}

// Evaluate returns the category and value of the best hand
func (a *Analyzer) Evaluate(hole, board []deck.Code) (Category, Value, error) {
	h, b, err := decode(hole, board)
	if err != nil {
		return HighCard, 0, err
	}

	var best fiveCardHand
	bestStrength := -1
	err = combinations(a.variant, h, b, func(cards [5]*deck.Card) {
		hand := analyzeFive(cards)
		if s := hand.strength(); s > bestStrength {
			bestStrength = s
			best = hand
		}
	})

	if err != nil {
		return HighCard, 0, err
	}

	return best.category, Value(-bestStrength), nil
}
