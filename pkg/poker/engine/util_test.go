package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// stackedDealer deals cards in a known order
type stackedDealer struct {
	cards []*deck.Card
}

func newStackedDealer(cards string) *stackedDealer {
	return &stackedDealer{cards: deck.CardsFromString(cards)}
}

func (s *stackedDealer) Draw() (*deck.Card, error) {
	if len(s.cards) == 0 {
		return nil, deck.ErrEndOfDeck
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// seat 1 makes trip aces, seat 2 a pair of deuces
const headsUpCards = "14c,14d,3h,4s,7c,8d,2h,2s,14h,9c,5d,11s,12c"

func newEngine(t *testing.T, cfg rules.Config) *Engine {
	t.Helper()

	e, err := New(cfg, nil, logrus.StandardLogger())
	require.NoError(t, err)
	return e
}

func headsUp(t *testing.T, stack float64) (*Engine, *Result) {
	t.Helper()

	e := newEngine(t, rules.New(2, chips.FromFloat(stack)))
	res, err := e.Init(newStackedDealer(headsUpCards))
	require.NoError(t, err)
	return e, res
}

func play(t *testing.T, e *Engine, res *Result, codes ...action.Code) *Result {
	t.Helper()

	for _, code := range codes {
		var err error
		res, err = e.Step(res.History, code)
		require.NoError(t, err, "code %s", code)
	}

	return res
}

func streets(values ...int) []rules.Street {
	s := make([]rules.Street, len(values))
	for i, v := range values {
		s[i] = rules.Street(v)
	}

	return s
}

func repeat(code action.Code, n int) []action.Code {
	codes := make([]action.Code, n)
	for i := range codes {
		codes[i] = code
	}

	return codes
}
