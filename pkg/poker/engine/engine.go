// Package engine steps a single hand of poker from the blinds to the settlement
package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/handrank"
	"pokerrl/pkg/poker/rules"
)

// Dealer deals the cards of a hand
type Dealer interface {
	Draw() (*deck.Card, error)
}

// SeatResult is the outcome of the hand for one seat
type SeatResult struct {
	// Hand is the hole cards the seat showed, empty if it folded
	Hand   []deck.Code
	Value  handrank.Value
	Result chips.Chips
}

// Winnings holds the outcome per seat, indexed from 1
type Winnings [rules.MaxSeats + 1]SeatResult

// Result is returned after every transition
type Result struct {
	History  *History
	Done     bool
	Winnings Winnings
	// Mask holds the legal actions of the next seat to act
	Mask Mask
}

// Engine applies actions to hands played under one configuration
// An Engine holds no hand state and may be shared between goroutines.
type Engine struct {
	cfg    rules.Config
	ranker handrank.Ranker
	sizer  rules.BetSizer
	masker rules.LadderMasker
	logger logrus.FieldLogger
}

// New returns a new engine
// A nil ranker ranks hands with the analyzer of the variant. A nil logger discards output.
func New(cfg rules.Config, ranker handrank.Ranker, logger logrus.FieldLogger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if ranker == nil {
		ranker = handrank.NewAnalyzer(cfg.Variant)
	}

	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}

	cfg = cfg.Clone()
	return &Engine{
		cfg:    cfg,
		ranker: ranker,
		sizer:  cfg.BetSizer(),
		masker: cfg.LadderMasker(),
		logger: logger,
	}, nil
}

// Config returns a copy of the configuration
func (e *Engine) Config() rules.Config {
	return e.cfg.Clone()
}

// Init deals a new hand and posts the blinds
// The history starts with two snapshots, one per blind.
func (e *Engine) Init(dealer Dealer) (*Result, error) {
	base := Snapshot{
		NumPlayers: e.cfg.NumPlayers,
		Street:     rules.Preflop,
	}

	positions := e.cfg.Positions()
	holeCards := e.cfg.Variant.HoleCards()
	for seat := 1; seat <= e.cfg.NumPlayers; seat++ {
		s := Seat{
			Position: positions[seat-1],
			Stack:    e.cfg.Stack(seat),
			Active:   true,
		}

		for i := 0; i < holeCards; i++ {
			card, err := dealer.Draw()
			if err != nil {
				return nil, fmt.Errorf("could not deal hole cards: %w", err)
			}

			s.Hole[i] = card.Code()
		}

		base.Seats[seat] = s
	}

	var runout [BoardSize]deck.Code
	for i := range runout {
		card, err := dealer.Draw()
		if err != nil {
			return nil, fmt.Errorf("could not deal the board: %w", err)
		}

		runout[i] = card.Code()
	}

	sbSeat, bbSeat := e.cfg.SmallBlindSeat(), e.cfg.BigBlindSeat()

	sb := base
	sb.Seats[sbSeat].Stack -= e.cfg.SmallBlind
	sb.Pot = e.cfg.SmallBlind
	sb.Previous = ActionRecord{Seat: sbSeat, Category: action.Bet, Amount: e.cfg.SmallBlind, IsBlind: true}
	sb.Aggressor = sb.Previous
	resetOrderForNewStreet(&sb)
	sb.Current, sb.Next = bbSeat, sb.Current

	bb := sb
	bb.Seats[bbSeat].Stack -= e.cfg.BigBlind
	bb.Pot += e.cfg.BigBlind
	bb.Previous = ActionRecord{Seat: bbSeat, Category: action.Raise, Amount: e.cfg.BigBlind, IsBlind: true}
	bb.Aggressor = bb.Previous
	resetOrderForNewStreet(&bb)

	h := newHistory(runout, sb, bb)
	e.logger.WithFields(logrus.Fields{
		"hand":    h.ID,
		"players": e.cfg.NumPlayers,
		"variant": e.cfg.Variant,
	}).Debug("posted blinds")

	return &Result{
		History: h,
		Mask:    e.LegalActionMask(bb, h.Investments().Street),
	}, nil
}
