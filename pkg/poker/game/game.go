// Package game wraps the engine behind a reset/step interface
package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/action"
	"pokerrl/pkg/poker/engine"
	"pokerrl/pkg/poker/view"
)

// ErrNotStarted is returned when Step is called before Reset
var ErrNotStarted = errors.New("no hand has been dealt")

// Observation is what the seat to act sees after a reset or a step
type Observation struct {
	// Seat is the seat the views belong to: the seat to act, or the last
	// seat that acted once the hand is over
	Seat     int
	Views    []view.View
	Done     bool
	Winnings engine.Winnings
	Mask     engine.Mask
}

// Game plays one hand at a time
type Game struct {
	engine  *engine.Engine
	history *engine.History
	done    bool
	hands   int
	// deckHash identifies the shuffled deck of the current hand, empty for other dealers
	deckHash string

	logger logrus.FieldLogger
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	e, err := engine.New(opts.Rules, opts.Ranker, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &Game{
		engine: e,
		logger: logger,
	}, nil
}

// Reset deals a new hand from a deck shuffled with seed
func (g *Game) Reset(seed int64) (*Observation, error) {
	d := deck.NewShuffled(seed)
	hash := d.HashCode()

	obs, err := g.reset(d)
	if err != nil {
		return nil, err
	}

	g.deckHash = hash
	g.logger.WithFields(logrus.Fields{
		"hand": g.history.ID,
		"seed": d.Seed(),
		"deck": hash,
	}).Debug("shuffled deck")

	return obs, nil
}

// ResetWithDealer deals a new hand from the dealer
func (g *Game) ResetWithDealer(dealer engine.Dealer) (*Observation, error) {
	obs, err := g.reset(dealer)
	if err != nil {
		return nil, err
	}

	g.deckHash = ""
	return obs, nil
}

func (g *Game) reset(dealer engine.Dealer) (*Observation, error) {
	res, err := g.engine.Init(dealer)
	if err != nil {
		return nil, err
	}

	g.history = res.History
	g.done = false
	g.hands++

	g.logger.WithFields(logrus.Fields{
		"hand":   res.History.ID,
		"number": g.hands,
	}).Debug("new hand")

	return g.observe(res, res.History.Latest().Current)
}

// Step applies the action code for the seat to act
// An invalid action leaves the game as it was.
func (g *Game) Step(code action.Code) (*Observation, error) {
	if g.history == nil {
		return nil, ErrNotStarted
	}

	if g.done {
		return nil, engine.ErrHandComplete
	}

	actor := g.history.Latest().Current
	res, err := g.engine.Step(g.history, code)
	if err != nil {
		return nil, err
	}

	g.history = res.History
	g.done = res.Done

	seat := res.History.Latest().Current
	if res.Done {
		seat = actor
	}

	return g.observe(res, seat)
}

// History returns the history of the current hand
func (g *Game) History() *engine.History {
	return g.history
}

// Done returns true if the current hand is over
func (g *Game) Done() bool {
	return g.done
}

// DeckHash returns the hash of the deck the current hand was dealt from
func (g *Game) DeckHash() string {
	return g.deckHash
}

// Engine returns the engine the game plays with
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

func (g *Game) observe(res *engine.Result, seat int) (*Observation, error) {
	views, err := view.Project(res.History, seat)
	if err != nil {
		return nil, err
	}

	return &Observation{
		Seat:     seat,
		Views:    views,
		Done:     res.Done,
		Winnings: res.Winnings,
		Mask:     res.Mask,
	}, nil
}
