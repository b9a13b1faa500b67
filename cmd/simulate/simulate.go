package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"pokerrl/internal/rng"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/engine"
	"pokerrl/pkg/poker/game"
	"pokerrl/pkg/poker/rules"
)

// maxSteps bounds a single hand; a hand that runs longer is stuck
const maxSteps = 1000

var errNotZeroSum = errors.New("results do not sum to zero")

// handResult is the outcome of one simulated hand
type handResult struct {
	ID        uuid.UUID
	Seed      int64
	DeckHash  string
	Snapshots int
	Showdown  bool
	Net       []chips.Chips
}

// Summary aggregates the outcome of every simulated hand
type Summary struct {
	RunID     uuid.UUID
	Hands     int
	Snapshots int
	Showdowns int
	// Net is the total result per seat, in seat order
	Net []chips.Chips
}

func newSummary(n int) *Summary {
	return &Summary{
		RunID: uuid.New(),
		Net:   make([]chips.Chips, n),
	}
}

func (s *Summary) add(res handResult) {
	s.Hands++
	s.Snapshots += res.Snapshots
	if res.Showdown {
		s.Showdowns++
	}

	for i, net := range res.Net {
		s.Net[i] += net
	}
}

// AverageLength returns the mean number of snapshots per hand
func (s *Summary) AverageLength() float64 {
	if s.Hands == 0 {
		return 0
	}

	return float64(s.Snapshots) / float64(s.Hands)
}

// ShowdownShare returns the share of hands that reached a showdown
func (s *Summary) ShowdownShare() float64 {
	if s.Hands == 0 {
		return 0
	}

	return float64(s.Showdowns) / float64(s.Hands)
}

// simulator plays random legal actions in many hands at once
type simulator struct {
	opts    game.Options
	hands   int
	workers int
	seed    int64
	logger  logrus.FieldLogger
}

// Run plays every hand and returns the summary
// The first failing hand cancels the run.
func (s *simulator) Run(ctx context.Context) (*Summary, error) {
	if s.workers < 1 {
		return nil, fmt.Errorf("need at least one worker, got %d", s.workers)
	}

	g, ctx := errgroup.WithContext(ctx)
	seeds := make(chan int64)
	results := make(chan handResult)

	g.Go(func() error {
		defer close(seeds)
		for i := 0; i < s.hands; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			select {
			case seeds <- s.seed + int64(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			gm, err := game.NewGame(s.logger, s.opts)
			if err != nil {
				return err
			}

			for seed := range seeds {
				res, err := playHand(gm, seed)
				if err != nil {
					return fmt.Errorf("hand with seed %d: %w", seed, err)
				}

				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	summary := newSummary(s.opts.Rules.NumPlayers)
	for res := range results {
		summary.add(res)
		s.logger.WithFields(logrus.Fields{
			"hand":      res.ID,
			"seed":      res.Seed,
			"deck":      res.DeckHash,
			"snapshots": res.Snapshots,
			"showdown":  res.Showdown,
		}).Debug("hand complete")
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

// playHand plays a hand with uniformly random legal actions seeded by seed
func playHand(g *game.Game, seed int64) (handResult, error) {
	obs, err := g.Reset(seed)
	if err != nil {
		return handResult{}, err
	}

	chooser := rng.NewSeeded(seed)
	for steps := 0; !obs.Done; steps++ {
		if steps == maxSteps {
			return handResult{}, fmt.Errorf("no result after %d steps: %w", steps, engine.ErrInconsistentState)
		}

		legal := obs.Mask.Legal()
		if len(legal) == 0 {
			return handResult{}, fmt.Errorf("seat %d has no legal action: %w", obs.Seat, engine.ErrInconsistentState)
		}

		if obs, err = g.Step(legal[chooser.Intn(len(legal))]); err != nil {
			return handResult{}, err
		}
	}

	res, err := verify(g.Engine().Config(), g.History(), obs.Winnings, seed)
	if err != nil {
		return handResult{}, fmt.Errorf("deck %s: %w", g.DeckHash(), err)
	}

	res.DeckHash = g.DeckHash()
	return res, nil
}

// verify checks that chips were neither created nor lost
func verify(cfg rules.Config, h *engine.History, winnings engine.Winnings, seed int64) (handResult, error) {
	latest := h.Latest()
	if total := latest.TotalStacks() + latest.Pot; total != cfg.TotalChips() {
		return handResult{}, fmt.Errorf("table holds %s, expected %s: %w", total, cfg.TotalChips(), engine.ErrInconsistentState)
	}

	res := handResult{
		ID:        h.ID,
		Seed:      seed,
		Snapshots: h.Len(),
		Showdown:  latest.ActiveCount() > 1,
		Net:       make([]chips.Chips, cfg.NumPlayers),
	}

	sum := chips.Chips(0)
	for seat := 1; seat <= cfg.NumPlayers; seat++ {
		res.Net[seat-1] = winnings[seat].Result
		sum += winnings[seat].Result
	}

	if sum != 0 {
		return handResult{}, fmt.Errorf("hand %s: off by %s: %w", h.ID, sum, errNotZeroSum)
	}

	return res, nil
}
