package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerrl/pkg/poker/potmanager"
	"pokerrl/pkg/poker/rules"
)

// settle pays out the pot of a settled snapshot
// When more than one seat still holds cards the board is run out to the river.
// hand is what every seat put in this hand.
func (e *Engine) settle(h *History, s *Snapshot, hand PerSeat) (Winnings, error) {
	var winnings Winnings

	showdown := s.ActiveCount() > 1
	if showdown {
		s.Street = rules.River
		s.reveal(h.runout)
	}

	participants := make([]*potmanager.Participant, 0, s.NumPlayers)
	for seat := 1; seat <= s.NumPlayers; seat++ {
		p := &potmanager.Participant{
			Seat:     seat,
			Invested: hand[seat],
			Folded:   !s.Seats[seat].Active,
		}

		if !p.Folded {
			winnings[seat].Hand = s.HoleCards(seat)
		}

		if showdown && !p.Folded {
			value, err := e.ranker.Rank(winnings[seat].Hand, s.VisibleBoard())
			if err != nil {
				return winnings, fmt.Errorf("could not rank seat %d: %w: %w", seat, err, ErrInconsistentState)
			}

			p.Value = value
			winnings[seat].Value = value
		}

		participants = append(participants, p)
	}

	if total := hand.Total(); total != s.Pot {
		return winnings, fmt.Errorf("seats invested %s but the pot is %s: %w", total, s.Pot, ErrInconsistentState)
	}

	pots, payouts, err := potmanager.Settle(participants, payoutOrder(s))
	if err != nil {
		return winnings, fmt.Errorf("%v: %w", err, ErrInconsistentState)
	}

	for seat := 1; seat <= s.NumPlayers; seat++ {
		winnings[seat].Result = payouts[seat] - hand[seat]
	}

	e.logger.WithFields(logrus.Fields{
		"hand":     h.ID,
		"street":   s.Street,
		"pots":     len(pots),
		"pot":      pots.Total(),
		"showdown": showdown,
	}).Debug("settled hand")

	return winnings, nil
}
