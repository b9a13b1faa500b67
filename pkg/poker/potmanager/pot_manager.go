package potmanager

import (
	"errors"
	"fmt"
	"sort"

	"pokerrl/pkg/poker/chips"
)

// ErrNoContestants is returned when a pot has chips but nobody can win it
var ErrNoContestants = errors.New("pot has no contestants")

// Partition splits the investments into a main pot and side pots
// Every contestant all-in level starts a new tier. Each participant, folded or
// not, pays into a tier whatever part of its investment falls inside it. Chips
// above the highest contestant level are added to the last pot.
func Partition(participants []*Participant) Pots {
	levelSet := make(map[chips.Chips]bool)
	for _, p := range participants {
		if p.canWin() && p.Invested > 0 {
			levelSet[p.Invested] = true
		}
	}

	levels := make([]chips.Chips, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i] < levels[j]
	})

	pots := make(Pots, 0, len(levels))
	prevLevel := chips.Chips(0)
	for _, level := range levels {
		pot := &Pot{}
		for _, p := range participants {
			pot.Amount += chips.Max(0, chips.Min(p.Invested, level)-prevLevel)
			if p.canWin() && p.Invested >= level {
				pot.Contestants = append(pot.Contestants, p)
			}
		}

		pots = append(pots, pot)
		prevLevel = level
	}

	residue := chips.Chips(0)
	for _, p := range participants {
		residue += chips.Max(0, p.Invested-prevLevel)
	}

	if residue > 0 {
		if len(pots) == 0 {
			pots = append(pots, &Pot{})
		}

		pots[len(pots)-1].Amount += residue
	}

	return pots
}

// Distribute pays every pot to its strongest contestants
// Ties split the pot evenly. Indivisible hundredths are handed out one at a time
// following order, the seat order starting left of the button.
func Distribute(pots Pots, order []int) (map[int]chips.Chips, error) {
	rank := make(map[int]int, len(order))
	for i, seat := range order {
		rank[seat] = i
	}

	payouts := make(map[int]chips.Chips)
	for i, pot := range pots {
		if pot.Amount == 0 {
			continue
		}

		if len(pot.Contestants) == 0 {
			return nil, fmt.Errorf("pot %d of %s: %w", i, pot.Amount, ErrNoContestants)
		}

		wm := NewWinManager()
		for _, p := range pot.Contestants {
			wm.AddParticipant(p)
		}

		winners := wm.GetSortedTiers()[0]
		sort.SliceStable(winners, func(a, b int) bool {
			return rank[winners[a].Seat] < rank[winners[b].Seat]
		})

		n := chips.Chips(len(winners))
		share := pot.Amount / n
		oddChips := pot.Amount % n
		for j, winner := range winners {
			won := share
			if chips.Chips(j) < oddChips {
				won++
			}

			payouts[winner.Seat] += won
		}
	}

	return payouts, nil
}

// Settle partitions the investments and pays the winners
func Settle(participants []*Participant, order []int) (Pots, map[int]chips.Chips, error) {
	pots := Partition(participants)
	payouts, err := Distribute(pots, order)
	if err != nil {
		return nil, nil, err
	}

	return pots, payouts, nil
}
