package potmanager

import (
	"sort"

	"pokerrl/pkg/poker/handrank"
)

type tier struct {
	value        handrank.Value
	participants []*Participant
}

// WinManager groups participants by hand value
type WinManager map[handrank.Value]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant adds the participant to the tier of its hand value
func (w WinManager) AddParticipant(p *Participant) {
	t, ok := w[p.Value]
	if !ok {
		t = &tier{
			value:        p.Value,
			participants: make([]*Participant, 0),
		}
	}

	t.participants = append(t.participants, p)
	w[p.Value] = t
}

// GetSortedTiers returns the participants grouped by hand value, strongest first
func (w WinManager) GetSortedTiers() [][]*Participant {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sortByValue(tiers))

	tieredParticipants := make([][]*Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// lower values are stronger hands
type sortByValue []*tier

func (s sortByValue) Len() int {
	return len(s)
}

func (s sortByValue) Less(i, j int) bool {
	return s[i].value < s[j].value
}

func (s sortByValue) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
