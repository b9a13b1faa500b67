package engine

import (
	"github.com/google/uuid"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// PerSeat holds an amount per seat, indexed from 1
type PerSeat [rules.MaxSeats + 1]chips.Chips

// Total returns the sum over every seat
func (p PerSeat) Total() chips.Chips {
	return chips.Sum(p[:]...)
}

// Investments is what every seat put in, replayed from a history
type Investments struct {
	// Street is what each seat put in on the latest street
	Street PerSeat
	// Hand is what each seat put in since the blinds
	Hand PerSeat
}

// History is the ordered list of snapshots of a hand
// A History is never modified; appending returns a new History.
type History struct {
	ID        uuid.UUID
	runout    [BoardSize]deck.Code
	snapshots []Snapshot
}

func newHistory(runout [BoardSize]deck.Code, snapshots ...Snapshot) *History {
	return &History{
		ID:        uuid.New(),
		runout:    runout,
		snapshots: snapshots,
	}
}

// Len returns the number of snapshots
func (h *History) Len() int {
	return len(h.snapshots)
}

// At returns the snapshot at index i
func (h *History) At(i int) Snapshot {
	return h.snapshots[i]
}

// Latest returns the most recent snapshot
func (h *History) Latest() Snapshot {
	return h.snapshots[len(h.snapshots)-1]
}

// Snapshots returns a copy of every snapshot, oldest first
func (h *History) Snapshots() []Snapshot {
	s := make([]Snapshot, len(h.snapshots))
	copy(s, h.snapshots)
	return s
}

// Streets returns the street of every snapshot
func (h *History) Streets() []rules.Street {
	streets := make([]rules.Street, len(h.snapshots))
	for i, s := range h.snapshots {
		streets[i] = s.Street
	}

	return streets
}

// Runout returns the five board cards dealt for the hand
func (h *History) Runout() [BoardSize]deck.Code {
	return h.runout
}

func (h *History) append(s Snapshot) *History {
	snapshots := make([]Snapshot, len(h.snapshots), len(h.snapshots)+1)
	copy(snapshots, h.snapshots)

	return &History{
		ID:        h.ID,
		runout:    h.runout,
		snapshots: append(snapshots, s),
	}
}

// Investments replays the whole history
func (h *History) Investments() Investments {
	return replay(h.snapshots)
}

// InvestmentsAt replays the history up to and including snapshot i
func (h *History) InvestmentsAt(i int) Investments {
	return replay(h.snapshots[:i+1])
}

// replay attributes the previous action of every snapshot to its seat
// A bet or raise records the street total, so what the seat already put in on
// the street is netted out. The closing action of a street is recorded on the
// first snapshot of the next street; it is counted before the street
// accumulator resets.
func replay(snapshots []Snapshot) Investments {
	var inv Investments
	street := rules.Street(0)
	for _, s := range snapshots {
		if rec := s.Previous; rec.Seat != 0 {
			delta := rec.Amount
			if rec.Category.IsAggressive() {
				delta -= inv.Street[rec.Seat]
			}

			inv.Street[rec.Seat] += delta
			inv.Hand[rec.Seat] += delta
		}

		if s.Street > street {
			if street != 0 {
				inv.Street = PerSeat{}
			}

			street = s.Street
		}
	}

	return inv
}
