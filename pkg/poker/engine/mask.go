package engine

import (
	"pokerrl/pkg/poker/action"
)

// Mask marks the legal codes of the action space
type Mask []bool

// IsLegal returns true if the code is legal
func (m Mask) IsLegal(code action.Code) bool {
	return code >= 0 && int(code) < len(m) && m[code]
}

// Legal returns every legal code
func (m Mask) Legal() []action.Code {
	codes := make([]action.Code, 0, len(m))
	for i, ok := range m {
		if ok {
			codes = append(codes, action.Code(i))
		}
	}

	return codes
}

// Ints returns the mask as zeros and ones
func (m Mask) Ints() []int {
	ints := make([]int, len(m))
	for i, ok := range m {
		if ok {
			ints[i] = 1
		}
	}

	return ints
}

// LegalActionMask returns the legal actions of the seat on the clock
// street is what every seat put in on the current street. A seat that cannot
// act gets an empty mask.
func (e *Engine) LegalActionMask(s Snapshot, street PerSeat) Mask {
	mask := make(Mask, e.cfg.NumActions())
	cur := s.Current
	if s.Settled || cur == 0 || !s.Seats[cur].CanAct() {
		return mask
	}

	f := facing(&s, Investments{Street: street}, cur)
	toCall := f.Level() - f.Committed
	if toCall > 0 {
		mask[action.CodeFold] = true
		mask[action.CodeCall] = true
	} else {
		// unopened, or the big blind's option
		mask[action.CodeCheck] = true
	}

	if !othersCanAct(&s, cur) {
		return mask
	}

	ladder := e.masker.Ladder(e.cfg.BetSizes, f)
	for i, ok := range ladder {
		mask[action.CodeForRatio(i)] = ok
	}

	return mask
}

// othersCanAct returns true if another seat could respond to a bet
func othersCanAct(s *Snapshot, seat int) bool {
	for other := 1; other <= s.NumPlayers; other++ {
		if other != seat && s.Seats[other].CanAct() {
			return true
		}
	}

	return false
}
