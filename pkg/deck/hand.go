package deck

// Hand represents a collection of cards
type Hand []*Card

// Codes returns the integer codes of every card in the hand
func (h Hand) Codes() []Code {
	codes := make([]Code, len(h))
	for i, card := range h {
		codes[i] = card.Code()
	}

	return codes
}

// HandFromCodes decodes the codes into a hand
// Empty slots are skipped
func HandFromCodes(codes []Code) (Hand, error) {
	h := make(Hand, 0, len(codes))
	for _, code := range codes {
		if code == Empty {
			continue
		}

		card, err := code.Card()
		if err != nil {
			return nil, err
		}

		h = append(h, card)
	}

	return h, nil
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
