package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerrl/pkg/deck"
)

func five(s string) [5]*deck.Card {
	var cards [5]*deck.Card
	copy(cards[:], deck.CardsFromString(s))
	return cards
}

func TestAnalyzeFive(t *testing.T) {
	a := assert.New(t)

	assertHand := func(cards string, category Category, ranks []int) {
		t.Helper()

		h := analyzeFive(five(cards))
		a.Equal(category, h.category, cards)
		a.Equal(ranks, h.ranks, cards)
	}

	assertHand("10h,11h,12h,13h,14h", RoyalFlush, nil)
	assertHand("2c,3c,4c,5c,6c", StraightFlush, []int{6})
	assertHand("14d,2d,3d,4d,5d", StraightFlush, []int{5})
	assertHand("3c,9d,3h,3s,3d", FourOfAKind, []int{3, 9})
	assertHand("4c,9c,4d,9d,9h", FullHouse, []int{9, 4})
	assertHand("2h,5h,9h,11h,13h", Flush, []int{13, 11, 9, 5, 2})
	assertHand("14c,2d,3h,4s,5c", Straight, []int{5})
	assertHand("10c,11d,12h,13s,14c", Straight, []int{14})
	assertHand("7c,7d,7h,2s,9c", ThreeOfAKind, []int{7, 9, 2})
	assertHand("2c,2d,5h,5s,9c", TwoPair, []int{5, 2, 9})
	assertHand("8c,8d,2h,5s,9c", OnePair, []int{8, 9, 5, 2})
	assertHand("13c,8d,2h,5s,9c", HighCard, []int{13, 9, 8, 5, 2})

	// not a straight, the ace does not wrap around
	assertHand("12c,13d,14h,2s,3c", HighCard, []int{14, 13, 12, 3, 2})
}

func TestFiveCardHand_strength(t *testing.T) {
	a := assert.New(t)

	strength := func(s string) int {
		return analyzeFive(five(s)).strength()
	}

	a.Greater(strength("10h,11h,12h,13h,14h"), strength("9h,10h,11h,12h,13h"))
	a.Greater(strength("2c,3c,4c,5c,6c"), strength("14d,2d,3d,4d,5d"))
	a.Greater(strength("2c,2d,2h,2s,3c"), strength("14c,14d,14h,13s,13c"))
	a.Greater(strength("2h,3h,4h,5h,7h"), strength("10c,11d,12h,13s,14c"))
	a.Greater(strength("2c,3d,4h,5s,6c"), strength("14c,14d,14h,13s,12c"))
	a.Greater(strength("8c,8d,5h,5s,3c"), strength("8h,8s,5c,5d,2c"))
	a.Greater(strength("8c,8d,13h,5s,3c"), strength("8h,8s,12c,11d,10c"))
	a.Greater(strength("14c,13d,12h,11s,9c"), strength("14d,13h,12s,11c,8d"))
	a.Equal(strength("14c,13d,12h,11s,9c"), strength("14d,13h,12s,11c,9d"))
}

func TestAnalyzer_Evaluate(t *testing.T) {
	a := assert.New(t)
	omaha := NewAnalyzer("omaha-hi")
	holdem := NewAnalyzer("holdem")

	board := deck.CodesFromString("2h,7h,9h,11h,13c")

	// omaha needs two hearts in the hole for a flush
	cat, _, err := omaha.Evaluate(deck.CodesFromString("14h,3c,4d,5s"), board)
	a.NoError(err)
	a.Equal(HighCard, cat)

	cat, _, err = holdem.Evaluate(deck.CodesFromString("14h,3c"), board)
	a.NoError(err)
	a.Equal(Flush, cat)

	// omaha uses exactly three board cards
	quads := deck.CodesFromString("8c,8d,8h,8s,2c")
	cat, _, err = omaha.Evaluate(deck.CodesFromString("3c,4d,5h,6s"), quads)
	a.NoError(err)
	a.Equal(ThreeOfAKind, cat)

	cat, _, err = holdem.Evaluate(deck.CodesFromString("3c,4d"), quads)
	a.NoError(err)
	a.Equal(FourOfAKind, cat)

	// empty slots are ignored
	cat, _, err = holdem.Evaluate([]deck.Code{deck.CodesFromString("3c")[0], deck.CodesFromString("4d")[0], 0, 0}, quads)
	a.NoError(err)
	a.Equal(FourOfAKind, cat)
}

func TestAnalyzer_Rank(t *testing.T) {
	a := assert.New(t)
	omaha := NewAnalyzer("omaha-hi")
	board := deck.CodesFromString("2h,7h,9h,11h,13c")

	flush, err := omaha.Rank(deck.CodesFromString("14h,3h,4d,5s"), board)
	a.NoError(err)
	pair, err := omaha.Rank(deck.CodesFromString("13h,3c,4d,5s"), board)
	a.NoError(err)
	high, err := omaha.Rank(deck.CodesFromString("14c,3c,4d,5s"), board)
	a.NoError(err)

	// lower is stronger
	a.Less(flush, pair)
	a.Less(pair, high)

	same, err := omaha.Rank(deck.CodesFromString("14s,3d,4c,5h"), board)
	a.NoError(err)
	a.Equal(high, same)
}

func TestAnalyzer_errors(t *testing.T) {
	a := assert.New(t)

	_, err := NewAnalyzer("omaha-hi").Rank(deck.CodesFromString("14h,3h,4d,5s"), deck.CodesFromString("2h,7h"))
	a.ErrorIs(err, ErrNotEnoughCards)

	_, err = NewAnalyzer("holdem").Rank(deck.CodesFromString("14h"), deck.CodesFromString("2h,7h,9c"))
	a.ErrorIs(err, ErrNotEnoughCards)

	_, err = NewAnalyzer("holdem").Rank([]deck.Code{60, 1}, deck.CodesFromString("2h,7h,9c"))
	a.ErrorIs(err, deck.ErrInvalidCode)
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Full house", FullHouse.String())
	a.Equal("Royal flush", RoyalFlush.String())
	a.Panics(func() {
		_ = Category(99).String()
	})
}
