package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is a 52 card deck dealt from the top
type Deck struct {
	Cards []*Card `json:"cards"`
	// seed is the shuffle seed, -1 while unshuffled
	seed int64
}

// New returns a new deck of cards in suit then rank order
func New() *Deck {
	return &Deck{
		Cards: fullDeck(),
		seed:  -1,
	}
}

// NewShuffled returns a deck shuffled with the seed
// A seed of 0 seeds from the clock.
func NewShuffled(seed int64) *Deck {
	d := New()
	d.Shuffle(seed)
	return d
}

func fullDeck() []*Card {
	cards := make([]*Card, 0, 52)
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{Rank: rank, Suit: suit})
		}
	}

	return cards
}

// Shuffle restores all 52 cards and shuffles them with the seed
// The same seed always produces the same order.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.Cards = fullDeck()
	d.seed = seed

	r := rand.New(rand.NewSource(seed)) // nolint:gosec
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed the deck was shuffled with, -1 if unshuffled
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash of the cards left in the deck
// Two decks holding the same cards in the same order share a hash.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}
