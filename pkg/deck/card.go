package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCode is returned when a card code does not map to a card
var ErrInvalidCode = errors.New("invalid card code")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// suits is the order suits are encoded in
var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Code is the integer form of a card stored in table snapshots
// Codes run from 1 (2♣) to 52 (A♠). The zero value is an empty slot.
type Code uint8

// Empty is the code of an empty card slot
const Empty Code = 0

// Encode returns the code for the rank and suit
func Encode(rank int, suit Suit) (Code, error) {
	if rank < 2 || rank > Ace {
		return Empty, fmt.Errorf("rank %d: %w", rank, ErrInvalidCode)
	}

	idx := suitIndex(suit)
	if idx < 0 {
		return Empty, fmt.Errorf("suit %q: %w", suit, ErrInvalidCode)
	}

	return Code((rank-2)*4 + idx + 1), nil
}

// Card returns the card for the code
func (c Code) Card() (*Card, error) {
	if c == Empty || c > 52 {
		return nil, fmt.Errorf("code %d: %w", c, ErrInvalidCode)
	}

	n := int(c) - 1
	return &Card{
		Rank: n/4 + 2,
		Suit: suits[n%4],
	}, nil
}

// MarshalJSON encodes the code as a number, in slices too
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

func (c Code) String() string {
	card, err := c.Card()
	if err != nil {
		return "--"
	}

	return card.String()
}

// Code returns the integer code of the card
func (c *Card) Code() Code {
	code, err := Encode(c.Rank, c.Suit)
	if err != nil {
		panic(err)
	}

	return code
}

func suitIndex(suit Suit) int {
	for i, s := range suits {
		if s == suit {
			return i
		}
	}

	return -1
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CodesFromString returns the codes of the cards in the format of 2c,3h,4s,...
func CodesFromString(s string) []Code {
	return Hand(CardsFromString(s)).Codes()
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return fmt.Sprintf("%d%c", card.Rank, card.Suit[0])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
