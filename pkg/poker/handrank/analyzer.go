package handrank

import (
	"sort"

	"pokerrl/pkg/deck"
)

// group is a set of cards sharing a rank
type group struct {
	rank  int
	count int
}

// fiveCardHand is the analysis of exactly five cards
type fiveCardHand struct {
	category Category
	// ranks are the ranks that decide ties, most significant first
	ranks []int
}

// analyzeFive will determine the category and tie-breaking ranks of five cards
func analyzeFive(cards [5]*deck.Card) fiveCardHand {
	sorted := make([]int, 5)
	isFlush := true
	for i, card := range cards {
		sorted[i] = card.Rank
		if card.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	straight := straightHigh(sorted)
	if straight > 0 && isFlush {
		if straight == deck.Ace {
			return fiveCardHand{category: RoyalFlush}
		}

		return fiveCardHand{category: StraightFlush, ranks: []int{straight}}
	}

	groups := groupRanks(sorted)
	byGroup := make([]int, len(groups))
	for i, g := range groups {
		byGroup[i] = g.rank
	}

	switch {
	case groups[0].count == 4:
		return fiveCardHand{category: FourOfAKind, ranks: byGroup}
	case groups[0].count == 3 && groups[1].count == 2:
		return fiveCardHand{category: FullHouse, ranks: byGroup}
	case isFlush:
		return fiveCardHand{category: Flush, ranks: sorted}
	case straight > 0:
		return fiveCardHand{category: Straight, ranks: []int{straight}}
	case groups[0].count == 3:
		return fiveCardHand{category: ThreeOfAKind, ranks: byGroup}
	case groups[0].count == 2 && groups[1].count == 2:
		return fiveCardHand{category: TwoPair, ranks: byGroup}
	case groups[0].count == 2:
		return fiveCardHand{category: OnePair, ranks: byGroup}
	}

	return fiveCardHand{category: HighCard, ranks: sorted}
}

// straightHigh returns the high card of the straight, or 0
// ranks must be sorted high to low
func straightHigh(ranks []int) int {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}

	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}

	// the wheel, the ace plays low
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[4] == 2 {
		return 5
	}

	return 0
}

// groupRanks groups sorted ranks by count, larger groups first, then by rank
func groupRanks(ranks []int) []group {
	groups := make([]group, 0, 5)
	for _, rank := range ranks {
		if n := len(groups); n > 0 && groups[n-1].rank == rank {
			groups[n-1].count++
			continue
		}

		groups = append(groups, group{rank: rank, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	return groups
}

// strength returns the strength of the hand, higher is better
// The category is the most significant base-15 digit, followed by up to five ranks.
func (f fiveCardHand) strength() int {
	strength := f.category.weight()
	for i := 0; i < 5; i++ {
		val := 0
		if i < len(f.ranks) {
			val = f.ranks[i]
		}

		strength += pow15[4-i] * val
	}

	return strength
}

var pow15 = [6]int{1, 15, 225, 3375, 50625, 759375}

func (c Category) weight() int {
	return pow15[5] * int(c)
}
