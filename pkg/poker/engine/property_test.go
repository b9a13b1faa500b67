package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pokerrl/pkg/deck"
	"pokerrl/pkg/poker/chips"
	"pokerrl/pkg/poker/rules"
)

// TestEngine_randomPlay plays random legal actions and checks the
// invariants that must hold after every transition
func TestEngine_randomPlay(t *testing.T) {
	for n := rules.MinSeats; n <= rules.MaxSeats; n++ {
		for _, limit := range []rules.Limit{rules.PotLimit, rules.NoLimit} {
			t.Run(fmt.Sprintf("%d players %s", n, limit), func(t *testing.T) {
				cfg := rules.New(n, 0)
				cfg.Limit = limit
				// uneven stacks force side pots
				for i := range cfg.Stacks {
					cfg.Stacks[i] = chips.FromFloat(float64(20 + 15*i))
				}

				e := newEngine(t, cfg)
				r := rand.New(rand.NewSource(int64(n)))
				for hand := 1; hand <= 40; hand++ {
					playRandomHand(t, e, r, int64(hand))
				}
			})
		}
	}
}

func playRandomHand(t *testing.T, e *Engine, r *rand.Rand, seed int64) {
	t.Helper()
	cfg := e.Config()

	res, err := e.Init(deck.NewShuffled(seed))
	require.NoError(t, err)

	for steps := 0; !res.Done; steps++ {
		require.Less(t, steps, 500, "hand did not terminate")

		legal := res.Mask.Legal()
		require.NotEmpty(t, legal, "no legal action while the hand is live")

		prev := res.History
		code := legal[r.Intn(len(legal))]
		res, err = e.Step(prev, code)
		require.NoError(t, err, "code %s", code)

		latest := res.History.Latest()
		require.Equal(t, cfg.TotalChips(), latest.TotalStacks()+latest.Pot)
		require.Equal(t, latest.Pot, res.History.Investments().Hand.Total())
		require.Equal(t, prev.Len()+1, res.History.Len())
	}

	total := chips.Chips(0)
	for seat := 1; seat <= cfg.NumPlayers; seat++ {
		total += res.Winnings[seat].Result
		require.GreaterOrEqual(t, int64(res.Winnings[seat].Result), -int64(cfg.Stack(seat)))
	}
	require.Equal(t, chips.Chips(0), total)

	streets := res.History.Streets()
	last := len(streets) - 1
	for i := 1; i < len(streets); i++ {
		diff := streets[i] - streets[i-1]
		if i == last && streets[i] == rules.River {
			require.GreaterOrEqual(t, int(diff), 0)
			continue
		}

		require.Contains(t, []rules.Street{0, 1}, diff, "street jump at snapshot %d", i)
	}
}
