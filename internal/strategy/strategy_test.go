package strategy

import (
	"testing"

	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(s string) blackjack.Hand {
	return blackjack.Hand(blackjack.MustParseCards(s))
}

func card(s string) blackjack.Card {
	return blackjack.MustParseCards(s)[0]
}

func TestBasic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		player string
		up     string
		hit    bool
	}{
		{"5s 6h", "10c", true},
		{"10s 2h", "4c", false},
		{"10s 2h", "3c", true},
		{"10s 2h", "7c", true},
		{"10s 6h", "6c", false},
		{"10s 6h", "7c", true},
		{"10s 7h", "Ac", false},
		{"As 6h", "6c", true},
		{"As 7h", "8c", false},
		{"As 7h", "9c", true},
		{"As 7h", "Ac", true},
		{"As 8h", "10c", false},
	}
	for _, tt := range tests {
		t.Run(tt.player+" vs "+tt.up, func(t *testing.T) {
			assert.Equal(t, tt.hit, Basic{}.ShouldHit(hand(tt.player), card(tt.up)))
		})
	}
}

func TestSimpleStrategies(t *testing.T) {
	t.Parallel()
	up := card("10c")

	assert.True(t, MimicDealer{}.ShouldHit(hand("10s 6h"), up))
	assert.False(t, MimicDealer{}.ShouldHit(hand("10s 7h"), up))

	assert.True(t, NeverBust{}.ShouldHit(hand("5s 6h"), up))
	assert.False(t, NeverBust{}.ShouldHit(hand("10s 2h"), up))
	assert.True(t, NeverBust{}.ShouldHit(hand("As 6h"), up))

	s := StandOn{Threshold: 15}
	assert.True(t, s.ShouldHit(hand("10s 4h"), up))
	assert.False(t, s.ShouldHit(hand("10s 5h"), up))
	assert.Equal(t, "stand-on-15", s.Name())

	r := NewRandom(randutil.New(1))
	assert.False(t, r.ShouldHit(hand("As Kh"), up), "random never hits 21")
}

func TestParse(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"mimic-dealer", "never-bust", "basic", "random", "stand-on-15"} {
		s, err := Parse(name, randutil.New(1))
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}

	for _, name := range []string{"", "aggressive", "stand-on-", "stand-on-x", "stand-on-30"} {
		_, err := Parse(name, nil)
		assert.Error(t, err, name)
	}
	assert.Contains(t, Names(), "stand-on-N")
}

func TestPlayRound(t *testing.T) {
	t.Parallel()
	g := game.NewGame(game.WithDeckSource(func() *blackjack.Deck {
		return blackjack.NewStackedDeck(blackjack.MustParseCards("5s 10h 6c 8d 3h 4d")...)
	}))
	require.NoError(t, g.PlaceBet(10))
	require.NoError(t, PlayRound(g, MimicDealer{}))

	st := g.State()
	assert.Equal(t, game.Settled, st.Phase)
	assert.Equal(t, "5♠ 6♣ 3♥ 4♦", st.PlayerHand.String())
	assert.Equal(t, game.Push, st.LastSettlement.Outcome)
}
