package blackjack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty", "", 0},
		{"ace and king", "As Kh", 21},
		{"ace and ten", "Ad 10c", 21},
		{"four aces", "As Ah Ad Ac", 14},
		{"two aces", "As Ah", 12},
		{"bust reported as-is", "10s 10h 5d", 25},
		{"soft seventeen", "As 6h", 17},
		{"soft hand hardens", "As 6h 9c", 16},
		{"ace reduced twice", "As Ah 9c", 21},
		{"three face cards", "Js Qh Kd", 30},
		{"dealer twenty one", "6c 5d Ks", 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := MustParseCards(tt.cards)
			assert.Equal(t, tt.want, Score(cards...))
			assert.Equal(t, tt.want, Hand(cards).Score())
		})
	}
}

func TestScorePermutationInvariant(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(9, 9))
	for range 200 {
		d := NewDeck(rng)
		n := 2 + rng.IntN(6)
		hand := make(Hand, 0, n)
		for range n {
			c, _ := d.Draw()
			hand = append(hand, c)
		}
		want := hand.Score()
		shuffled := hand.Clone()
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, shuffled.Score(), "hand %s vs %s", hand, shuffled)
	}
}

func TestHandPredicates(t *testing.T) {
	t.Parallel()
	natural := Hand(MustParseCards("As Kh"))
	assert.True(t, natural.IsNatural())
	assert.True(t, natural.IsSoft())
	assert.False(t, natural.IsBust())

	three21 := Hand(MustParseCards("7s 7h 7d"))
	assert.False(t, three21.IsNatural())
	assert.False(t, three21.IsSoft())

	bust := Hand(MustParseCards("10s 9h 5d"))
	assert.True(t, bust.IsBust())
	assert.Equal(t, 24, bust.Score())

	assert.Equal(t, 11, VisibleScore(NewCard(Ace, Hearts)))
	assert.Equal(t, 10, VisibleScore(NewCard(Queen, Hearts)))
	assert.Equal(t, "A♠ K♥", natural.String())
}
