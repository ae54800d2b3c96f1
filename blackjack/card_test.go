package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "A♠", want: Card{Rank: Ace, Suit: Spades}},
		{input: "As", want: Card{Rank: Ace, Suit: Spades}},
		{input: "10♥", want: Card{Rank: Ten, Suit: Hearts}},
		{input: "10h", want: Card{Rank: Ten, Suit: Hearts}},
		{input: "Td", want: Card{Rank: Ten, Suit: Diamonds}},
		{input: "kC", want: Card{Rank: King, Suit: Clubs}},
		{input: "2♦", want: Card{Rank: Two, Suit: Diamonds}},
		{input: "", wantErr: true},
		{input: "A", wantErr: true},
		{input: "1s", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "11h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, suit := range Suits {
		for _, rank := range Ranks {
			c := NewCard(rank, suit)
			parsed, err := ParseCard(c.String())
			require.NoError(t, err, "card %s", c)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestCardValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, NewCard(Two, Clubs).Value())
	assert.Equal(t, 9, NewCard(Nine, Clubs).Value())
	assert.Equal(t, 10, NewCard(Ten, Clubs).Value())
	assert.Equal(t, 10, NewCard(Jack, Clubs).Value())
	assert.Equal(t, 10, NewCard(Queen, Clubs).Value())
	assert.Equal(t, 10, NewCard(King, Clubs).Value())
	assert.Equal(t, 11, NewCard(Ace, Clubs).Value())
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("A♠ K♥, 10d")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Hearts},
		{Rank: Ten, Suit: Diamonds},
	}, cards)

	_, err = ParseCards("As Zz")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseCards("nope") })
}
