package game

import (
	"testing"

	"github.com/lox/blackjack/blackjack"
)

// recorder captures every notification in order
type recorder struct {
	frames      []StateChange
	settlements []Settlement
}

func (r *recorder) OnStateChanged(sc StateChange) { r.frames = append(r.frames, sc) }
func (r *recorder) OnRoundSettled(s Settlement)   { r.settlements = append(r.settlements, s) }

func (r *recorder) last() StateChange {
	return r.frames[len(r.frames)-1]
}

// stackedDecks returns a deck source that deals each layout in turn, one per
// round. Cards are dealt player, dealer, player, dealer, then hits.
func stackedDecks(t *testing.T, layouts ...string) func() *blackjack.Deck {
	t.Helper()
	next := 0
	return func() *blackjack.Deck {
		if next >= len(layouts) {
			t.Fatalf("test requested deck %d but only %d were stacked", next+1, len(layouts))
		}
		d := blackjack.NewStackedDeck(blackjack.MustParseCards(layouts[next])...)
		next++
		return d
	}
}

func newTestGame(t *testing.T, opts []Option, layouts ...string) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	base := []Option{
		WithDeckSource(stackedDecks(t, layouts...)),
		WithDisplay(rec),
		WithSessionID("test"),
	}
	return NewGame(append(base, opts...)...), rec
}
