package display

import "github.com/lox/blackjack/internal/game"

// Multi fans notifications out to every display in order
type Multi []game.Display

func (m Multi) OnStateChanged(sc game.StateChange) {
	for _, d := range m {
		d.OnStateChanged(sc)
	}
}

func (m Multi) OnRoundSettled(s game.Settlement) {
	for _, d := range m {
		d.OnRoundSettled(s)
	}
}
