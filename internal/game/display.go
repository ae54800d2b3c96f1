package game

import (
	"fmt"

	"github.com/lox/blackjack/blackjack"
)

// Display receives a projection of the game after every transition. It holds
// no authoritative state.
type Display interface {
	OnStateChanged(StateChange)
	OnRoundSettled(Settlement)
}

// StateChange is the table as the player may see it
type StateChange struct {
	Phase      Phase
	PlayerHand blackjack.Hand
	// DealerHand holds face-up cards only; DealerHidden counts the rest.
	DealerHand         blackjack.Hand
	DealerHidden       int
	PlayerScore        int
	DealerVisibleScore int
	ChipBalance        int
	Bet                int
	Message            string
}

// Settlement describes a finished round
type Settlement struct {
	Outcome     Outcome
	Payout      Payout
	Credited    int // chips added to the balance after rounding
	NewBalance  int
	PlayerScore int
	DealerScore int
	OutOfChips  bool
}

// Message returns the dealer's announcement for the result
func (s Settlement) Message() string {
	if s.OutOfChips {
		return "You're out of chips! Reset to play again."
	}

	bet := s.Payout.Bet
	switch s.Outcome {
	case PlayerBust:
		return fmt.Sprintf("BUST! You lose %d chips.", bet)
	case DealerBust:
		return fmt.Sprintf("DEALER BUST! You win %d chips.", bet)
	case PlayerBlackjack:
		return fmt.Sprintf("BLACKJACK! You win %s chips!", s.Payout.Net())
	case PlayerWin:
		return fmt.Sprintf("YOU WIN! You win %d chips.", bet)
	case DealerWin:
		return fmt.Sprintf("DEALER WINS! You lose %d chips.", bet)
	case Push:
		return "PUSH! Your bet is returned."
	default:
		return string(s.Outcome)
	}
}

// NopDisplay ignores all notifications
type NopDisplay struct{}

func (NopDisplay) OnStateChanged(StateChange) {}
func (NopDisplay) OnRoundSettled(Settlement)  {}

// DisplayFuncs adapts plain functions to Display. Nil fields are skipped.
type DisplayFuncs struct {
	StateChanged func(StateChange)
	RoundSettled func(Settlement)
}

func (d DisplayFuncs) OnStateChanged(sc StateChange) {
	if d.StateChanged != nil {
		d.StateChanged(sc)
	}
}

func (d DisplayFuncs) OnRoundSettled(s Settlement) {
	if d.RoundSettled != nil {
		d.RoundSettled(s)
	}
}
