package game

import "github.com/lox/blackjack/blackjack"

// Outcome is the result of a settled round
type Outcome string

const (
	PlayerBust      Outcome = "player_bust"
	DealerBust      Outcome = "dealer_bust"
	PlayerBlackjack Outcome = "player_blackjack"
	PlayerWin       Outcome = "player_win"
	DealerWin       Outcome = "dealer_win"
	Push            Outcome = "push"
)

// Outcomes lists every outcome, in determination order
var Outcomes = []Outcome{PlayerBust, DealerBust, PlayerBlackjack, PlayerWin, DealerWin, Push}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// PlayerWon reports whether the outcome returns more than the stake
func (o Outcome) PlayerWon() bool {
	return o == DealerBust || o == PlayerBlackjack || o == PlayerWin
}

// DetermineOutcome decides a round from the final hands. A player bust is
// decided before the dealer's hand matters. A natural beats any dealer hand
// other than a dealer natural; two naturals push by comparison.
func DetermineOutcome(player, dealer blackjack.Hand) Outcome {
	playerScore := player.Score()
	dealerScore := dealer.Score()

	switch {
	case playerScore > blackjack.Blackjack:
		return PlayerBust
	case dealerScore > blackjack.Blackjack:
		return DealerBust
	case player.IsNatural() && !dealer.IsNatural():
		return PlayerBlackjack
	case playerScore > dealerScore:
		return PlayerWin
	case dealerScore > playerScore:
		return DealerWin
	default:
		return Push
	}
}
