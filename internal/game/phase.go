package game

// Phase is the stage of the current round
type Phase int

const (
	// Betting waits for a bet. Initial phase of a session.
	Betting Phase = iota
	// PlayerTurn accepts Hit and Stand.
	PlayerTurn
	// DealerTurn is entered internally while the dealer draws.
	DealerTurn
	// Settled holds the result of the last round until the next bet.
	Settled
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// AcceptsBet reports whether PlaceBet is allowed in this phase
func (p Phase) AcceptsBet() bool {
	return p == Betting || p == Settled
}

// DealerRevealed reports whether the dealer's hole card is face up
func (p Phase) DealerRevealed() bool {
	return p == DealerTurn || p == Settled
}
