package game

import (
	"fmt"
	"strconv"
)

// HalfChips is a chip amount in half-chip units, so a 3:2 blackjack bonus on
// an odd bet is exact.
type HalfChips int64

// Chips converts a whole chip count to half-chip units
func Chips(n int) HalfChips {
	return HalfChips(n) * 2
}

// IsWhole reports whether the amount has no half chip
func (h HalfChips) IsWhole() bool {
	return h%2 == 0
}

func (h HalfChips) String() string {
	whole := strconv.FormatInt(int64(h/2), 10)
	if h.IsWhole() {
		return whole
	}
	if h < 0 && h/2 == 0 {
		whole = "-0"
	}
	return whole + ".5"
}

// Payout is the chip movement at settlement. The stake was taken from the
// balance when the bet was placed.
type Payout struct {
	Outcome Outcome
	Bet     int
	// Returned is everything handed back to the balance: stake plus winnings.
	Returned HalfChips
}

// Net is the winnings-only view: Returned minus the stake
func (p Payout) Net() HalfChips {
	return p.Returned - Chips(p.Bet)
}

// CalculatePayout maps an outcome and bet to the amount returned. natural
// marks a two-card 21 for the player; it upgrades a PlayerWin to a
// PlayerBlackjack.
func CalculatePayout(outcome Outcome, bet int, natural bool) Payout {
	if outcome == PlayerWin && natural {
		outcome = PlayerBlackjack
	}

	p := Payout{Outcome: outcome, Bet: bet}
	switch outcome {
	case DealerBust, PlayerWin:
		p.Returned = Chips(2 * bet)
	case PlayerBlackjack:
		// bet + 1.5 × bet
		p.Returned = Chips(bet) + HalfChips(3*bet)
	case Push:
		p.Returned = Chips(bet)
	case PlayerBust, DealerWin:
		p.Returned = 0
	}
	return p
}

// Rounding decides how a half chip is credited to the integer balance
type Rounding int

const (
	// RoundDown drops a half chip. The house keeps it.
	RoundDown Rounding = iota
	// RoundUp credits a half chip as a whole chip.
	RoundUp
)

// Apply converts an amount to whole chips
func (r Rounding) Apply(h HalfChips) int {
	whole := int(h / 2)
	if !h.IsWhole() && r == RoundUp && h > 0 {
		whole++
	}
	return whole
}

// String returns the string representation of the rounding policy
func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseRounding parses "down" or "up"
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "down", "":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	}
	return RoundDown, fmt.Errorf("unknown rounding policy %q (want down or up)", s)
}
