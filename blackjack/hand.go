package blackjack

import "strings"

// Blackjack is the best possible hand total
const Blackjack = 21

// Hand is the ordered list of cards dealt to one party
type Hand []Card

// Score returns the best blackjack total for the cards. Every Ace starts at 11
// and is reduced to 1, one at a time, while the total exceeds 21. A bust total
// is returned as-is.
func Score(cards ...Card) int {
	total, _ := score(cards)
	return total
}

func score(cards []Card) (total int, softAces int) {
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}
	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// VisibleScore is the score shown for a dealer whose hole card is face down:
// the value of the up card alone.
func VisibleScore(up Card) int {
	return up.Value()
}

// Score returns the best total for the hand
func (h Hand) Score() int {
	return Score(h...)
}

// IsBust reports whether the hand exceeds 21
func (h Hand) IsBust() bool {
	return h.Score() > Blackjack
}

// IsNatural reports whether the hand is a two-card 21
func (h Hand) IsNatural() bool {
	return len(h) == 2 && h.Score() == Blackjack
}

// IsSoft reports whether an Ace is still being counted as 11
func (h Hand) IsSoft() bool {
	_, soft := score(h)
	return soft > 0
}

// Clone returns a copy that does not share the backing array
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
