package game

import "github.com/lox/blackjack/blackjack"

// DealerStandsOn is the total at which the dealer stops drawing
const DealerStandsOn = 17

// DealerShouldHit is the dealer's fixed drawing rule: draw below 17, stand on
// any 17 or more (soft 17 included, busts included).
func DealerShouldHit(hand blackjack.Hand) bool {
	return hand.Score() < DealerStandsOn
}
