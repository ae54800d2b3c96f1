// Package display renders game notifications for terminals and logs, and
// paces the dealer's turn for human eyes.
package display

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/game"
)

// Console writes a plain-text view of the table to w after every change
type Console struct {
	w      io.Writer
	styles Styles
}

// NewConsole creates a console display writing to w
func NewConsole(w io.Writer, styles Styles) *Console {
	return &Console{w: w, styles: styles}
}

// OnStateChanged implements game.Display
func (c *Console) OnStateChanged(sc game.StateChange) {
	s := c.styles
	if len(sc.DealerHand) > 0 || sc.DealerHidden > 0 {
		fmt.Fprintf(c.w, "%s %s %s\n",
			s.Label.Render("Dealer:"),
			s.Hand(sc.DealerHand, sc.DealerHidden),
			s.Score.Render(fmt.Sprintf("(%d)", sc.DealerVisibleScore)))
	}
	if len(sc.PlayerHand) > 0 {
		fmt.Fprintf(c.w, "%s    %s %s\n",
			s.Label.Render("You:"),
			s.Hand(sc.PlayerHand, 0),
			s.Score.Render(fmt.Sprintf("(%d)", sc.PlayerScore)))
	}
	line := s.Chips.Render(fmt.Sprintf("Chips: %d", sc.ChipBalance))
	if sc.Bet > 0 {
		line += "  " + s.Chips.Render(fmt.Sprintf("Bet: %d", sc.Bet))
	}
	fmt.Fprintln(c.w, line)
	if sc.Message != "" {
		fmt.Fprintln(c.w, s.Message.Render("» "+sc.Message))
	}
	fmt.Fprintln(c.w)
}

// OnRoundSettled implements game.Display
func (c *Console) OnRoundSettled(st game.Settlement) {
	style := c.styles.Push
	switch {
	case st.Outcome.PlayerWon():
		style = c.styles.Win
	case st.Outcome != game.Push:
		style = c.styles.Loss
	}
	fmt.Fprintf(c.w, "%s  you %d, dealer %d, returned %s, balance %d\n\n",
		style.Render(string(st.Outcome)),
		st.PlayerScore,
		st.DealerScore,
		st.Payout.Returned,
		st.NewBalance)
}

// Error prints a rejected action
func (c *Console) Error(err error) {
	fmt.Fprintln(c.w, c.styles.Error.Render("✗ "+err.Error()))
}
