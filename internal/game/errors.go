package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds returned by Game operations. Returned errors wrap one of these
// with a description; test with errors.Is.
var (
	// ErrInvalidBet is returned for a non-numeric, non-positive or unaffordable bet.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInvalidAction is returned for an action that does not match the current phase.
	ErrInvalidAction = errors.New("invalid action")
	// ErrOutOfChips is returned when betting with an empty balance.
	ErrOutOfChips = errors.New("out of chips")
)

// ParseBet converts user input into a bet amount. Non-numeric input fails
// with ErrInvalidBet; range checks happen in PlaceBet.
func ParseBet(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidBet, s)
	}
	return n, nil
}

func invalidAction(action string, phase Phase) error {
	return fmt.Errorf("%w: cannot %s during %s", ErrInvalidAction, action, phase)
}
