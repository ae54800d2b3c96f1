package display

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// Log records notifications as structured log lines
type Log struct {
	logger *log.Logger
}

// NewLog creates a display that logs state changes at debug level and
// settlements at info level
func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger.WithPrefix("display")}
}

func (l *Log) OnStateChanged(sc game.StateChange) {
	l.logger.Debug("State changed",
		"phase", sc.Phase,
		"player", sc.PlayerHand.String(),
		"playerScore", sc.PlayerScore,
		"dealer", sc.DealerHand.String(),
		"dealerHidden", sc.DealerHidden,
		"dealerScore", sc.DealerVisibleScore,
		"balance", sc.ChipBalance,
		"message", sc.Message)
}

func (l *Log) OnRoundSettled(s game.Settlement) {
	l.logger.Info("Round settled",
		"outcome", s.Outcome,
		"returned", s.Payout.Returned.String(),
		"credited", s.Credited,
		"balance", s.NewBalance)
}
