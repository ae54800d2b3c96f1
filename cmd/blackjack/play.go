package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
	"github.com/muesli/termenv"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Bet     int  `kong:"help='Bet placed when enter is pressed with no amount (defaults to config)'"`
	NoColor bool `kong:"help='Disable colors'"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	if c.Bet > 0 {
		cfg.Game.DefaultBet = c.Bet
	}

	logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := newLogger(logFile, cfg)
	seed := resolveSeed(cfg)
	logger.Info("Starting interactive table", "seed", seed, "config", globals.Config)

	ctx, cancel := signalContext(logger)
	defer cancel()

	if c.NoColor || cfg.Display.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	styles := display.NewStylesWithRenderer(lipgloss.DefaultRenderer())

	model := tui.New(tui.Options{
		Clock:       quartz.NewReal(),
		DealerDelay: cfg.DealerDelay(),
		DefaultBet:  cfg.Game.DefaultBet,
		Logger:      logger,
		Styles:      &styles,
	}, append(cfg.GameOptions(), game.WithRNG(randutil.New(seed)))...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running table: %w", err)
	}

	st := model.Game().State()
	logger.Info("Table closed", "rounds", st.Round, "balance", st.ChipBalance)
	return nil
}
