package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// ConsoleCmd plays a session on stdin and stdout
type ConsoleCmd struct {
	NoColor bool `kong:"help='Disable colors'"`
}

func (c *ConsoleCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := newLogger(logFile, cfg)
	seed := resolveSeed(cfg)
	logger.Info("Starting console session", "seed", seed)

	ctx, cancel := signalContext(logger)
	defer cancel()

	styles := display.NewStyles(os.Stdout, c.NoColor || cfg.Display.NoColor)
	s := newConsoleSession(os.Stdout, styles, quartz.NewReal(), cfg.DealerDelay(), cfg.Game.DefaultBet,
		append(cfg.GameOptions(),
			game.WithRNG(randutil.New(seed)),
			game.WithLogger(logger))...)

	fmt.Fprintln(os.Stdout, styles.Title.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	return s.run(ctx, os.Stdin)
}

type consoleSession struct {
	out        io.Writer
	console    *display.Console
	paced      *display.Paced
	game       *game.Game
	defaultBet int
}

func newConsoleSession(out io.Writer, styles display.Styles, clock quartz.Clock, delay time.Duration, defaultBet int, opts ...game.Option) *consoleSession {
	console := display.NewConsole(out, styles)
	paced := display.NewPaced(console, clock, delay)
	return &consoleSession{
		out:        out,
		console:    console,
		paced:      paced,
		game:       game.NewGame(append(opts, game.WithDisplay(paced))...),
		defaultBet: defaultBet,
	}
}

const consoleHelp = `Commands:
  bet N, b N, N   place a bet and deal
  bet, b          bet the default amount
  hit, h          take a card
  stand, s        end your turn
  reset, r        start over with the starting balance
  quit, q         leave the table`

// run reads commands until quit, end of input or cancellation
func (s *consoleSession) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "You have %d chips. Type help for commands.\n\n", s.game.Balance())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		quit, err := s.exec(scanner.Text())
		if err != nil {
			s.console.Error(err)
		}
		if err := s.paced.Flush(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if quit {
			fmt.Fprintf(s.out, "Leaving with %d chips.\n", s.game.Balance())
			return nil
		}
	}
}

func (s *consoleSession) exec(line string) (quit bool, err error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "bet", "b":
		if len(args) == 0 {
			return false, s.game.PlaceBet(s.defaultBet)
		}
		amount, err := game.ParseBet(args[0])
		if err != nil {
			return false, err
		}
		return false, s.game.PlaceBet(amount)
	case "hit", "h":
		return false, s.game.Hit()
	case "stand", "s":
		return false, s.game.Stand()
	case "reset", "r":
		s.game.Reset()
		return false, nil
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, consoleHelp)
		return false, nil
	default:
		if amount, err := game.ParseBet(cmd); err == nil {
			return false, s.game.PlaceBet(amount)
		}
		return false, fmt.Errorf("unknown command %q, type help for commands", cmd)
	}
}
