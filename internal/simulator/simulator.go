// Package simulator plays headless blackjack sessions with automated
// strategies and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions      int
	Rounds        int // per session; a session also ends when it runs out of chips
	Bet           int // capped at the balance when the balance runs low
	Strategy      string
	Seed          int64
	Workers       int
	StartingChips int
	Rounding      game.Rounding
	Logger        *log.Logger
}

// SessionResult summarises one session
type SessionResult struct {
	Index        int    `json:"index"`
	SessionID    string `json:"session_id"`
	Seed         int64  `json:"seed"`
	Rounds       int    `json:"rounds"`
	StartBalance int    `json:"start_balance"`
	FinalBalance int    `json:"final_balance"`
	Net          int    `json:"net"`
	OutOfChips   bool   `json:"out_of_chips"`

	stats *statistics.Statistics
}

// Simulator runs blackjack sessions
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.StartingChips == 0 {
		config.StartingChips = game.DefaultStartingChips
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulation"),
	}
}

func (s *Simulator) validate() error {
	c := s.config
	switch {
	case c.Sessions <= 0:
		return fmt.Errorf("sessions must be positive, got %d", c.Sessions)
	case c.Rounds <= 0:
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	case c.Bet <= 0:
		return fmt.Errorf("bet must be positive, got %d", c.Bet)
	case c.StartingChips < 0:
		return fmt.Errorf("starting chips must be positive, got %d", c.StartingChips)
	}
	if _, err := strategy.Parse(c.Strategy, nil); err != nil {
		return err
	}
	return nil
}

// Run plays every session and merges the results. Sessions run concurrently
// on up to Workers goroutines; each has its own game and random source
// derived from Seed, so a run is reproducible whatever the worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	results := make([]SessionResult, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range results {
		g.Go(func() error {
			res, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, res := range results {
		stats.Merge(res.stats)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"sessions", len(results),
		"rounds", stats.Rounds,
		"strategy", s.config.Strategy,
		"mean", fmt.Sprintf("%.4f", stats.Mean()))

	return newReport(s.config, results, stats), nil
}

func (s *Simulator) playSession(ctx context.Context, index int) (SessionResult, error) {
	seed := randutil.Derive(s.config.Seed, index)
	rng := randutil.New(seed)

	strat, err := strategy.Parse(s.config.Strategy, rng)
	if err != nil {
		return SessionResult{}, err
	}

	opts := []game.Option{
		game.WithRNG(rng),
		game.WithStartingChips(s.config.StartingChips),
		game.WithRounding(s.config.Rounding),
	}
	// Per-round game logs only at debug level
	if s.logger.GetLevel() <= log.DebugLevel {
		opts = append(opts, game.WithLogger(s.logger))
	}
	g := game.NewGame(opts...)

	res := SessionResult{
		Index:        index,
		SessionID:    g.SessionID(),
		Seed:         seed,
		StartBalance: g.Balance(),
		stats:        statistics.New(),
	}

	for res.Rounds < s.config.Rounds && g.Balance() > 0 {
		if err := ctx.Err(); err != nil {
			return SessionResult{}, err
		}
		bet := min(s.config.Bet, g.Balance())
		if err := g.PlaceBet(bet); err != nil {
			return SessionResult{}, fmt.Errorf("round %d: %w", res.Rounds+1, err)
		}
		if err := strategy.PlayRound(g, strat); err != nil {
			return SessionResult{}, fmt.Errorf("round %d: %w", res.Rounds+1, err)
		}

		settled := g.State().LastSettlement
		if settled == nil {
			return SessionResult{}, fmt.Errorf("round %d did not settle", res.Rounds+1)
		}
		res.stats.Add(statistics.RoundResult{
			Outcome:  settled.Outcome,
			Bet:      bet,
			Returned: settled.Payout.Returned,
			Credited: settled.Credited,
		})
		res.Rounds++
	}

	res.FinalBalance = g.Balance()
	res.Net = res.FinalBalance - res.StartBalance
	res.OutOfChips = g.Balance() == 0

	s.logger.Debug("Session finished",
		"session", res.SessionID,
		"rounds", res.Rounds,
		"balance", res.FinalBalance)

	return res, nil
}
