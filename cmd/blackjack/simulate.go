package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd runs headless sessions and reports the results
type SimulateCmd struct {
	Sessions int    `kong:"help='Number of independent sessions (defaults to config)'"`
	Rounds   int    `kong:"help='Maximum rounds per session (defaults to config)'"`
	Strategy string `kong:"help='Player strategy: mimic-dealer, never-bust, basic, random, stand-on-N'"`
	Bet      int    `kong:"help='Bet per round (defaults to config)'"`
	Workers  int    `kong:"help='Concurrent sessions (defaults to config)'"`
	Output   string `kong:"type='path',help='Write a JSON report to this file'"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	sim := cfg.Simulation
	if c.Sessions > 0 {
		sim.Sessions = c.Sessions
	}
	if c.Rounds > 0 {
		sim.Rounds = c.Rounds
	}
	if c.Strategy != "" {
		sim.Strategy = c.Strategy
	}
	if c.Bet > 0 {
		sim.Bet = c.Bet
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}

	logger := newLogger(os.Stderr, cfg)
	if globals.LogFile != "" {
		logFile, err := openLogFile(cfg)
		if err != nil {
			return err
		}
		defer logFile.Close()
		logger = newLogger(logFile, cfg)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	rounding, _ := game.ParseRounding(cfg.Game.Rounding)
	seed := resolveSeed(cfg)
	logger.Info("Starting simulation",
		"sessions", sim.Sessions,
		"rounds", sim.Rounds,
		"strategy", sim.Strategy,
		"bet", sim.Bet,
		"seed", seed)

	report, err := simulator.New(simulator.Config{
		Sessions:      sim.Sessions,
		Rounds:        sim.Rounds,
		Bet:           sim.Bet,
		Strategy:      sim.Strategy,
		Seed:          seed,
		Workers:       sim.Workers,
		StartingChips: cfg.Game.StartingChips,
		Rounding:      rounding,
		Logger:        logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report.PrintSummary(os.Stdout)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Report written", "path", c.Output)
	}
	return nil
}
