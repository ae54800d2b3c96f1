package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
)

// Globals are flags shared by every command. Set flags override the
// config file.
type Globals struct {
	Config   string `kong:"default='blackjack.hcl',type='path',help='HCL config file (missing file means defaults)'"`
	LogLevel string `kong:"help='Log level: debug, info, warn, error'"`
	LogFile  string `kong:"help='Write logs to this file'"`
	Seed     int64  `kong:"help='Deterministic RNG seed (0 for random)'"`
}

// load reads the config file and applies flag overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveSeed returns the configured seed, or a time-based one when unset
func resolveSeed(cfg *config.Config) int64 {
	return randutil.ResolveSeed(cfg.Game.Seed)
}

// newLogger builds the command logger writing to w
func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           cfg.LogLevel(),
	})
}

// openLogFile opens the configured log file for writing. Interactive
// commands own the terminal, so their logs go here.
func openLogFile(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
