// Package config loads the HCL configuration file shared by the blackjack
// commands. A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/game"
)

// DefaultFilename is read when --config is not given
const DefaultFilename = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Display    *DisplaySettings    `hcl:"display,block"`
	Log        *LogSettings        `hcl:"log,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings configures each session
type GameSettings struct {
	StartingChips int    `hcl:"starting_chips,optional"`
	DefaultBet    int    `hcl:"default_bet,optional"`
	Rounding      string `hcl:"rounding,optional"`
	Seed          int64  `hcl:"seed,optional"`
}

// DisplaySettings configures the console and TUI displays
type DisplaySettings struct {
	DealerDelayMs *int `hcl:"dealer_delay_ms,optional"` // 0 turns pacing off
	NoColor       bool `hcl:"no_color,optional"`
}

// LogSettings configures logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulationSettings configures headless runs
type SimulationSettings struct {
	Sessions int    `hcl:"sessions,optional"`
	Rounds   int    `hcl:"rounds,optional"`
	Bet      int    `hcl:"bet,optional"`
	Strategy string `hcl:"strategy,optional"`
	Workers  int    `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			StartingChips: game.DefaultStartingChips,
			DefaultBet:    50,
			Rounding:      game.RoundDown.String(),
		},
		Display: &DisplaySettings{
			DealerDelayMs: intPtr(1000),
		},
		Log: &LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		Simulation: &SimulationSettings{
			Sessions: 100,
			Rounds:   1000,
			Bet:      10,
			Strategy: "mimic-dealer",
			Workers:  4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(d *Config) {
	if c.Game == nil {
		c.Game = d.Game
	}
	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = d.Game.StartingChips
	}
	if c.Game.DefaultBet == 0 {
		c.Game.DefaultBet = d.Game.DefaultBet
	}
	if c.Game.Rounding == "" {
		c.Game.Rounding = d.Game.Rounding
	}

	if c.Display == nil {
		c.Display = d.Display
	}
	if c.Display.DealerDelayMs == nil {
		c.Display.DealerDelayMs = d.Display.DealerDelayMs
	}

	if c.Log == nil {
		c.Log = d.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}

	if c.Simulation == nil {
		c.Simulation = d.Simulation
	}
	if c.Simulation.Sessions == 0 {
		c.Simulation.Sessions = d.Simulation.Sessions
	}
	if c.Simulation.Rounds == 0 {
		c.Simulation.Rounds = d.Simulation.Rounds
	}
	if c.Simulation.Bet == 0 {
		c.Simulation.Bet = d.Simulation.Bet
	}
	if c.Simulation.Strategy == "" {
		c.Simulation.Strategy = d.Simulation.Strategy
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = d.Simulation.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive")
	}
	if c.Game.DefaultBet <= 0 {
		return fmt.Errorf("default bet must be positive")
	}
	if c.Game.DefaultBet > c.Game.StartingChips {
		return fmt.Errorf("default bet %d exceeds starting chips %d", c.Game.DefaultBet, c.Game.StartingChips)
	}
	if _, err := game.ParseRounding(c.Game.Rounding); err != nil {
		return err
	}
	if *c.Display.DealerDelayMs < 0 {
		return fmt.Errorf("dealer delay cannot be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Simulation.Sessions < 0 || c.Simulation.Rounds < 0 {
		return fmt.Errorf("simulation sessions and rounds cannot be negative")
	}
	if c.Simulation.Bet <= 0 {
		return fmt.Errorf("simulation bet must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers cannot be negative")
	}
	return nil
}

// GameOptions returns the game options implied by the configuration
func (c *Config) GameOptions() []game.Option {
	rounding, _ := game.ParseRounding(c.Game.Rounding)
	return []game.Option{
		game.WithStartingChips(c.Game.StartingChips),
		game.WithRounding(rounding),
	}
}

// DealerDelay returns the pause between dealer-turn frames
func (c *Config) DealerDelay() time.Duration {
	return time.Duration(*c.Display.DealerDelayMs) * time.Millisecond
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func intPtr(n int) *int {
	return &n
}
