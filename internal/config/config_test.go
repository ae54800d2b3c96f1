package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
game {
  starting_chips = 500
  default_bet    = 25
  rounding       = "up"
  seed           = 42
}

display {
  dealer_delay_ms = 250
  no_color        = true
}

log {
  level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Game.StartingChips)
	assert.Equal(t, 25, cfg.Game.DefaultBet)
	assert.Equal(t, "up", cfg.Game.Rounding)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.DealerDelay())
	assert.True(t, cfg.Display.NoColor)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	// unset values fall back to defaults
	assert.Equal(t, "blackjack.log", cfg.Log.File)
	assert.Equal(t, Default().Simulation, cfg.Simulation)
}

func TestDealerDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want time.Duration
	}{
		{"zero turns pacing off", `display { dealer_delay_ms = 0 }`, 0},
		{"unset attribute uses default", `display { no_color = true }`, time.Second},
		{"missing block uses default", ``, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.DealerDelay())
		})
	}
}

func TestGameOptions(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`game {
  starting_chips = 200
}`), "inline.hcl")
	require.NoError(t, err)

	g := game.NewGame(cfg.GameOptions()...)
	assert.Equal(t, 200, g.Balance())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `game {`},
		{"unknown attribute", `game { colour = "red" }`},
		{"negative chips", `game { starting_chips = -1 }`},
		{"bet above chips", `game {
  starting_chips = 10
  default_bet = 20
}`},
		{"bad rounding", `game { rounding = "sideways" }`},
		{"bad log level", `log { level = "loud" }`},
		{"negative delay", `display { dealer_delay_ms = -5 }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}
