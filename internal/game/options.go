package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/sessionid"
)

// DefaultStartingChips is the balance of a new session
const DefaultStartingChips = 1000

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	rng           *rand.Rand
	deckSource    func() *blackjack.Deck
	display       Display
	logger        *log.Logger
	startingChips int
	rounding      Rounding
	sessionID     string
}

// WithRNG sets the random source used to shuffle each round's deck
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithDeckSource replaces deck creation. It is called once per round and
// must return a new deck each time. Overrides WithRNG.
func WithDeckSource(fn func() *blackjack.Deck) Option {
	return func(c *gameConfig) {
		c.deckSource = fn
	}
}

// WithDisplay sets the collaborator notified of state changes
func WithDisplay(d Display) Option {
	return func(c *gameConfig) {
		c.display = d
	}
}

// WithLogger sets the logger. Transitions are logged at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithStartingChips sets the balance restored by NewGame and Reset.
// Default is 1000.
func WithStartingChips(chips int) Option {
	return func(c *gameConfig) {
		c.startingChips = chips
	}
}

// WithRounding sets how half-chip payouts are credited. Default is RoundDown.
func WithRounding(r Rounding) Option {
	return func(c *gameConfig) {
		c.rounding = r
	}
}

// WithSessionID sets the session identifier used in logs
func WithSessionID(id string) Option {
	return func(c *gameConfig) {
		c.sessionID = id
	}
}

func newGameConfig(opts []Option) *gameConfig {
	cfg := &gameConfig{
		startingChips: DefaultStartingChips,
		rounding:      RoundDown,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.startingChips <= 0 {
		panic("starting chips must be positive")
	}
	if cfg.rng == nil {
		cfg.rng = randutil.New(time.Now().UnixNano())
	}
	if cfg.deckSource == nil {
		rng := cfg.rng
		cfg.deckSource = func() *blackjack.Deck { return blackjack.NewDeck(rng) }
	}
	if cfg.display == nil {
		cfg.display = NopDisplay{}
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.sessionID == "" {
		cfg.sessionID = sessionid.NewGenerator(cfg.rng).Generate()
	}
	return cfg
}
