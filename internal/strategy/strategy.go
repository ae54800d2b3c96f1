// Package strategy provides automated player policies for headless play.
package strategy

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/game"
)

// Strategy decides whether the player takes another card
type Strategy interface {
	Name() string
	ShouldHit(player blackjack.Hand, dealerUp blackjack.Card) bool
}

// StandOn hits until the hand reaches Threshold
type StandOn struct {
	Threshold int
}

func (s StandOn) Name() string { return "stand-on-" + strconv.Itoa(s.Threshold) }

func (s StandOn) ShouldHit(player blackjack.Hand, _ blackjack.Card) bool {
	return player.Score() < s.Threshold
}

// MimicDealer plays the dealer's own rule
type MimicDealer struct{}

func (MimicDealer) Name() string { return "mimic-dealer" }

func (MimicDealer) ShouldHit(player blackjack.Hand, _ blackjack.Card) bool {
	return game.DealerShouldHit(player)
}

// NeverBust only hits when no single card can bust the hand
type NeverBust struct{}

func (NeverBust) Name() string { return "never-bust" }

func (NeverBust) ShouldHit(player blackjack.Hand, _ blackjack.Card) bool {
	return player.Score() <= 11 || (player.IsSoft() && player.Score() < 18)
}

// Basic is hit/stand basic strategy for a game without doubles or splits
type Basic struct{}

func (Basic) Name() string { return "basic" }

func (Basic) ShouldHit(player blackjack.Hand, dealerUp blackjack.Card) bool {
	total := player.Score()
	up := dealerUp.Value()

	if player.IsSoft() {
		switch {
		case total <= 17:
			return true
		case total == 18:
			return up >= 9
		default:
			return false
		}
	}

	switch {
	case total <= 11:
		return true
	case total == 12:
		return up < 4 || up > 6
	case total <= 16:
		return up > 6
	default:
		return false
	}
}

// Random hits or stands with equal probability
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ShouldHit(player blackjack.Hand, _ blackjack.Card) bool {
	if player.Score() >= blackjack.Blackjack {
		return false
	}
	return r.rng.IntN(2) == 0
}

var named = map[string]func(rng *rand.Rand) Strategy{
	"mimic-dealer": func(*rand.Rand) Strategy { return MimicDealer{} },
	"never-bust":   func(*rand.Rand) Strategy { return NeverBust{} },
	"basic":        func(*rand.Rand) Strategy { return Basic{} },
	"random":       func(rng *rand.Rand) Strategy { return NewRandom(rng) },
}

// Names lists the accepted strategy names
func Names() []string {
	names := make([]string, 0, len(named)+1)
	for name := range named {
		names = append(names, name)
	}
	names = append(names, "stand-on-N")
	sort.Strings(names)
	return names
}

// Parse returns the strategy for name. rng is only used by "random".
func Parse(name string, rng *rand.Rand) (Strategy, error) {
	if ctor, ok := named[name]; ok {
		return ctor(rng), nil
	}
	if rest, ok := strings.CutPrefix(name, "stand-on-"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > blackjack.Blackjack {
			return nil, fmt.Errorf("invalid stand-on threshold %q (want 2-21)", rest)
		}
		return StandOn{Threshold: n}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
}

// PlayRound plays the player's turn on g until the round leaves PlayerTurn
func PlayRound(g *game.Game, s Strategy) error {
	for g.Phase() == game.PlayerTurn {
		st := g.State()
		var err error
		if s.ShouldHit(st.PlayerHand, st.DealerHand[0]) {
			err = g.Hit()
		} else {
			err = g.Stand()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
