package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/blackjack"
)

// Game is one player's blackjack session against the dealer
type Game struct {
	id            string
	logger        *log.Logger
	display       Display
	newDeck       func() *blackjack.Deck
	rounding      Rounding
	startingChips int

	phase   Phase
	balance int
	bet     int
	round   int
	deck    *blackjack.Deck
	player  blackjack.Hand
	dealer  blackjack.Hand
	settled *Settlement
}

// RoundState is a snapshot of a Game. Hands are copies.
type RoundState struct {
	SessionID      string
	Round          int
	Phase          Phase
	ChipBalance    int
	CurrentBet     int
	PlayerHand     blackjack.Hand
	DealerHand     blackjack.Hand
	CardsRemaining int
	LastSettlement *Settlement
}

// NewGame creates a session in the Betting phase with the starting balance
func NewGame(opts ...Option) *Game {
	cfg := newGameConfig(opts)
	g := &Game{
		id:            cfg.sessionID,
		logger:        cfg.logger.WithPrefix("game").With("session", cfg.sessionID),
		display:       cfg.display,
		newDeck:       cfg.deckSource,
		rounding:      cfg.rounding,
		startingChips: cfg.startingChips,
	}
	g.reset()
	return g
}

// Reset starts the session over with the starting balance. It is the only
// way to continue once the balance reaches zero.
func (g *Game) Reset() {
	g.reset()
	g.logger.Info("Session reset", "balance", g.balance)
	g.notify("Welcome! Place your bet.")
}

func (g *Game) reset() {
	g.phase = Betting
	g.balance = g.startingChips
	g.bet = 0
	g.round = 0
	g.deck = nil
	g.player = nil
	g.dealer = nil
	g.settled = nil
}

// SessionID returns the identifier used in logs
func (g *Game) SessionID() string { return g.id }

// Phase returns the current phase
func (g *Game) Phase() Phase { return g.phase }

// Balance returns the chips not at stake
func (g *Game) Balance() int { return g.balance }

// Bet returns the stake of the round in progress, zero once settled
func (g *Game) Bet() int { return g.bet }

// State returns a snapshot of the session
func (g *Game) State() RoundState {
	st := RoundState{
		SessionID:   g.id,
		Round:       g.round,
		Phase:       g.phase,
		ChipBalance: g.balance,
		CurrentBet:  g.bet,
		PlayerHand:  g.player.Clone(),
		DealerHand:  g.dealer.Clone(),
	}
	if g.deck != nil {
		st.CardsRemaining = g.deck.Remaining()
	}
	if g.settled != nil {
		s := *g.settled
		st.LastSettlement = &s
	}
	return st
}

// PlaceBet stakes amount and deals a new round from a fresh deck. A natural
// 21 stands automatically and the round settles before PlaceBet returns.
func (g *Game) PlaceBet(amount int) error {
	if !g.phase.AcceptsBet() {
		return invalidAction("place a bet", g.phase)
	}
	if g.balance <= 0 {
		return fmt.Errorf("%w: balance is 0, reset to play again", ErrOutOfChips)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: bet must be a positive number, got %d", ErrInvalidBet, amount)
	}
	if amount > g.balance {
		return fmt.Errorf("%w: bet of %d exceeds balance of %d", ErrInvalidBet, amount, g.balance)
	}

	deck := g.newDeck()
	var player, dealer blackjack.Hand
	for range 2 {
		for _, hand := range []*blackjack.Hand{&player, &dealer} {
			card, err := deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing new round: %w", err)
			}
			*hand = append(*hand, card)
		}
	}

	var drawn blackjack.Hand
	if player.IsNatural() {
		var err error
		if drawn, err = dealerDraws(deck, dealer); err != nil {
			g.logger.Error("Dealer could not draw", "error", err)
			return fmt.Errorf("dealer hit: %w", err)
		}
	}

	g.balance -= amount
	g.bet = amount
	g.round++
	g.deck = deck
	g.player = player
	g.dealer = dealer
	g.settled = nil
	g.phase = PlayerTurn

	g.logger.Debug("Round dealt",
		"round", g.round,
		"bet", amount,
		"balance", g.balance,
		"player", player.String(),
		"dealer", dealer.String())

	if player.IsNatural() {
		g.notify("BLACKJACK! Dealer's turn...")
		g.playDealer(drawn)
		return nil
	}
	g.notify(fmt.Sprintf("Bet of %d placed. Good luck!", amount))
	return nil
}

// Hit draws a card for the player. Busting settles the round; reaching 21
// stands automatically.
func (g *Game) Hit() error {
	if g.phase != PlayerTurn {
		return invalidAction("hit", g.phase)
	}

	deck := g.deck.Clone()
	card, err := deck.Draw()
	if err != nil {
		return fmt.Errorf("player hit: %w", err)
	}
	player := append(g.player.Clone(), card)
	score := player.Score()

	var drawn blackjack.Hand
	if score == blackjack.Blackjack {
		if drawn, err = dealerDraws(deck, g.dealer); err != nil {
			g.logger.Error("Dealer could not draw", "error", err)
			return fmt.Errorf("dealer hit: %w", err)
		}
	}

	g.deck = deck
	g.player = player
	g.logger.Debug("Player hit", "card", card.String(), "score", score)

	switch {
	case score > blackjack.Blackjack:
		g.settle(PlayerBust)
	case score == blackjack.Blackjack:
		g.notify("21! Dealer's turn...")
		g.playDealer(drawn)
	default:
		g.notify(fmt.Sprintf("You draw %s.", card))
	}
	return nil
}

// Stand ends the player's turn; the dealer plays out and the round settles.
func (g *Game) Stand() error {
	if g.phase != PlayerTurn {
		return invalidAction("stand", g.phase)
	}
	drawn, err := dealerDraws(g.deck, g.dealer)
	if err != nil {
		g.logger.Error("Dealer could not draw", "error", err)
		return fmt.Errorf("dealer hit: %w", err)
	}
	g.logger.Debug("Player stands", "score", g.player.Score())
	g.playDealer(drawn)
	return nil
}

// dealerDraws plays the dealer's hand out and returns the cards drawn. The
// draws consume deck only when all of them succeed, so a deck that runs out
// leaves the round as it was.
func dealerDraws(deck *blackjack.Deck, dealer blackjack.Hand) (blackjack.Hand, error) {
	trial := deck.Clone()
	hand := dealer.Clone()
	var drawn blackjack.Hand
	for DealerShouldHit(hand) {
		card, err := trial.Draw()
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
		drawn = append(drawn, card)
	}
	for range drawn {
		if _, err := deck.Draw(); err != nil {
			return nil, err
		}
	}
	return drawn, nil
}

// playDealer reveals the hole card, shows the dealer's drawn cards one at a
// time and settles the round.
func (g *Game) playDealer(drawn blackjack.Hand) {
	g.phase = DealerTurn
	g.notify("Dealer reveals the hole card...")

	for _, card := range drawn {
		score := g.dealer.Score()
		g.dealer = append(g.dealer, card)
		g.logger.Debug("Dealer hit", "card", card.String(), "score", g.dealer.Score())
		g.notify(fmt.Sprintf("Dealer hits on %d...", score))
	}

	score := g.dealer.Score()
	if score > blackjack.Blackjack {
		g.notify(fmt.Sprintf("Dealer busts with %d.", score))
	} else {
		g.notify(fmt.Sprintf("Dealer stands on %d.", score))
	}

	g.settle(DetermineOutcome(g.player, g.dealer))
}

func (g *Game) settle(outcome Outcome) {
	payout := CalculatePayout(outcome, g.bet, g.player.IsNatural())
	credited := g.rounding.Apply(payout.Returned)
	g.balance += credited

	s := Settlement{
		Outcome:     payout.Outcome,
		Payout:      payout,
		Credited:    credited,
		NewBalance:  g.balance,
		PlayerScore: g.player.Score(),
		DealerScore: g.dealer.Score(),
		OutOfChips:  g.balance == 0,
	}
	g.bet = 0
	g.phase = Settled
	g.settled = &s

	g.logger.Info("Round settled",
		"round", g.round,
		"outcome", s.Outcome,
		"returned", payout.Returned.String(),
		"credited", credited,
		"balance", g.balance)

	g.notify(s.Message())
	g.display.OnRoundSettled(s)
}

func (g *Game) notify(message string) {
	sc := StateChange{
		Phase:       g.phase,
		PlayerHand:  g.player.Clone(),
		PlayerScore: g.player.Score(),
		ChipBalance: g.balance,
		Bet:         g.bet,
		Message:     message,
	}

	switch {
	case len(g.dealer) == 0:
	case g.phase.DealerRevealed():
		sc.DealerHand = g.dealer.Clone()
		sc.DealerVisibleScore = g.dealer.Score()
	default:
		sc.DealerHand = g.dealer[:1].Clone()
		sc.DealerHidden = len(g.dealer) - 1
		sc.DealerVisibleScore = blackjack.VisibleScore(g.dealer[0])
	}

	g.display.OnStateChanged(sc)
}
