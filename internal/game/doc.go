// Package game implements the blackjack round state machine.
//
// The main type is Game, which owns one session: the chip balance, the
// current bet, the deck for the round in progress and both hands. A round
// moves through Betting, PlayerTurn, DealerTurn and Settled:
//
//	g := game.NewGame(game.WithStartingChips(1000))
//	if err := g.PlaceBet(50); err != nil {
//	    // errors.Is(err, game.ErrInvalidBet) etc.
//	}
//	_ = g.Hit()
//	_ = g.Stand() // dealer plays, round settles
//
// # Deterministic Testing
//
// Randomness is injected. Pass a seeded RNG, or replace the deck entirely:
//
//	g := game.NewGame(game.WithRNG(randutil.New(42)))
//	g := game.NewGame(game.WithDeckSource(func() *blackjack.Deck {
//	    return blackjack.NewStackedDeck(blackjack.MustParseCards("As 9c Kh 7d")...)
//	}))
//
// # Display
//
// Presentation is an external collaborator. Every transition is reported
// to the Display passed with WithDisplay; the dealer's hole card stays
// hidden until the dealer's turn. Pacing (delays between dealer draws) is
// left entirely to the Display: the state machine itself runs each
// operation to completion synchronously.
//
// A Game is not safe for concurrent use. Run one Game per session.
package game
