package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = time.Second

func newTestModel(t *testing.T, layouts ...string) (*Model, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	styles := display.NewStyles(io.Discard, true)
	next := 0
	m := New(Options{
		Clock:       clock,
		DealerDelay: testDelay,
		DefaultBet:  10,
		Logger:      log.New(io.Discard),
		Styles:      &styles,
	},
		game.WithSessionID("tui-test"),
		game.WithDeckSource(func() *blackjack.Deck {
			require.Less(t, next, len(layouts), "unexpected deal")
			layout := layouts[next]
			next++
			return blackjack.NewStackedDeck(blackjack.MustParseCards(layout)...)
		}),
	)
	return m, clock
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func logContains(t *testing.T, m *Model, want string) {
	t.Helper()
	for _, line := range m.Log() {
		if strings.Contains(line, want) {
			return
		}
	}
	t.Errorf("log does not contain %q:\n%s", want, strings.Join(m.Log(), "\n"))
}

func TestTypedBetDealsRound(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, "10s 9c 7h 8d")

	press(m, "2", "5", "enter")

	assert.Equal(t, game.PlayerTurn, m.Game().Phase())
	assert.Equal(t, 25, m.Game().Bet())
	assert.Equal(t, 25, m.Table().Bet)
	assert.Equal(t, 1, m.Table().DealerHidden)
	logContains(t, m, "Bet of 25 placed. Good luck!")
}

func TestEnterUsesDefaultBet(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, "10s 9c 7h 8d")

	press(m, "enter")
	assert.Equal(t, 10, m.Game().Bet())
}

func TestLettersDoNotReachBetInput(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, "10s 9c 7h 8d")

	press(m, "x", "5", "enter")
	assert.Equal(t, 5, m.Game().Bet())
}

func TestRejectedBetIsShown(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	press(m, "5", "0", "0", "0", "enter")

	assert.Equal(t, game.Betting, m.Game().Phase())
	assert.Equal(t, 1000, m.Game().Balance())
	logContains(t, m, "✗ invalid bet: bet of 5000 exceeds balance of 1000")
}

func TestHitAndStandKeys(t *testing.T) {
	t.Parallel()
	// player 10♠ 7♥ then 4♣ = 21 on hit; dealer 9♣ 8♦ stands on 17
	m, _ := newTestModel(t, "10s 9c 7h 8d 4c")

	press(m, "enter")
	require.Equal(t, game.PlayerTurn, m.Game().Phase())

	cmd := press(m, "h")
	assert.Equal(t, game.Settled, m.Game().Phase(), "21 stands automatically")
	assert.NotNil(t, cmd, "dealer frames are paced")
	assert.True(t, m.Dealing())
}

func TestHitWhileBettingIsRejected(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	press(m, "h")
	logContains(t, m, "✗ invalid action")
	assert.Equal(t, game.Betting, m.Game().Phase())
}

func TestDealerFramesDrainInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	// player 10♠ 8♥ stands on 18; dealer 6♣ 5♦ draws K♣ to 21
	m, clock := newTestModel(t, "10s 6c 8h 5d Kc")

	press(m, "enter")
	cmd := press(m, "s")
	require.NotNil(t, cmd)

	// The reveal is shown at once, the rest waits
	assert.Equal(t, game.DealerTurn, m.Table().Phase)
	assert.Zero(t, m.Table().DealerHidden)
	assert.Len(t, m.Table().DealerHand, 2)
	assert.True(t, m.Dealing())

	// Keys are ignored while the dealer plays
	press(m, "r")
	assert.Equal(t, game.Settled, m.Game().Phase())

	clock.Advance(testDelay).MustWait(ctx)
	m.Update(frameMsg{})
	assert.Equal(t, game.DealerTurn, m.Table().Phase)
	assert.Len(t, m.Table().DealerHand, 3)

	for m.Dealing() {
		clock.Advance(testDelay).MustWait(ctx)
		m.Update(frameMsg{})
	}
	assert.Equal(t, game.Settled, m.Table().Phase)
	assert.Equal(t, 950, m.Table().ChipBalance)
	logContains(t, m, "Dealer reveals the hole card")
	logContains(t, m, "dealer win: you 18, dealer 21, balance 950")
}

func TestResetKey(t *testing.T) {
	t.Parallel()
	// player busts: 10♠ 6♥ + K♣
	m, _ := newTestModel(t, "10s 9c 6h 8d Kc")

	press(m, "enter", "h")
	require.Equal(t, game.Settled, m.Game().Phase())
	assert.Equal(t, 990, m.Game().Balance())

	press(m, "r")
	assert.Equal(t, game.Betting, m.Game().Phase())
	assert.Equal(t, 1000, m.Table().ChipBalance)
	logContains(t, m, "Welcome! Place your bet.")
}

func TestQuit(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t, "10s 9c 7h 8d")

	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	press(m, "enter")

	view := m.View()
	assert.Contains(t, view, "Chips: 990")
	assert.Contains(t, view, "[??]")
	assert.Contains(t, view, "h hit • s stand")
	assert.NotContains(t, view, "8♦")
}
