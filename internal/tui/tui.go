// Package tui is the interactive Bubble Tea table. The model is the game's
// display: notifications are queued by a display.Paced so the dealer's cards
// appear one at a time, and released on tea.Tick.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

const sidebarWidth = 24

// Options configures a Model
type Options struct {
	Clock       quartz.Clock
	DealerDelay time.Duration
	DefaultBet  int
	Logger      *log.Logger
	Styles      *display.Styles
}

// frameMsg asks the model to release paced frames that are now due
type frameMsg struct{}

// Model is the Bubble Tea model for a blackjack session
type Model struct {
	game   *game.Game
	paced  *display.Paced
	clock  quartz.Clock
	styles display.Styles
	logger *log.Logger

	logViewport viewport.Model
	betInput    textinput.Model

	gameLog    []string
	table      game.StateChange
	settlement *game.Settlement
	lastError  string
	defaultBet int

	width       int
	height      int
	initialized bool
	quitting    bool
	ticking     bool
}

// New creates a model and the game it drives. gameOpts are passed to
// game.NewGame; the model installs itself as the display.
func New(opts Options, gameOpts ...game.Option) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	styles := display.NewStylesWithRenderer(lipgloss.DefaultRenderer())
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "bet"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "Bet: "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Focus()

	m := &Model{
		clock:       opts.Clock,
		styles:      styles,
		logger:      opts.Logger.WithPrefix("tui"),
		logViewport: vp,
		betInput:    ti,
		defaultBet:  opts.DefaultBet,
	}
	m.paced = display.NewPaced(m.sink(), opts.Clock, opts.DealerDelay)

	gameOpts = append(gameOpts,
		game.WithDisplay(display.Multi{m.paced, display.NewLog(opts.Logger)}),
		game.WithLogger(opts.Logger))
	m.game = game.NewGame(gameOpts...)

	st := m.game.State()
	m.table = game.StateChange{Phase: st.Phase, ChipBalance: st.ChipBalance}
	m.addLogEntry(fmt.Sprintf("Welcome! You have %d chips. Place your bet.", st.ChipBalance))
	return m
}

// Game returns the game the model drives
func (m *Model) Game() *game.Game {
	return m.game
}

// Table returns the most recently displayed state
func (m *Model) Table() game.StateChange {
	return m.table
}

// Log returns the lines written to the table log
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Dealing reports whether paced frames are still waiting to be shown
func (m *Model) Dealing() bool {
	return m.paced.Pending() > 0
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case frameMsg:
		m.ticking = false
		return m, m.drain()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "pgup", "up":
			m.logViewport.HalfPageUp()
			return m, nil
		case "pgdown", "down":
			m.logViewport.HalfPageDown()
			return m, nil
		}

		// Input waits until the dealer has finished showing cards
		if m.Dealing() {
			return m, nil
		}

		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		if !isBetKey(msg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	phase := m.game.Phase()
	switch msg.String() {
	case "enter":
		if !phase.AcceptsBet() {
			return nil, true
		}
		return m.placeBet(), true
	case "h":
		return m.act(m.game.Hit), true
	case "s":
		return m.act(m.game.Stand), true
	case "r":
		m.game.Reset()
		m.settlement = nil
		m.betInput.SetValue("")
		return m.drain(), true
	}
	return nil, false
}

func (m *Model) placeBet() tea.Cmd {
	input := strings.TrimSpace(m.betInput.Value())
	amount := m.defaultBet
	if input != "" {
		var err error
		if amount, err = game.ParseBet(input); err != nil {
			m.showError(err)
			return nil
		}
	} else if amount <= 0 {
		m.showError(fmt.Errorf("%w: enter an amount", game.ErrInvalidBet))
		return nil
	}
	m.betInput.SetValue("")
	m.settlement = nil
	return m.act(func() error { return m.game.PlaceBet(amount) })
}

func (m *Model) act(fn func() error) tea.Cmd {
	m.lastError = ""
	if err := fn(); err != nil {
		m.showError(err)
	}
	return m.drain()
}

func (m *Model) showError(err error) {
	m.lastError = err.Error()
	m.addLogEntry(m.styles.Error.Render("✗ " + err.Error()))
}

// drain shows every frame that is due and schedules a tick for the next one
func (m *Model) drain() tea.Cmd {
	if m.paced.Ready() == 0 || m.ticking {
		return nil
	}
	due, _ := m.paced.NextDue()
	m.ticking = true
	return tea.Tick(due.Sub(m.clock.Now()), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func isBetKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func (m *Model) addLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// sink receives frames released by the pacer
func (m *Model) sink() game.Display {
	return game.DisplayFuncs{
		StateChanged: func(sc game.StateChange) {
			m.table = sc
			if sc.Message != "" {
				m.addLogEntry(sc.Message)
			}
		},
		RoundSettled: func(s game.Settlement) {
			m.settlement = &s
			m.addLogEntry(m.outcomeStyle(s.Outcome).Render(
				fmt.Sprintf("%s: you %d, dealer %d, balance %d",
					strings.ReplaceAll(string(s.Outcome), "_", " "), s.PlayerScore, s.DealerScore, s.NewBalance)))
		},
	}
}

func (m *Model) outcomeStyle(o game.Outcome) lipgloss.Style {
	switch {
	case o.PlayerWon():
		return m.styles.Win
	case o == game.Push:
		return m.styles.Push
	default:
		return m.styles.Loss
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := ActivePaneStyle.
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	paneHeight := max(m.height-actionHeight-4, 1)
	sidebarPane := PaneStyle.
		Width(sidebarWidth).
		Height(paneHeight).
		Render(m.renderSidebarPane())

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logPane := PaneStyle.
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, actionPane)
}

func (m *Model) renderSidebarPane() string {
	var b strings.Builder
	st := m.game.State()

	b.WriteString(HeaderStyle.Render("Blackjack"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Chips.Render(fmt.Sprintf("Chips: %d", m.table.ChipBalance)))
	b.WriteString("\n")
	if m.table.Bet > 0 {
		b.WriteString(m.styles.Chips.Render(fmt.Sprintf("Bet:   %d", m.table.Bet)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s %d\n", m.styles.Label.Render("Round:"), st.Round)
	if st.CardsRemaining > 0 {
		fmt.Fprintf(&b, "%s %d\n", m.styles.Label.Render("Deck: "), st.CardsRemaining)
	}
	id := st.SessionID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	fmt.Fprintf(&b, "%s %s\n", m.styles.Label.Render("Session:"), HelpStyle.Render(id))
	return b.String()
}

func (m *Model) renderActionPane() string {
	var b strings.Builder
	t := m.table

	if len(t.DealerHand) > 0 {
		fmt.Fprintf(&b, "%s %s %s\n",
			m.styles.Label.Render("Dealer:"),
			m.styles.Hand(t.DealerHand, t.DealerHidden),
			m.styles.Score.Render(fmt.Sprintf("(%d)", t.DealerVisibleScore)))
		fmt.Fprintf(&b, "%s    %s %s\n",
			m.styles.Label.Render("You:"),
			m.styles.Hand(t.PlayerHand, 0),
			m.styles.Score.Render(fmt.Sprintf("(%d)", t.PlayerScore)))
	}
	if t.Message != "" {
		b.WriteString(m.styles.Message.Render(t.Message))
		b.WriteString("\n")
	}
	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render("✗ " + m.lastError))
		b.WriteString("\n")
	}

	switch {
	case m.Dealing():
		b.WriteString(DealingStyle.Render("Dealer is playing..."))
	case t.Phase == game.PlayerTurn:
		b.WriteString(HelpStyle.Render("h hit • s stand • r reset • q quit"))
	case m.settlement != nil && m.settlement.OutOfChips:
		b.WriteString(HelpStyle.Render("r reset • q quit"))
	default:
		b.WriteString(m.betInput.View())
		b.WriteString("\n")
		help := "type an amount, enter to deal • r reset • q quit"
		if m.defaultBet > 0 {
			help = fmt.Sprintf("type an amount, enter to deal (default %d) • r reset • q quit", m.defaultBet)
		}
		b.WriteString(HelpStyle.Render(help))
	}
	return b.String()
}
