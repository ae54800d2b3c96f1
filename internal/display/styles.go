package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/blackjack"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used to render the table
type Styles struct {
	Title     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Label     lipgloss.Style
	Score     lipgloss.Style
	Chips     lipgloss.Style
	Message   lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. noColor forces plain
// ASCII output regardless of what the terminal supports.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return NewStylesWithRenderer(r)
}

// NewStylesWithRenderer builds styles bound to r
func NewStylesWithRenderer(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 1).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Chips: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Message: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Italic(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

// Card renders a face-up card as [A♠], red suits in red
func (s Styles) Card(c blackjack.Card) string {
	text := "[" + c.String() + "]"
	if c.IsRed() {
		return s.RedCard.Render(text)
	}
	return s.BlackCard.Render(text)
}

// Hand renders face-up cards followed by hidden face-down ones
func (s Styles) Hand(cards blackjack.Hand, hidden int) string {
	var out string
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += s.Card(c)
	}
	for i := 0; i < hidden; i++ {
		if out != "" {
			out += " "
		}
		out += s.Hidden.Render("[??]")
	}
	return out
}
