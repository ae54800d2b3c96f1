package simulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

// Report is the result of a simulation run. It is written as JSON with
// fileutil.WriteJSONAtomic.
type Report struct {
	Strategy      string          `json:"strategy"`
	Seed          int64           `json:"seed"`
	Bet           int             `json:"bet"`
	StartingChips int             `json:"starting_chips"`
	Rounding      string          `json:"rounding"`
	Summary       Summary         `json:"summary"`
	Sessions      []SessionResult `json:"sessions"`

	stats *statistics.Statistics
}

// Summary holds the aggregate figures of a run, in chips per round
type Summary struct {
	Rounds         int                  `json:"rounds"`
	Wagered        int                  `json:"wagered"`
	Credited       int                  `json:"credited"`
	Mean           float64              `json:"mean"`
	Median         float64              `json:"median"`
	StdDev         float64              `json:"std_dev"`
	StdError       float64              `json:"std_error"`
	CI95           [2]float64           `json:"ci95"`
	ReturnToPlayer float64              `json:"return_to_player"`
	RoundingLoss   string               `json:"rounding_loss"`
	BustedSessions int                  `json:"busted_sessions"`
	Outcomes       map[game.Outcome]int `json:"outcomes"`
}

func newReport(c Config, sessions []SessionResult, stats *statistics.Statistics) *Report {
	lo, hi := stats.ConfidenceInterval95()
	busted := 0
	for _, s := range sessions {
		if s.OutOfChips {
			busted++
		}
	}
	return &Report{
		Strategy:      c.Strategy,
		Seed:          c.Seed,
		Bet:           c.Bet,
		StartingChips: c.StartingChips,
		Rounding:      c.Rounding.String(),
		Sessions:      sessions,
		stats:         stats,
		Summary: Summary{
			Rounds:         stats.Rounds,
			Wagered:        stats.Wagered,
			Credited:       stats.Credited,
			Mean:           stats.Mean(),
			Median:         stats.Median(),
			StdDev:         stats.StdDev(),
			StdError:       stats.StdError(),
			CI95:           [2]float64{lo, hi},
			ReturnToPlayer: stats.ReturnToPlayer(),
			RoundingLoss:   stats.RoundingLoss().String(),
			BustedSessions: busted,
			Outcomes:       stats.Outcomes,
		},
	}
}

// Statistics returns the merged round statistics
func (r *Report) Statistics() *statistics.Statistics {
	return r.stats
}

// PrintSummary writes a human readable summary of the run to w
func (r *Report) PrintSummary(w io.Writer) {
	s := r.Summary
	stats := r.stats

	fmt.Fprintf(w, "\n=== RESULTS: %s, %d sessions ===\n", r.Strategy, len(r.Sessions))
	fmt.Fprintf(w, "Rounds played: %d\n", s.Rounds)
	fmt.Fprintf(w, "Busted sessions: %d\n", s.BustedSessions)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %.4f chips/round\n", s.Mean)
	fmt.Fprintf(w, "Median: %.4f chips/round\n", s.Median)
	fmt.Fprintf(w, "Std Dev: %.4f chips\n", s.StdDev)
	fmt.Fprintf(w, "Std Error: %.4f chips\n", s.StdError)
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] chips/round\n", s.CI95[0], s.CI95[1])
	if stats != nil {
		fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
			stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	}
	fmt.Fprintf(w, "Return to player: %.2f%% (rounding kept %s chips)\n", s.ReturnToPlayer*100, s.RoundingLoss)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	for _, o := range game.Outcomes {
		n := s.Outcomes[o]
		pct := 0.0
		if s.Rounds > 0 {
			pct = float64(n) / float64(s.Rounds) * 100
		}
		fmt.Fprintf(w, "%-18s %7d  %5.1f%%\n", strings.ReplaceAll(string(o), "_", " "), n, pct)
	}
}
