// Package statistics accumulates results of simulated blackjack rounds.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// RoundResult is the outcome of a single settled round
type RoundResult struct {
	Outcome  game.Outcome
	Bet      int
	Returned game.HalfChips // stake plus winnings, before rounding
	Credited int            // chips actually added to the balance
}

// Net returns the chips won (positive) or lost (negative) after rounding
func (r RoundResult) Net() int {
	return r.Credited - r.Bet
}

// Statistics tracks simulation results
type Statistics struct {
	Rounds   int
	SumNet   float64
	SumNet2  float64 // sum of squares for variance
	Values   []float64
	Wagered  int
	Credited int

	// Exact returns in half chips, to measure what rounding costs
	Returned game.HalfChips

	Outcomes map[game.Outcome]int
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{Outcomes: make(map[game.Outcome]int)}
}

// Add incorporates a round result
func (s *Statistics) Add(r RoundResult) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}
	net := float64(r.Net())
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += r.Bet
	s.Credited += r.Credited
	s.Returned += r.Returned
	s.Outcomes[r.Outcome]++
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wagered += other.Wagered
	s.Credited += other.Credited
	s.Returned += other.Returned
	for o, n := range other.Outcomes {
		s.Outcomes[o] += n
	}
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of net chips per round
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// OutcomeRate returns the share of rounds that ended with o
func (s *Statistics) OutcomeRate(o game.Outcome) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Outcomes[o]) / float64(s.Rounds)
}

// ReturnToPlayer is credited chips divided by chips wagered
func (s *Statistics) ReturnToPlayer() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Credited) / float64(s.Wagered)
}

// RoundingLoss is the chips kept by the rounding policy
func (s *Statistics) RoundingLoss() game.HalfChips {
	return s.Returned - game.Chips(s.Credited)
}

// Validate checks the ledger is consistent
func (s *Statistics) Validate() error {
	total := 0
	for _, n := range s.Outcomes {
		total += n
	}
	if total != s.Rounds {
		return fmt.Errorf("outcome counts %d do not match rounds %d", total, s.Rounds)
	}
	if net := s.Credited - s.Wagered; math.Abs(float64(net)-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: credited-wagered=%d, sum of net=%.2f", net, s.SumNet)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("recorded %d values for %d rounds", len(s.Values), s.Rounds)
	}
	return nil
}
