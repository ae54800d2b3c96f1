package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(outcome game.Outcome, bet int) RoundResult {
	p := game.CalculatePayout(outcome, bet, false)
	return RoundResult{
		Outcome:  p.Outcome,
		Bet:      bet,
		Returned: p.Returned,
		Credited: game.RoundDown.Apply(p.Returned),
	}
}

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()
	s := New()
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.ReturnToPlayer())
	assert.Zero(t, s.OutcomeRate(game.Push))
	assert.NoError(t, s.Validate())
}

func TestAdd(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result(game.PlayerWin, 10))       // +10
	s.Add(result(game.DealerWin, 10))       // -10
	s.Add(result(game.Push, 10))            // 0
	s.Add(result(game.PlayerBlackjack, 11)) // returned 27.5, credited 27, +16

	assert.Equal(t, 4, s.Rounds)
	assert.InDelta(t, 16.0/4, s.Mean(), 1e-9)
	assert.Equal(t, 41, s.Wagered)
	assert.Equal(t, 20+0+10+27, s.Credited)
	assert.Equal(t, game.HalfChips(1), s.RoundingLoss())
	assert.InDelta(t, 0.25, s.OutcomeRate(game.Push), 1e-9)
	assert.InDelta(t, 57.0/41, s.ReturnToPlayer(), 1e-9)
	assert.Equal(t, 5.0, s.Median())
	require.NoError(t, s.Validate())

	// sample variance of {10, -10, 0, 16}
	mean := 4.0
	want := (math.Pow(10-mean, 2) + math.Pow(-10-mean, 2) + math.Pow(0-mean, 2) + math.Pow(16-mean, 2)) / 3
	assert.InDelta(t, want, s.Variance(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestMerge(t *testing.T) {
	t.Parallel()
	a, b := New(), New()
	a.Add(result(game.PlayerWin, 10))
	b.Add(result(game.DealerBust, 20))
	b.Add(result(game.PlayerBust, 20))

	a.Merge(b)
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 1, a.Outcomes[game.DealerBust])
	assert.Equal(t, 1, a.Outcomes[game.PlayerBust])
	assert.InDelta(t, 10.0/3, a.Mean(), 1e-9)
	require.NoError(t, a.Validate())
}

func TestPercentile(t *testing.T) {
	t.Parallel()
	s := New()
	for _, o := range []game.Outcome{game.DealerWin, game.Push, game.PlayerWin} {
		s.Add(result(o, 10))
	}
	assert.Equal(t, -10.0, s.Percentile(0))
	assert.Equal(t, 0.0, s.Percentile(0.5))
	assert.Equal(t, 10.0, s.Percentile(1))
	assert.Equal(t, -5.0, s.Percentile(0.25))
}

func TestValidateDetectsMismatch(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result(game.PlayerWin, 10))
	s.Outcomes[game.Push]++
	assert.Error(t, s.Validate())
}
