package probability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crinkbot/internal/domain"
	"crinkbot/internal/probability"
)

func TestEvaluate_KnownValue(t *testing.T) {
	p, err := probability.Evaluate(100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.634, p, 1e-3)

	p, err = probability.Evaluate(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestEvaluate_RangeAndMonotonic(t *testing.T) {
	for _, odds := range []int{2, 3, 10, 128, 5000} {
		prev := -1.0
		for n := 1; n <= odds*5; n++ {
			p, err := probability.Evaluate(n, odds)
			require.NoError(t, err)
			require.GreaterOrEqual(t, p, 0.0)
			require.Less(t, p, 1.0)
			if odds < 50 && n > 40 {
				// small odds saturate float64 quickly; range still holds
				continue
			}
			require.Greater(t, p, prev, "odds=%d n=%d", odds, n)
			prev = p
		}
	}
}

func TestEvaluate_StaysBelowOne(t *testing.T) {
	p, err := probability.Evaluate(100_000, 2)
	require.NoError(t, err)
	assert.Less(t, p, 1.0)
}

func TestEvaluate_InvalidArgument(t *testing.T) {
	cases := []struct {
		name    string
		attempt int
		odds    int
	}{
		{"zero attempt", 0, 10},
		{"negative attempt", -3, 10},
		{"odds one", 5, 1},
		{"odds zero", 5, 0},
		{"odds negative", 5, -7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := probability.Evaluate(tc.attempt, tc.odds)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	require.NoError(t, probability.Request{Trials: 1, Odds: 2}.Validate())
	require.ErrorIs(t, probability.Request{Trials: 0, Odds: 2}.Validate(), domain.ErrInvalidArgument)
	require.ErrorIs(t, probability.Request{Trials: 1, Odds: 1}.Validate(), domain.ErrInvalidArgument)
	require.ErrorIs(t, probability.Request{Trials: 1, Odds: probability.MaxOdds + 1}.Validate(), domain.ErrInvalidArgument)
	require.ErrorIs(t, probability.Request{Trials: probability.MaxTrials + 1, Odds: 2}.Validate(), domain.ErrInvalidArgument)
}

func TestDomain_ExtendsToTrials(t *testing.T) {
	lo, hi := probability.Domain(probability.Request{Trials: 50, Odds: 100})
	assert.Equal(t, 1, lo)
	assert.Equal(t, 500, hi)

	_, hi = probability.Domain(probability.Request{Trials: 900, Odds: 100})
	assert.Equal(t, 900, hi)
}

func TestCurve_FullDomain(t *testing.T) {
	samples, err := probability.Curve(probability.Request{Trials: 50, Odds: 100}, 0)
	require.NoError(t, err)
	require.Len(t, samples, 500)
	assert.Equal(t, 1, samples[0].Attempt)
	assert.Equal(t, 500, samples[len(samples)-1].Attempt)
	assert.Equal(t, 50, samples[49].Attempt)
}

func TestCurve_DownsampledKeepsTrials(t *testing.T) {
	req := probability.Request{Trials: 12_345, Odds: 100_000}
	samples, err := probability.Curve(req, 200)
	require.NoError(t, err)
	require.LessOrEqual(t, len(samples), 201)

	assert.Equal(t, 1, samples[0].Attempt)
	assert.Equal(t, 500_000, samples[len(samples)-1].Attempt)

	found := false
	for i, s := range samples {
		if s.Attempt == req.Trials {
			found = true
		}
		if i > 0 {
			require.Greater(t, s.Attempt, samples[i-1].Attempt)
			require.Greater(t, s.Probability, samples[i-1].Probability)
		}
	}
	assert.True(t, found, "trials must be sampled")
}

func TestCurve_InvalidRequest(t *testing.T) {
	_, err := probability.Curve(probability.Request{Trials: 10, Odds: 1}, 0)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAt(t *testing.T) {
	p, err := probability.At(probability.Request{Trials: 100, Odds: 100})
	require.NoError(t, err)
	assert.InDelta(t, 0.634, p, 1e-3)
}
