package probability

import (
	"math"

	"crinkbot/internal/domain"
)

const (
	// DomainMultiple is how many multiples of the odds denominator the curve spans.
	DomainMultiple = 5
	// MaxOdds bounds the odds denominator a request may ask for.
	MaxOdds = 1_000_000
	// MaxTrials bounds the attempt count a request may ask for.
	MaxTrials = 100_000_000
)

// ceiling is the largest float64 below 1; Evaluate never returns more.
var ceiling = math.Nextafter(1, 0)

// Request is a single drop-chance question: Trials attempts at 1/Odds.
type Request struct {
	Trials int `json:"trials"`
	Odds   int `json:"odds"`
}

// Validate checks Trials >= 1 and 2 <= Odds, both within their bounds.
func (r Request) Validate() error {
	if r.Trials < 1 {
		return domain.NewError(domain.CodeInvalidArgument, "trials must be at least 1, got %d", r.Trials)
	}
	if r.Odds < 2 {
		return domain.NewError(domain.CodeInvalidArgument, "odds must be at least 2, got %d", r.Odds)
	}
	if r.Trials > MaxTrials {
		return domain.NewError(domain.CodeInvalidArgument, "trials must be at most %d, got %d", MaxTrials, r.Trials)
	}
	if r.Odds > MaxOdds {
		return domain.NewError(domain.CodeInvalidArgument, "odds must be at most %d, got %d", MaxOdds, r.Odds)
	}
	return nil
}

// Sample is one point of the cumulative curve.
type Sample struct {
	Attempt     int     `json:"attempt"`
	Probability float64 `json:"probability"`
}

// Evaluate returns the chance of at least one success in attempt tries at
// 1/odds each. The result lies in [0, 1).
func Evaluate(attempt, odds int) (float64, error) {
	if attempt <= 0 {
		return 0, domain.NewError(domain.CodeInvalidArgument, "attempt must be positive, got %d", attempt)
	}
	if odds <= 1 {
		return 0, domain.NewError(domain.CodeInvalidArgument, "odds must be greater than 1, got %d", odds)
	}
	// 1-(1-q)^n == -expm1(n*log1p(-q)), without cancellation for small q.
	p := -math.Expm1(float64(attempt) * math.Log1p(-1/float64(odds)))
	return math.Min(p, ceiling), nil
}

// Domain returns the inclusive attempt range the curve is drawn over.
func Domain(req Request) (lo, hi int) {
	hi = req.Odds * DomainMultiple
	if req.Trials > hi {
		hi = req.Trials
	}
	return 1, hi
}

// At evaluates the curve at the request's own trial count.
func At(req Request) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return Evaluate(req.Trials, req.Odds)
}

// Curve samples the curve over Domain(req) in ascending attempt order.
//
// When the domain holds more than maxPoints attempts the samples are spread
// evenly across it; the first and last attempt and req.Trials are always
// present. maxPoints <= 0 means every attempt.
func Curve(req Request, maxPoints int) ([]Sample, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	attempts := attemptsFor(req, maxPoints)
	out := make([]Sample, 0, len(attempts))
	for _, n := range attempts {
		p, err := Evaluate(n, req.Odds)
		if err != nil {
			return nil, err
		}
		out = append(out, Sample{Attempt: n, Probability: p})
	}
	return out, nil
}

func attemptsFor(req Request, maxPoints int) []int {
	lo, hi := Domain(req)
	span := hi - lo + 1
	if maxPoints <= 0 || span <= maxPoints {
		out := make([]int, 0, span)
		for n := lo; n <= hi; n++ {
			out = append(out, n)
		}
		return out
	}
	if maxPoints < 3 {
		maxPoints = 3
	}

	out := make([]int, 0, maxPoints+1)
	step := float64(hi-lo) / float64(maxPoints-1)
	inserted := false
	prev := 0
	for i := 0; i < maxPoints; i++ {
		n := lo + int(math.Round(float64(i)*step))
		if i == maxPoints-1 {
			n = hi
		}
		if !inserted && n >= req.Trials {
			if req.Trials > prev {
				out = append(out, req.Trials)
				prev = req.Trials
			}
			inserted = true
		}
		if n > prev {
			out = append(out, n)
			prev = n
		}
	}
	return out
}
