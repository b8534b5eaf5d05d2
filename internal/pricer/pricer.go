// Package pricer runs the Monte-Carlo loop coupling a stochastic process
// with a path-dependent contract recorder.
package pricer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"option-pricing-lab/internal/contract"
	"option-pricing-lab/internal/curve"
	"option-pricing-lab/internal/process"
	"option-pricing-lab/internal/random"
)

// Pricer errors
var (
	ErrNoPaths = errors.New("number of paths must be positive")
)

// Result holds the output of one pricing run.
type Result struct {
	RunID         string  `json:"run_id"`
	Price         float64 `json:"price"`
	StandardError float64 `json:"standard_error"`
	Discount      float64 `json:"discount"`
	Paths         int     `json:"paths"`
}

// Price runs the sequential Monte-Carlo loop.
// Steps per path:
//  1. Reset process and recorder
//  2. Walk the fixing schedule in ascending order, one normal draw per time
//  3. Feed each simulated fixing to the recorder
//  4. Collect the payoff once the path is exhausted
//
// The mean payoff is discounted at the recorder's expiry. Any recorder or
// process error aborts the whole run; a completed schedule leaves the
// recorder expired, so a state error here is an internal consistency bug,
// not a user-facing condition. Cancellation is checked between paths.
func Price(ctx context.Context, proc *process.Process, rec *contract.Recorder, disc curve.Discounter, src random.Source, paths int) (*Result, error) {
	if paths <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoPaths, paths)
	}

	times := rec.Times()
	payoffs := make([]float64, 0, paths)

	for i := 0; i < paths; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := runPath(proc, rec, times, src)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		payoffs = append(payoffs, p)
	}

	return summarize(payoffs, disc.Discount(rec.Expiry())), nil
}

// runPath simulates one path over the fixing schedule and returns its
// undiscounted payoff.
func runPath(proc *process.Process, rec *contract.Recorder, times []float64, src random.Source) (float64, error) {
	proc.Reset()
	rec.Reset()

	for _, t := range times {
		value, err := proc.Update(t, src.Next())
		if err != nil {
			return 0, err
		}
		if err := rec.Observe(t, value); err != nil {
			return 0, err
		}
	}

	return rec.Payoff()
}

// summarize turns per-path payoffs into a discounted price with its
// Monte-Carlo standard error.
func summarize(payoffs []float64, discount float64) *Result {
	mean := stat.Mean(payoffs, nil)

	se := 0.0
	if len(payoffs) > 1 {
		se = discount * stat.StdDev(payoffs, nil) / math.Sqrt(float64(len(payoffs)))
	}

	return &Result{
		RunID:         uuid.NewString(),
		Price:         discount * mean,
		StandardError: se,
		Discount:      discount,
		Paths:         len(payoffs),
	}
}
