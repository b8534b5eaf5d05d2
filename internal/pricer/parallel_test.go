package pricer

import (
	"context"
	"errors"
	"math"
	"testing"

	"option-pricing-lab/internal/curve"
	"option-pricing-lab/internal/process"
)

func TestPriceParallel_NoPathsError(t *testing.T) {
	rec := newTerminalCall(t, []float64{1}, 1)
	proc := process.New(100, process.GBM{Drift: 0.05, Volatility: 0.2})

	_, err := PriceParallel(context.Background(), proc, rec, curve.Flat{Rate: 0.05}, 0, Options{Seed: 1})
	if !errors.Is(err, ErrNoPaths) {
		t.Errorf("expected ErrNoPaths, got %v", err)
	}
}

func TestPriceParallel_MoreWorkersThanPaths(t *testing.T) {
	rec := newTerminalCall(t, []float64{1}, 1)
	proc := process.New(100, process.GBM{Drift: 0.05, Volatility: 0.2})

	res, err := PriceParallel(context.Background(), proc, rec, curve.Flat{Rate: 0.05}, 3, Options{Workers: 16, Seed: 5})
	if err != nil {
		t.Fatalf("PriceParallel failed: %v", err)
	}
	if res.Paths != 3 {
		t.Errorf("paths: got %d, want 3", res.Paths)
	}
}

func TestPriceParallel_MatchesBlackScholes(t *testing.T) {
	rec := newTerminalCall(t, []float64{1}, 1)
	proc := process.New(100, process.GBM{Drift: 0.05, Volatility: 0.2})

	res, err := PriceParallel(context.Background(), proc, rec, curve.Flat{Rate: 0.05}, 60000, Options{Workers: 4, Seed: 7})
	if err != nil {
		t.Fatalf("PriceParallel failed: %v", err)
	}

	want := blackScholesCall(100, 100, 0.05, 0.2, 1)
	if rel := math.Abs(res.Price-want) / want; rel > 0.05 {
		t.Errorf("price %.4f deviates %.2f%% from Black-Scholes %.4f", res.Price, rel*100, want)
	}
	if res.StandardError <= 0 {
		t.Errorf("expected positive standard error, got %.6f", res.StandardError)
	}
}

func TestPriceParallel_Reproducible(t *testing.T) {
	rec := newTerminalCall(t, []float64{1}, 1)
	proc := process.New(100, process.GBM{Drift: 0.05, Volatility: 0.2})
	disc := curve.Flat{Rate: 0.05}

	first, err := PriceParallel(context.Background(), proc, rec, disc, 2000, Options{Workers: 4, Seed: 9})
	if err != nil {
		t.Fatalf("PriceParallel failed: %v", err)
	}
	second, err := PriceParallel(context.Background(), proc, rec, disc, 2000, Options{Workers: 4, Seed: 9})
	if err != nil {
		t.Fatalf("PriceParallel failed: %v", err)
	}

	if first.Price != second.Price {
		t.Errorf("same seed produced %.12f and %.12f", first.Price, second.Price)
	}
	if first.StandardError != second.StandardError {
		t.Errorf("same seed produced standard errors %.12f and %.12f", first.StandardError, second.StandardError)
	}
}

func TestPriceParallel_ContextCancellation(t *testing.T) {
	rec := newTerminalCall(t, []float64{1}, 1)
	proc := process.New(100, process.GBM{Drift: 0.05, Volatility: 0.2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PriceParallel(ctx, proc, rec, curve.Flat{Rate: 0.05}, 10000, Options{Workers: 4, Seed: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
