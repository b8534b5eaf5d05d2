package pricer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"option-pricing-lab/internal/contract"
	"option-pricing-lab/internal/curve"
	"option-pricing-lab/internal/process"
	"option-pricing-lab/internal/random"
)

// Options configures a parallel pricing run.
type Options struct {
	// Workers is the number of simulation goroutines. Zero means
	// GOMAXPROCS.
	Workers int

	// Seed is the base seed; each worker derives its own source from it.
	Seed uint64
}

// PriceParallel shards the path count over workers. Each worker owns an
// independent {process, recorder} clone and a seeded normal source, so no
// mutable state is shared across goroutines; partial payoff slices are
// merged after all workers finish. Results are not draw-for-draw identical
// to the sequential Price, but estimate the same quantity.
func PriceParallel(ctx context.Context, proc *process.Process, rec *contract.Recorder, disc curve.Discounter, paths int, opts Options) (*Result, error) {
	if paths <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoPaths, paths)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > paths {
		workers = paths
	}

	times := rec.Times()
	partials := make([][]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		// Even split; the first workers absorb the remainder.
		count := paths / workers
		if w < paths%workers {
			count++
		}

		go func(w, count int) {
			defer wg.Done()

			wproc := proc.Clone()
			wrec := rec.Clone()
			src := random.NewNormal(opts.Seed + uint64(w))

			payoffs := make([]float64, 0, count)
			for i := 0; i < count; i++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				p, err := runPath(wproc, wrec, times, src)
				if err != nil {
					errs[w] = fmt.Errorf("worker %d path %d: %w", w, i, err)
					return
				}
				payoffs = append(payoffs, p)
			}
			partials[w] = payoffs
		}(w, count)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := make([]float64, 0, paths)
	for _, p := range partials {
		merged = append(merged, p...)
	}

	return summarize(merged, disc.Discount(rec.Expiry())), nil
}
