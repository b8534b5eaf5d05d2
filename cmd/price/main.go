package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"option-pricing-lab/internal/contract"
	"option-pricing-lab/internal/curve"
	"option-pricing-lab/internal/payoff"
	"option-pricing-lab/internal/pricer"
	"option-pricing-lab/internal/process"
	"option-pricing-lab/internal/random"
)

func main() {
	// Contract
	kind := flag.String("kind", "", "Contract kind: ASIAN, LOOKBACK_MAX, LOOKBACK_MIN, TERMINAL (required)")
	payoffKind := flag.String("payoff", "CALL", "Payoff: CALL, PUT, DIGITAL, FORWARD")
	strike := flag.Float64("strike", 0, "Strike level (required)")
	digitalAmount := flag.Float64("digital-amount", 0, "Fixed amount paid by a DIGITAL payoff")
	expiry := flag.Float64("expiry", 0, "Expiry in year fractions (required)")
	fixingList := flag.String("fixings", "", "Comma-separated fixing times (required)")

	// Barrier
	barrierVariant := flag.String("barrier", "", "Barrier variant: UP_OUT, DOWN_OUT, UP_IN, DOWN_IN")
	barrierLevel := flag.Float64("barrier-level", 0, "Barrier level")

	// Market
	spot := flag.Float64("spot", 100, "Initial underlying value")
	drift := flag.Float64("drift", 0.05, "GBM drift")
	volatility := flag.Float64("volatility", 0.2, "GBM volatility")
	rate := flag.Float64("rate", 0.05, "Flat continuously compounded discount rate")

	// Run
	paths := flag.Int("paths", 100000, "Number of Monte-Carlo paths")
	seed := flag.Uint64("seed", 1, "Random seed")
	workers := flag.Int("workers", 0, "Simulation workers; 0 runs sequentially")

	// Output
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	logger := log.New(os.Stderr, "[price] ", log.LstdFlags)

	if *kind == "" {
		logger.Fatal("--kind is required")
	}
	if *expiry <= 0 {
		logger.Fatal("--expiry must be positive")
	}
	if *fixingList == "" {
		logger.Fatal("--fixings is required")
	}

	fixings, err := parseFixings(*fixingList)
	if err != nil {
		logger.Fatalf("Invalid --fixings: %v", err)
	}

	cfg := contract.Config{
		Kind:    strings.ToUpper(*kind),
		Payoff:  strings.ToUpper(*payoffKind),
		Strike:  *strike,
		Spot:    *spot,
		Expiry:  *expiry,
		Fixings: fixings,
	}
	if cfg.Payoff == payoff.KindDigital {
		cfg.DigitalAmount = digitalAmount
	}
	if *barrierVariant != "" {
		cfg.Barrier = &contract.BarrierSpec{
			Variant: contract.Variant(strings.ToUpper(*barrierVariant)),
			Level:   *barrierLevel,
		}
	}

	rec, err := contract.FromConfig(cfg)
	if err != nil {
		logger.Fatalf("Invalid contract: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Println("Interrupted, stopping...")
		cancel()
	}()

	proc := process.New(*spot, process.GBM{Drift: *drift, Volatility: *volatility})
	disc := curve.Flat{Rate: *rate}

	var res *pricer.Result
	if *workers > 0 {
		res, err = pricer.PriceParallel(ctx, proc, rec, disc, *paths, pricer.Options{
			Workers: *workers,
			Seed:    *seed,
		})
	} else {
		res, err = pricer.Price(ctx, proc, rec, disc, random.NewNormal(*seed), *paths)
	}
	if err != nil {
		logger.Fatalf("Pricing failed: %v", err)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Fatalf("Encode failed: %v", err)
		}
		return
	}

	fmt.Printf("Contract:       %s / %s\n", rec.Kind(), cfg.Payoff)
	fmt.Printf("Paths:          %d\n", res.Paths)
	fmt.Printf("Price:          %.6f\n", res.Price)
	fmt.Printf("Standard error: %.6f\n", res.StandardError)
	fmt.Printf("Discount:       %.6f\n", res.Discount)
}

func parseFixings(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	fixings := make([]float64, 0, len(parts))
	for _, p := range parts {
		t, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("fixing %q: %w", p, err)
		}
		fixings = append(fixings, t)
	}
	return fixings, nil
}
