package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"option-pricing-lab/internal/config"
	"option-pricing-lab/internal/logging"
	"option-pricing-lab/internal/pricer"
	"option-pricing-lab/internal/random"
	"option-pricing-lab/internal/reporting"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML book (required)")
	format := flag.String("format", "markdown", "Output format: markdown, csv")
	logLevel := flag.String("log", "", "Log level; empty uses LOG_LEVEL or info")
	logJSON := flag.Bool("log-json", false, "Emit JSON logs")
	logFile := flag.String("log-file", "", "Log to a rotated file instead of stderr")

	flag.Parse()

	logger := logging.New(logging.Options{
		Level: *logLevel,
		JSON:  *logJSON,
		File:  *logFile,
	})

	if *configPath == "" {
		logger.Fatal("--config is required")
	}
	if *format != "markdown" && *format != "csv" {
		logger.Fatalf("invalid --format %q, must be markdown or csv", *format)
	}

	book, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load book")
	}

	disc, err := book.BuildCurve()
	if err != nil {
		logger.WithError(err).Fatal("failed to build curve")
	}
	recs, err := book.BuildContracts()
	if err != nil {
		logger.WithError(err).Fatal("failed to build contracts")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("interrupted, stopping")
		cancel()
	}()

	report := &reporting.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Paths:       book.Run.Paths,
		Seed:        book.Run.Seed,
	}

	logger.WithFields(map[string]interface{}{
		"run_id":    report.RunID,
		"contracts": len(recs),
		"paths":     book.Run.Paths,
		"workers":   book.Run.Workers,
	}).Info("pricing book")

	start := time.Now()
	for i, rec := range recs {
		name := book.Contracts[i].Name
		proc := book.BuildProcess()

		var res *pricer.Result
		if book.Run.Workers > 0 {
			res, err = pricer.PriceParallel(ctx, proc, rec, disc, book.Run.Paths, pricer.Options{
				Workers: book.Run.Workers,
				Seed:    book.Run.Seed,
			})
		} else {
			res, err = pricer.Price(ctx, proc, rec, disc, random.NewNormal(book.Run.Seed), book.Run.Paths)
		}
		if err != nil {
			logger.WithError(err).WithField("contract", name).Fatal("pricing failed")
		}

		logger.WithFields(map[string]interface{}{
			"contract": name,
			"price":    res.Price,
			"std_err":  res.StandardError,
		}).Info("contract priced")

		report.Rows = append(report.Rows, reporting.Row{
			Name:          name,
			Kind:          rec.Kind(),
			PayoffKind:    book.Contracts[i].Payoff,
			Expiry:        rec.Expiry(),
			Price:         res.Price,
			StandardError: res.StandardError,
			Discount:      res.Discount,
		})
	}
	logger.WithField("elapsed", time.Since(start).String()).Info("book priced")

	switch *format {
	case "csv":
		fmt.Print(reporting.RenderCSV(report.Rows))
	default:
		fmt.Print(reporting.RenderMarkdown(report))
	}
}
