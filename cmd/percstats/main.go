// Command percstats estimates the site-percolation threshold of an N×N grid
// from T Monte Carlo trials and prints the mean, the standard deviation and
// a confidence interval.
//
//	percstats [flags] N T
//
// Exit status is 0 on success, 2 on invalid arguments and 1 on other
// failures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logx"
	"github.com/katalvlaran/percolation/montecarlo"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "percstats:", err)
		return exitUsage
	}

	logger := logx.NewLogger(stderr, cfg.Verbose)
	opts := append(cfg.Options(), montecarlo.WithOnTrial(func(trial int, threshold float64) {
		logger.Debug().Int("trial", trial).Float64("threshold", threshold).Msg("trial finished")
	}))
	est, err := montecarlo.New(cfg.N, cfg.Trials, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "percstats:", err)
		return exitUsage
	}

	logger.Debug().Int("n", cfg.N).Int("trials", cfg.Trials).Int("workers", cfg.Workers).Int64("seed", cfg.Seed).Msg("starting run")
	if err := est.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("run failed")
		return exitError
	}
	report, err := est.Report()
	if err != nil {
		logger.Error().Err(err).Msg("report")
		return exitError
	}

	if err := write(stdout, cfg.Format, report); err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitError
	}

	return exitOK
}

func write(w io.Writer, format string, r montecarlo.Report) error {
	if format == config.FormatJSON {
		raw, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	}

	label := fmt.Sprintf("%g%% confidence interval", math.Round(r.Confidence*1000)/10)
	_, err := fmt.Fprintf(w,
		"%-23s = %gs\n%-23s = %g\n%-23s = %g\n%-23s = %g, %g\n",
		"time used", r.Elapsed.Seconds(),
		"mean", r.Mean,
		"stddev", r.StdDev,
		label, r.Low, r.High,
	)

	return err
}
