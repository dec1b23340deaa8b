// Package config resolves percstats settings from an optional TOML file,
// command-line flags and the positional N and T arguments.
//
// Precedence, lowest to highest: defaults, TOML file, flags, positionals.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/percolation/montecarlo"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUsage marks invalid command-line input.
var ErrUsage = errors.New("config: usage error")

// Config is the resolved run configuration.
type Config struct {
	N          int     `toml:"n"`
	Trials     int     `toml:"trials"`
	Seed       int64   `toml:"seed"`
	Workers    int     `toml:"workers"`
	Confidence float64 `toml:"confidence"`
	Format     string  `toml:"format"`
	Verbose    bool    `toml:"verbose"`
}

// Default returns the configuration used when nothing is specified.
// N and Trials have no default and must be supplied.
func Default() Config {
	return Config{
		Workers:    1,
		Confidence: montecarlo.DefaultConfidence,
		Format:     FormatText,
	}
}

// Parse resolves args (without the program name). Usage text and flag
// errors go to stderr. Every returned error wraps ErrUsage, except
// flag.ErrHelp which is returned as is.
func Parse(args []string, stderr io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("percstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: percstats [flags] N T")
		fs.PrintDefaults()
	}
	var (
		file       = fs.String("config", "", "TOML file with n, trials, seed, workers, confidence, format, verbose")
		seed       = fs.Int64("seed", cfg.Seed, "base random seed (0 = fixed default)")
		workers    = fs.Int("workers", cfg.Workers, "number of trials run concurrently")
		confidence = fs.Float64("confidence", cfg.Confidence, "confidence level in (0,1)")
		format     = fs.String("format", cfg.Format, "output format: text or json")
		verbose    = fs.Bool("v", cfg.Verbose, "log per-trial progress")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if *file != "" {
		if _, err := toml.DecodeFile(*file, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: config file %s: %v", ErrUsage, *file, err)
		}
	}

	// Explicit flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "confidence":
			cfg.Confidence = *confidence
		case "format":
			cfg.Format = *format
		case "v":
			cfg.Verbose = *verbose
		}
	})

	rest := fs.Args()
	switch {
	case len(rest) == 2:
		n, err := positiveInt("N", rest[0])
		if err != nil {
			return Config{}, err
		}
		t, err := positiveInt("T", rest[1])
		if err != nil {
			return Config{}, err
		}
		cfg.N, cfg.Trials = n, t
	case len(rest) == 0 && *file != "":
		// both taken from the file
	default:
		fs.Usage()
		return Config{}, fmt.Errorf("%w: expected N and T, got %d arguments", ErrUsage, len(rest))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges that the estimator would otherwise reject later.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: N must be a positive integer (%d)", ErrUsage, c.N)
	case c.Trials <= 0:
		return fmt.Errorf("%w: T must be a positive integer (%d)", ErrUsage, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥1 (%d)", ErrUsage, c.Workers)
	case !(c.Confidence > 0 && c.Confidence < 1):
		return fmt.Errorf("%w: confidence must be in (0,1) (%v)", ErrUsage, c.Confidence)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, c.Format)
	}

	return nil
}

// Options converts the configuration into estimator options.
func (c Config) Options() []montecarlo.Option {
	return []montecarlo.Option{
		montecarlo.WithSeed(c.Seed),
		montecarlo.WithWorkers(c.Workers),
		montecarlo.WithConfidence(c.Confidence),
	}
}

func positiveInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrUsage, name, s)
	}

	return v, nil
}
