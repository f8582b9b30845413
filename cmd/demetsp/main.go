// SPDX-License-Identifier: MIT

// Command demetsp evolves a short round trip through a set of cities with
// the ga package and prints the best tour it found.
//
// Cities come from a file of whitespace-separated "x y" pairs (-cities) or
// are placed at random in a square (-n, -side).
//
//	demetsp -cities berlin.txt -pop 400 -mut 0.02 -gens 5000 -seed 7
//	demetsp -n 60 -gens 2000 -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/katalvlaran/demetsp/cities"
	"github.com/katalvlaran/demetsp/ga"
)

type config struct {
	citiesPath string
	n          int
	side       float64
	pop        int
	mut        float64
	gens       int
	seed       int64
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = solve(ctx, cfg, logger, stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("demetsp failed", "err", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("demetsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.citiesPath, "cities", "", `file of "x y" city coordinates (overrides -n)`)
	fs.IntVar(&cfg.n, "n", 30, "number of random cities when -cities is not set")
	fs.Float64Var(&cfg.side, "side", 100, "side of the square random cities are placed in")
	fs.IntVar(&cfg.pop, "pop", 100, "population size")
	fs.Float64Var(&cfg.mut, "mut", 0.05, "per-parent mutation probability in [0,1]")
	fs.IntVar(&cfg.gens, "gens", 1000, "number of generations")
	fs.Int64Var(&cfg.seed, "seed", ga.DefaultSeed, "random seed (0 uses the default seed)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every generation")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func solve(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) error {
	c, err := loadCities(cfg)
	if err != nil {
		return err
	}
	logger.Info("cities loaded", "count", c.Size(), "max_distance", c.MaxDistance())

	d, err := ga.NewDeme(c, cfg.pop, cfg.mut, ga.WithSeed(cfg.seed), ga.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := d.Evolve(ctx, cfg.gens)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintf(out, "best cost: %.4f (generation %d of %d)\n", res.Best.Cost(), res.BestGeneration, res.Generations)
	fmt.Fprintf(out, "tour: %v\n", res.Best.Order())

	return err
}

func loadCities(cfg config) (*cities.Cities, error) {
	if cfg.citiesPath == "" {
		seed := cfg.seed
		if seed == 0 {
			seed = ga.DefaultSeed
		}
		return cities.Random(cfg.n, cfg.side, rand.New(rand.NewSource(seed)))
	}

	f, err := os.Open(cfg.citiesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := cities.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.citiesPath, err)
	}

	return c, nil
}
