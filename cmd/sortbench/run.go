package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsort/bench"
	"github.com/katalvlaran/lvlsort/config"
	"github.com/katalvlaran/lvlsort/dataset"
	"github.com/katalvlaran/lvlsort/key"
)

var errBadComma = errors.New("sortbench: comma must be a single character")

type runFlags struct {
	csv        []string
	zip        []string
	field      string
	limit      int
	size       int
	shape      string
	seed       int64
	absentRate float64
	algorithms []string
	maxDepth   int
	show       int
	rankBy     string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort one dataset with every selected algorithm and print the comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			f.apply(cmd, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runBench(ctx, cmd.OutOrStdout(), cfg, f, logger)
		},
	}

	fl := cmd.Flags()
	addInputFlags(fl, &f.csv, &f.zip)
	fl.StringVar(&f.field, "field", "", "column used as sort key")
	fl.IntVar(&f.limit, "limit", 0, "read at most this many rows across all files (0 = all)")
	fl.IntVar(&f.size, "size", 0, "generated dataset size")
	fl.StringVar(&f.shape, "shape", "", "generated dataset shape: random, sorted, reversed, nearly-sorted, few-unique")
	fl.Int64Var(&f.seed, "seed", 0, "generator seed")
	fl.Float64Var(&f.absentRate, "absent-rate", 0, "fraction of generated records with a blank key")
	fl.StringSliceVar(&f.algorithms, "algorithms", nil, "comma separated algorithms to run")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "quicksort recursion ceiling")
	fl.IntVar(&f.show, "show", 0, "print the first N records of the fastest algorithm's output")
	fl.StringVar(&f.rankBy, "rank-by", "time", "leaderboard metric: time, comparisons or moves")
	return cmd
}

// apply overrides cfg with the flags the user actually set.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	applyInputFlags(cmd, cfg, f.csv, f.zip)
	if fl.Changed("field") {
		cfg.Dataset.Field = f.field
	}
	if fl.Changed("limit") {
		cfg.Dataset.Limit = f.limit
	}
	if fl.Changed("size") {
		cfg.Dataset.Generate.Size = f.size
	}
	if fl.Changed("shape") {
		cfg.Dataset.Generate.Shape = f.shape
	}
	if fl.Changed("seed") {
		cfg.Dataset.Generate.Seed = f.seed
	}
	if fl.Changed("absent-rate") {
		cfg.Dataset.Generate.AbsentRate = f.absentRate
	}
	if fl.Changed("algorithms") {
		cfg.Algorithms = f.algorithms
	}
	if fl.Changed("max-depth") {
		cfg.Quick.MaxDepth = f.maxDepth
	}
}

func runBench(ctx context.Context, out io.Writer, cfg *config.Config, f *runFlags, logger *zap.Logger) error {
	tbl, err := loadTable(cfg)
	if err != nil {
		return err
	}
	logger.Info("dataset ready", zap.String("source", tbl.Source), zap.Int("records", tbl.Len()))

	metric, err := bench.ParseMetric(f.rankBy)
	if err != nil {
		return err
	}
	runner, err := bench.NewRunner(logger,
		bench.WithAlgorithms(cfg.Algorithms...),
		bench.WithMaxDepth(cfg.Quick.MaxDepth),
	)
	if err != nil {
		return err
	}

	rep, err := runner.Run(ctx, tbl, cfg.Dataset.Field)
	if err != nil {
		return err
	}
	if err := rep.WriteTable(out); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nranking by %s:\n", metric)
	for i, e := range rep.Ranked(metric) {
		fmt.Fprintf(out, "%d. %s\n", i+1, e.Algorithm)
	}
	if f.show > 0 {
		if best, ok := rep.Winner(bench.ByElapsed); ok {
			showRecords(out, best, cfg.Dataset.Field, f.show)
		}
	}

	if cfg.History.Path == "" {
		return nil
	}
	store, err := bench.OpenStore(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(ctx, rep); err != nil {
		return err
	}
	logger.Info("history saved", zap.String("path", cfg.History.Path), zap.Int("entries", len(rep.Entries)))
	return nil
}

// addInputFlags registers the repeatable --csv and --zip flags.
func addInputFlags(fl *pflag.FlagSet, csvFiles, zipFiles *[]string) {
	fl.StringArrayVar(csvFiles, "csv", nil, "CSV file to load; repeat to concatenate files")
	fl.StringArrayVar(zipFiles, "zip", nil, "ZIP archive whose CSV members are loaded; repeat to concatenate")
}

// applyInputFlags replaces the configured files when either flag is set.
func applyInputFlags(cmd *cobra.Command, cfg *config.Config, csvFiles, zipFiles []string) {
	fl := cmd.Flags()
	if fl.Changed("csv") || fl.Changed("zip") {
		cfg.Dataset.CSV, cfg.Dataset.Zip = csvFiles, zipFiles
	}
}

// loadTable reads the configured files, or generates a dataset when none is set.
func loadTable(cfg *config.Config) (*dataset.Table, error) {
	d := cfg.Dataset

	if files := d.Files(); len(files) > 0 {
		comma, size := utf8.DecodeRuneInString(d.Comma)
		if d.Comma == "" || size != len(d.Comma) {
			return nil, fmt.Errorf("%w: %q", errBadComma, d.Comma)
		}
		opts := []dataset.CSVOption{dataset.WithComma(comma)}
		if d.Limit > 0 {
			opts = append(opts, dataset.WithLimit(d.Limit))
		}
		return dataset.LoadFiles(files, opts...)
	}

	shape, err := dataset.ParseShape(d.Generate.Shape)
	if err != nil {
		return nil, err
	}
	return dataset.Generate(d.Generate.Size, shape,
		dataset.WithSeed(d.Generate.Seed),
		dataset.WithField(d.Field),
		dataset.WithAbsentRate(d.Generate.AbsentRate),
	)
}

func showRecords(out io.Writer, e bench.Entry, field string, n int) {
	if n > len(e.Sorted) {
		n = len(e.Sorted)
	}
	fmt.Fprintf(out, "\nfirst %d records (%s):\n", n, e.Algorithm)
	for i, rec := range e.Sorted[:n] {
		fmt.Fprintf(out, "%4d  %-12s %v\n", i+1, key.Extract(rec, field), rec)
	}
}
