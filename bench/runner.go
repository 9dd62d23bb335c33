package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsort/dataset"
	"github.com/katalvlaran/lvlsort/sorting"
)

// Option configures a Runner. Invalid values are recorded and reported by NewRunner.
type Option func(*runnerConfig)

type runnerConfig struct {
	algorithms []string
	maxDepth   int
	err        error
}

// WithAlgorithms selects the algorithms to run, in order. Default: sorting.Names().
func WithAlgorithms(names ...string) Option {
	return func(c *runnerConfig) {
		if len(names) == 0 {
			c.err = ErrNoAlgorithms
			return
		}
		c.algorithms = append([]string(nil), names...)
	}
}

// WithMaxDepth sets the quicksort recursion ceiling passed to every algorithm.
func WithMaxDepth(d int) Option {
	return func(c *runnerConfig) { c.maxDepth = d }
}

type step struct {
	name string
	sort sorting.Sorter
}

// Runner executes a fixed list of Sorters over datasets.
type Runner struct {
	logger *zap.Logger
	steps  []step
	opts   []sorting.Option
}

// NewRunner resolves the algorithm names and validates the sorting options.
// A nil logger disables logging.
func NewRunner(logger *zap.Logger, opts ...Option) (*Runner, error) {
	cfg := runnerConfig{
		algorithms: sorting.Names(),
		maxDepth:   sorting.DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	sortOpts := []sorting.Option{sorting.WithMaxDepth(cfg.maxDepth)}
	if _, err := sorting.NewOptions(sortOpts...); err != nil {
		return nil, err
	}

	steps := make([]step, 0, len(cfg.algorithms))
	for _, name := range cfg.algorithms {
		fn, err := sorting.Lookup(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{name: name, sort: fn})
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, steps: steps, opts: sortOpts}, nil
}

// Algorithms returns the names the Runner executes, in order.
func (r *Runner) Algorithms() []string {
	out := make([]string, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.name
	}
	return out
}

// Run sorts tbl.Records by field with every algorithm in turn.
// If ctx is cancelled between algorithms the partial report is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, tbl *dataset.Table, field string) (*Report, error) {
	if tbl == nil {
		return nil, ErrNilDataset
	}

	rep := &Report{
		Source:    tbl.Source,
		Field:     field,
		Input:     tbl.Len(),
		StartedAt: time.Now(),
		Entries:   make([]Entry, 0, len(r.steps)),
	}
	log := r.logger.With(zap.String("source", tbl.Source), zap.String("field", field))
	if len(tbl.Header) > 0 && field != "" && !tbl.HasColumn(field) {
		log.Warn("field is not a column; every key will be absent")
	}

	for _, s := range r.steps {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Int("completed", len(rep.Entries)), zap.Error(err))
			return rep, fmt.Errorf("bench: %w", err)
		}

		res := s.sort(tbl.Records, field, r.opts...)
		e := Entry{
			Algorithm:   res.Algorithm,
			Records:     len(res.Records),
			Dropped:     res.Dropped(rep.Input),
			Comparisons: res.Comparisons,
			Moves:       res.Moves,
			Elapsed:     res.Elapsed,
			Sorted:      res.Records,
		}
		rep.Entries = append(rep.Entries, e)

		fields := []zap.Field{
			zap.String("algorithm", e.Algorithm),
			zap.Int("records", rep.Input),
			zap.Int64("comparisons", e.Comparisons),
			zap.Int64("moves", e.Moves),
			zap.Duration("elapsed", e.Elapsed),
		}
		if e.Dropped > 0 {
			log.Warn("records dropped", append(fields, zap.Int("dropped", e.Dropped))...)
			continue
		}
		log.Info("sorted", fields...)
	}
	return rep, nil
}
