// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// options.go - functional options for Generate and the CSV readers.
//
// Contract:
//   - Options mutate a generatorConfig / csvConfig before any work starts.
//   - Invalid values are recorded in the config and surfaced as errors by
//     the consuming function; option constructors never panic, so values
//     coming straight from flags or config files are safe to pass through.
//   - Later options override earlier ones.

package dataset

import (
	"context"
	"fmt"
	"math/rand"
)

// Deterministic defaults.
const (
	defaultField       = "value" // key column written by Generate
	defaultUnique      = 8       // distinct values for FewUnique
	defaultSwapRate    = 0.05    // pair swaps per element for NearlySorted
	defaultAbsentRate  = 0.0     // share of empty key values
	defaultCSVComma    = ','     // CSV field separator
	defaultCSVRowLimit = 0       // 0 = no limit
)

// Option customizes Generate.
type Option func(*generatorConfig)

// generatorConfig aggregates every Generate knob.
type generatorConfig struct {
	rng        *rand.Rand
	seed       int64
	field      string
	unique     int
	swapRate   float64
	absentRate float64
	err        error
}

// newGeneratorConfig applies opts over the defaults in order.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		seed:       defaultSeed,
		field:      defaultField,
		unique:     defaultUnique,
		swapRate:   defaultSwapRate,
		absentRate: defaultAbsentRate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSeed makes the generator use a fresh stream seeded with seed.
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.seed = seed
		c.rng = rngFromSeed(seed)
	}
}

// WithRand shares an explicit RNG. A nil rng is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *generatorConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithField renames the generated key column (default "value").
func WithField(name string) Option {
	return func(c *generatorConfig) {
		if name == "" {
			c.err = fmt.Errorf("%w: WithField(\"\")", ErrOptionViolation)
			return
		}
		c.field = name
	}
}

// WithUniqueValues sets the pool size for FewUnique (k ≥ 1).
func WithUniqueValues(k int) Option {
	return func(c *generatorConfig) {
		if k < 1 {
			c.err = fmt.Errorf("%w: WithUniqueValues(%d)", ErrOptionViolation, k)
			return
		}
		c.unique = k
	}
}

// WithSwapRate sets the share of random pair swaps applied by NearlySorted.
func WithSwapRate(p float64) Option {
	return func(c *generatorConfig) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("%w: swap rate %v", ErrInvalidProbability, p)
			return
		}
		c.swapRate = p
	}
}

// WithAbsentRate blanks the key of roughly p·n records (p in [0,1]), so the
// sorters see Absent keys.
func WithAbsentRate(p float64) Option {
	return func(c *generatorConfig) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("%w: absent rate %v", ErrInvalidProbability, p)
			return
		}
		c.absentRate = p
	}
}

// CSVOption customizes ReadCSV, LoadCSV and LoadZip.
type CSVOption func(*csvConfig)

// csvConfig aggregates CSV reader knobs.
type csvConfig struct {
	ctx   context.Context
	comma rune
	limit int
	err   error
}

// newCSVConfig applies opts over the defaults in order.
func newCSVConfig(opts ...CSVOption) csvConfig {
	cfg := csvConfig{ctx: context.Background(), comma: defaultCSVComma, limit: defaultCSVRowLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithComma sets the field separator (e.g. ';' for spreadsheet exports).
func WithComma(r rune) CSVOption {
	return func(c *csvConfig) {
		if r == 0 || r == '"' || r == '\r' || r == '\n' {
			c.err = fmt.Errorf("%w: WithComma(%q)", ErrOptionViolation, r)
			return
		}
		c.comma = r
	}
}

// WithLimit stops reading after n data rows in total (n > 0).
func WithLimit(n int) CSVOption {
	return func(c *csvConfig) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: WithLimit(%d)", ErrBadSize, n)
			return
		}
		c.limit = n
	}
}

// WithContext hands ctx to the CSV reader so long loads can be cancelled.
func WithContext(ctx context.Context) CSVOption {
	return func(c *csvConfig) {
		if ctx == nil {
			c.err = fmt.Errorf("%w: WithContext(nil)", ErrOptionViolation)
			return
		}
		c.ctx = ctx
	}
}
