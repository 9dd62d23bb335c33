// Package sorting defines the result, option and error types shared by the
// instrumented sorting algorithms.
package sorting

import (
	"errors"
	"fmt"
	"time"
)

// Algorithm names, in registry order.
const (
	NameBubble    = "bubble"
	NameInsertion = "insertion"
	NameMerge     = "merge"
	NameQuick     = "quick"
)

// DefaultMaxDepth is the quicksort recursion ceiling. Sublists reached
// deeper than this are returned as they are.
const DefaultMaxDepth = 1000

var (
	// ErrUnknownAlgorithm is returned by Lookup for names outside Names().
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrOptionViolation is returned by NewOptions when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Outcome is what a RawSorter hands back to Instrument: the sorted copy and
// the two algorithm-intrinsic counters. Every algorithm builds one directly.
type Outcome struct {
	Records     []any
	Comparisons int64
	Moves       int64
}

// Result is the uniform, timed output of one algorithm invocation.
//
//   - Records: sorted copy of the input (see Quick for its deviations).
//   - Comparisons: key comparisons performed, as the algorithm counts them.
//   - Moves: swaps, shifts or element emissions, as the algorithm counts them.
//   - Elapsed: wall time of the whole call, measured on the monotonic clock.
type Result struct {
	Algorithm   string
	Records     []any
	Comparisons int64
	Moves       int64
	Elapsed     time.Duration
}

// Seconds returns Elapsed as floating-point seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

// Dropped reports how many input records are missing from the output.
// Only Quick ever drops records.
func (r Result) Dropped(inputLen int) int {
	if d := inputLen - len(r.Records); d > 0 {
		return d
	}
	return 0
}

// RawSorter is an untimed algorithm body.
type RawSorter func(records []any, field string, o Options) Outcome

// Sorter is a timed algorithm as returned by Instrument.
type Sorter func(records []any, field string, opts ...Option) Result

// Cloner lets a record type provide its own deep copy.
type Cloner interface {
	Clone() any
}

// Option configures an algorithm via functional arguments.
// Invalid values are recorded and surfaced by NewOptions as ErrOptionViolation.
type Option func(*Options)

// Options holds tunables. Only Quick reads MaxDepth today.
type Options struct {
	// MaxDepth caps quicksort recursion. Depth 0 is the top-level call, so
	// MaxDepth == 0 partitions once and leaves both sides untouched.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxDepth = DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the quicksort recursion ceiling.
//
//	d >= 0: recurse while depth <= d
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// NewOptions applies opts over DefaultOptions and reports the first violation.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return DefaultOptions(), o.err
	}
	return o, nil
}
