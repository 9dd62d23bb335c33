package sorting

import "time"

// Instrument wraps fn with wall-clock timing and returns a Sorter.
// Options are resolved once per call; a violated option falls back to
// DefaultOptions so the algorithm still runs.
func Instrument(name string, fn RawSorter) Sorter {
	return func(records []any, field string, opts ...Option) Result {
		o, _ := NewOptions(opts...)

		start := time.Now() // carries a monotonic reading
		out := fn(records, field, o)
		elapsed := time.Since(start)

		return Result{
			Algorithm:   name,
			Records:     out.Records,
			Comparisons: out.Comparisons,
			Moves:       out.Moves,
			Elapsed:     elapsed,
		}
	}
}
