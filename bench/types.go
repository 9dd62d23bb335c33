package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNoAlgorithms is returned by NewRunner when the algorithm list is empty.
	ErrNoAlgorithms = errors.New("bench: no algorithms selected")

	// ErrNilDataset is returned by Run when no table is supplied.
	ErrNilDataset = errors.New("bench: nil dataset")

	// ErrUnknownMetric is returned by ParseMetric for unsupported names.
	ErrUnknownMetric = errors.New("bench: unknown metric")
)

// Metric selects the value Ranked orders by. Lower is better for all of them.
type Metric int

const (
	ByElapsed Metric = iota
	ByComparisons
	ByMoves
)

var metricNames = [...]string{"time", "comparisons", "moves"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric resolves "time", "comparisons" or "moves" (case-insensitive).
// "elapsed" and "swaps" are accepted as aliases.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "time", "elapsed":
		return ByElapsed, nil
	case "comparisons":
		return ByComparisons, nil
	case "moves", "swaps":
		return ByMoves, nil
	}
	return ByElapsed, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Entry is one algorithm's line in a Report.
type Entry struct {
	Algorithm   string
	Records     int // output length
	Dropped     int // input records missing from the output
	Comparisons int64
	Moves       int64
	Elapsed     time.Duration

	// Sorted is the algorithm's output; it is not persisted by Store.
	Sorted []any
}

// Micros returns Elapsed in microseconds.
func (e Entry) Micros() float64 {
	return float64(e.Elapsed) / float64(time.Microsecond)
}

func (e Entry) value(m Metric) int64 {
	switch m {
	case ByComparisons:
		return e.Comparisons
	case ByMoves:
		return e.Moves
	default:
		return int64(e.Elapsed)
	}
}

// Report is the outcome of one Runner.Run.
type Report struct {
	Source    string
	Field     string
	Input     int // records handed to every algorithm
	StartedAt time.Time
	Entries   []Entry // run order
}

// Entry returns the entry for algorithm name.
func (r *Report) Entry(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Algorithm == name {
			return e, true
		}
	}
	return Entry{}, false
}
