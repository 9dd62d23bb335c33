// Package bench runs the instrumented sorting algorithms against one dataset
// and turns their Results into something people read or keep.
//
// What:
//
//   - Runner executes a chosen list of algorithms sequentially on the same
//     records and field, checking the context between algorithms and logging
//     one structured line per run.
//   - Report collects one Entry per algorithm in run order. Ranked orders the
//     entries by a Metric; WriteTable renders the comparison table with the
//     time column repeated in microseconds so it sits on the same scale as the
//     counters.
//   - Store appends reports to a SQLite file and reads the latest runs back.
//
// Why sequential:
//
//	Elapsed times are only comparable when runs do not contend for CPU,
//	so Runner never parallelises algorithms.
//
// Errors:
//
//   - ErrNoAlgorithms   - WithAlgorithms() with an empty list.
//   - ErrNilDataset     - Run called without a table.
//   - ErrUnknownMetric  - ParseMetric with an unsupported name.
//   - sorting.ErrUnknownAlgorithm / sorting.ErrOptionViolation from NewRunner.
package bench
