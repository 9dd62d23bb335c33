// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset

// Package dataset produces the record slices the sorting benchmark runs on.
//
// Sources:
//
//   - Generate: deterministic synthetic records in a chosen Shape
//     (Random, Sorted, Reversed, NearlySorted, FewUnique), optionally with a
//     share of empty values so the Absent-key paths of the sorters get
//     exercised.
//   - ReadCSV / LoadCSV: one record per CSV row, keyed by the header.
//   - LoadZip: every *.csv member of a ZIP archive, concatenated in archive
//     order (the layout INPE uses for its yearly fire-focus exports).
//   - LoadFiles: several CSV files and ZIP archives as one table, e.g. the
//     2023 and 2024 yearly exports.
//
// FociByMonth counts rows per (year, month) and per year of the date column
// (the first header containing "data").
//
// Every source returns a *Table: the header (column order), the records
// ([]any of map[string]any, ready for key.Extract) and a human-readable
// Source label used in reports.
//
// Determinism:
//
//	Generate never reads the clock. WithSeed / WithRand choose the stream;
//	without either the fixed defaultSeed is used, so two calls with the same
//	arguments always return equal tables.
//
// Errors:
//
//   - ErrBadSize             n < 0, or a non-positive row limit
//   - ErrInvalidProbability  absent/swap rates outside [0,1]
//   - ErrUnknownShape        ParseShape on an unknown name
//   - ErrOptionViolation     other meaningless option values
//   - ErrNoCSV               archive without CSV members, or no paths
//   - ErrHeaderMismatch      CSV members with different headers
//   - ErrEmptyCSV            CSV input without a header row
//   - ErrNoDateColumn        FociByMonth on a table without a date column
package dataset
