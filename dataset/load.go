// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// load.go - several CSV files and ZIP archives as one Table.
//
// Contract:
//   - Inputs are read in the given order; *.zip paths contribute all their
//     CSV members, every other path is read as CSV.
//   - All inputs must share the first input's header (ErrHeaderMismatch).
//   - WithLimit counts rows across all inputs.
//   - Source joins the per-input labels with " + ".

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFiles concatenates CSV files and ZIP archives, e.g. the 2023 and 2024
// yearly fire-focus exports, into a single Table.
func LoadFiles(paths []string, opts ...CSVOption) (*Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no input files", ErrNoCSV)
	}
	cfg := newCSVConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	t := &Table{}
	sources := make([]string, 0, len(paths))
	for _, p := range paths {
		if cfg.limit > 0 && len(t.Records) >= cfg.limit {
			break
		}
		var (
			source string
			err    error
		)
		if strings.EqualFold(filepath.Ext(p), ".zip") {
			source, err = zipInto(t, p, cfg)
		} else {
			source, err = csvInto(t, p, cfg)
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	t.Source = strings.Join(sources, " + ")
	return t, nil
}

// csvInto appends the rows of the CSV file at path to t.
func csvInto(t *Table, path string, cfg csvConfig) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := readInto(t, f, cfg); err != nil {
		return "", fmt.Errorf("dataset: %s: %w", path, err)
	}
	return path, nil
}
