// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// csv.go - CSV rows as records.
//
// Contract:
//   - The first row is the header; a UTF-8 BOM on it is stripped and names
//     are trimmed.
//   - Each data row becomes map[string]any{header[i]: field[i]} with string
//     values; key.Extract parses numbers later. Short rows simply miss the
//     trailing columns, extra fields are ignored.
//   - Lines starting with '#' are comments.
//   - WithLimit caps the number of data rows across all inputs of one call.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matrixorigin/simdcsv"
)

const (
	utf8BOM = "\ufeff"

	// csvComment starts a comment line, as in INPE and MatrixOne exports.
	csvComment = '#'

	// csvBatchRows is the number of rows pulled from the reader per call.
	csvBatchRows = 4000
)

// ReadCSV reads one CSV stream into a Table labelled source.
func ReadCSV(r io.Reader, source string, opts ...CSVOption) (*Table, error) {
	cfg := newCSVConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	t := &Table{Source: source}
	if _, err := readInto(t, r, cfg); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opts ...CSVOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, path, opts...)
}

// readInto appends the rows of r to t. When t already has a header the new
// header must match it. It returns the number of data rows appended.
func readInto(t *Table, r io.Reader, cfg csvConfig) (int, error) {
	cr := simdcsv.NewReaderWithOptions(r, cfg.comma, csvComment, true, true)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	var (
		batch  = make([][]string, csvBatchRows)
		header []string
		added  int
	)
	for {
		var (
			cnt int
			err error
		)
		batch, cnt, err = cr.Read(csvBatchRows, cfg.ctx, batch)
		if err != nil && !errors.Is(err, io.EOF) {
			return added, fmt.Errorf("dataset: read %s: %w", t.Source, err)
		}

		rows := batch[:cnt]
		if header == nil && len(rows) > 0 {
			header = cleanHeader(rows[0])
			rows = rows[1:]
			if t.Header == nil {
				t.Header = header
			} else if !sameHeader(t.Header, header) {
				return 0, fmt.Errorf("%w: %v vs %v", ErrHeaderMismatch, t.Header, header)
			}
		}

		for _, row := range rows {
			if cfg.limit > 0 && len(t.Records) >= cfg.limit {
				return added, nil
			}
			t.Records = append(t.Records, rowRecord(header, row))
			added++
		}

		if cnt < csvBatchRows || errors.Is(err, io.EOF) {
			break
		}
	}
	if header == nil {
		return 0, ErrEmptyCSV
	}
	return added, nil
}

// rowRecord maps one data row onto the header. Short rows miss the trailing
// columns; surplus fields are ignored.
func rowRecord(header, row []string) map[string]any {
	rec := make(map[string]any, len(header))
	for i, name := range header {
		if i < len(row) {
			rec[name] = strings.TrimLeft(row[i], " \t")
		}
	}
	return rec
}

// cleanHeader strips a BOM and surrounding spaces from column names.
func cleanHeader(h []string) []string {
	out := make([]string, len(h))
	for i, name := range h {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		out[i] = strings.TrimSpace(name)
	}
	return out
}

func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
