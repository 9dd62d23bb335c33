// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// types.go - sentinel errors, shapes and the Table container.

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadSize indicates an invalid record count or row limit.
	ErrBadSize = errors.New("dataset: invalid size")

	// ErrInvalidProbability indicates a rate outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("dataset: probability out of range")

	// ErrUnknownShape is returned by ParseShape for unsupported names.
	ErrUnknownShape = errors.New("dataset: unknown shape")

	// ErrOptionViolation indicates a meaningless option value (e.g. WithField("")).
	ErrOptionViolation = errors.New("dataset: invalid option value")

	// ErrEmptyCSV indicates CSV input without a header row.
	ErrEmptyCSV = errors.New("dataset: csv has no header")

	// ErrNoCSV indicates an archive without any *.csv member.
	ErrNoCSV = errors.New("dataset: archive contains no csv")

	// ErrHeaderMismatch indicates CSV members whose headers differ.
	ErrHeaderMismatch = errors.New("dataset: csv headers differ")
)

// Shape selects the initial order of generated values.
type Shape int

const (
	// Random draws uniform values in [0, n).
	Random Shape = iota
	// Sorted emits 0, 1, ..., n-1.
	Sorted
	// Reversed emits n-1, ..., 1, 0.
	Reversed
	// NearlySorted starts Sorted and swaps a fraction of random pairs.
	NearlySorted
	// FewUnique draws from a small pool of distinct values.
	FewUnique
)

var shapeNames = [...]string{"random", "sorted", "reversed", "nearly-sorted", "few-unique"}

// String returns the canonical lowercase name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	return []Shape{Random, Sorted, Reversed, NearlySorted, FewUnique}
}

// ParseShape resolves a name (case-insensitive; "_" and "-" are equivalent).
func ParseShape(name string) (Shape, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range shapeNames {
		if n == norm {
			return Shape(i), nil
		}
	}
	return Random, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Table is a loaded or generated dataset.
type Table struct {
	// Source labels the origin, e.g. "generated:random(n=500,seed=1)" or a file path.
	Source string
	// Header lists the column names in file order.
	Header []string
	// Records holds one map[string]any per row.
	Records []any
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}
