// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// foci.go - monthly and yearly fire-focus counts.
//
// Contract:
//   - The date column is the first header name containing "data"
//     (case-insensitive), e.g. "datahora" or "data_pas" in INPE exports.
//   - Rows whose date is empty or matches none of dateLayouts are skipped
//     and counted in FociSummary.Skipped.
//   - Monthly and Yearly are in chronological order; months without foci are
//     not listed.

package dataset

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/lvlsort/key"
)

// ErrNoDateColumn indicates a table without a "data*" column.
var ErrNoDateColumn = errors.New("dataset: no date column")

// dateLayouts are tried in order; INPE uses the first one.
var dateLayouts = []string{
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// MonthCount is the number of foci detected in one calendar month.
type MonthCount struct {
	Year  int
	Month time.Month
	Count int
}

// YearCount is the number of foci detected in one year.
type YearCount struct {
	Year  int
	Count int
}

// FociSummary is the result of FociByMonth.
type FociSummary struct {
	DateColumn string
	Monthly    []MonthCount
	Yearly     []YearCount
	Skipped    int // rows with an empty or unparseable date
}

// Total returns the number of counted foci.
func (s *FociSummary) Total() int {
	n := 0
	for _, y := range s.Yearly {
		n += y.Count
	}
	return n
}

// DateColumn returns the first header name containing "data".
func DateColumn(header []string) (string, bool) {
	for _, h := range header {
		if strings.Contains(strings.ToLower(h), "data") {
			return h, true
		}
	}
	return "", false
}

// FociByMonth counts the records of t per month and per year of their date.
func FociByMonth(t *Table) (*FociSummary, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrNoDateColumn)
	}
	col, ok := DateColumn(t.Header)
	if !ok {
		return nil, fmt.Errorf("%w: header %v", ErrNoDateColumn, t.Header)
	}

	sum := &FociSummary{DateColumn: col}
	months := make(map[[2]int]int)
	years := make(map[int]int)
	for _, rec := range t.Records {
		when, ok := parseDate(fieldValue(rec, col))
		if !ok {
			sum.Skipped++
			continue
		}
		months[[2]int{when.Year(), int(when.Month())}]++
		years[when.Year()]++
	}

	for ym, n := range months {
		sum.Monthly = append(sum.Monthly, MonthCount{Year: ym[0], Month: time.Month(ym[1]), Count: n})
	}
	slices.SortFunc(sum.Monthly, func(a, b MonthCount) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})
	for y, n := range years {
		sum.Yearly = append(sum.Yearly, YearCount{Year: y, Count: n})
	}
	slices.SortFunc(sum.Yearly, func(a, b YearCount) int { return a.Year - b.Year })

	return sum, nil
}

// fieldValue reads column name from a CSV row or any field-accessible record.
func fieldValue(rec any, name string) any {
	switch r := rec.(type) {
	case map[string]any:
		return r[name]
	case map[string]string:
		return r[name]
	case key.FieldAccessible:
		v, _ := r.Field(name)
		return v
	}
	if a, ok := key.NewAttrs(rec); ok {
		v, _ := a.Field(name)
		return v
	}
	return nil
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, !d.IsZero()
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
