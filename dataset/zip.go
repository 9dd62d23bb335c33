// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// zip.go - CSV members of a ZIP archive as one Table.

package dataset

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// LoadZip reads every *.csv member of the archive at zipPath, in archive
// order, into a single Table. All members must share the same header.
func LoadZip(zipPath string, opts ...CSVOption) (*Table, error) {
	cfg := newCSVConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	t := &Table{}
	source, err := zipInto(t, zipPath, cfg)
	if err != nil {
		return nil, err
	}
	t.Source = source
	return t, nil
}

// zipInto appends the CSV members of zipPath to t and returns the source
// label "path:member1+member2".
func zipInto(t *Table, zipPath string, cfg csvConfig) (string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("dataset: open %s: %w", zipPath, err)
	}
	defer zr.Close()

	var members []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".csv") {
			continue
		}
		if cfg.limit > 0 && len(t.Records) >= cfg.limit {
			break
		}
		if err := readMember(t, f, cfg); err != nil {
			return "", err
		}
		members = append(members, path.Base(f.Name))
	}
	if len(members) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoCSV, zipPath)
	}
	return zipPath + ":" + strings.Join(members, "+"), nil
}

// readMember appends one archive member to t.
func readMember(t *Table, f *zip.File, cfg csvConfig) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("dataset: open member %s: %w", f.Name, err)
	}
	defer rc.Close()

	if _, err := readInto(t, rc, cfg); err != nil {
		return fmt.Errorf("dataset: member %s: %w", f.Name, err)
	}
	return nil
}
