// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// generate.go - synthetic benchmark inputs.
//
// Contract:
//   - Generate(n, shape, opts...) → *Table with n records
//     {"id": i, <field>: value, "label": "r<i>"}.
//   - Values are float64 in [0, n) (FewUnique: [0, k)).
//   - Blanked records carry "" in the key column, which key.Extract reads as Absent.
//   - O(n) time and memory.

package dataset

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Generate builds n synthetic records whose key column follows shape.
func Generate(n int, shape Shape, opts ...Option) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	cfg := newGeneratorConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	rng := rngFrom(cfg)

	vals, err := values(n, shape, cfg, rng)
	if err != nil {
		return nil, err
	}

	blank := blankMask(n, cfg.absentRate, rng)
	recs := make([]any, n)
	for i, v := range vals {
		rec := map[string]any{
			"id":    i,
			"label": "r" + strconv.Itoa(i),
		}
		if blank[i] {
			rec[cfg.field] = ""
		} else {
			rec[cfg.field] = v
		}
		recs[i] = rec
	}

	return &Table{
		Source:  fmt.Sprintf("generated:%s(n=%d,seed=%d)", shape, n, cfg.seed),
		Header:  []string{"id", cfg.field, "label"},
		Records: recs,
	}, nil
}

// values returns the key column for shape.
func values(n int, shape Shape, cfg generatorConfig, rng *rand.Rand) ([]float64, error) {
	vals := make([]float64, n)
	switch shape {
	case Random:
		for i := range vals {
			vals[i] = float64(rng.Intn(max(n, 1)))
		}
	case Sorted:
		for i := range vals {
			vals[i] = float64(i)
		}
	case Reversed:
		for i := range vals {
			vals[i] = float64(n - 1 - i)
		}
	case NearlySorted:
		for i := range vals {
			vals[i] = float64(i)
		}
		if n > 1 {
			swaps := int(cfg.swapRate * float64(n))
			for s := 0; s < swaps; s++ {
				i, j := rng.Intn(n), rng.Intn(n)
				vals[i], vals[j] = vals[j], vals[i]
			}
		}
	case FewUnique:
		for i := range vals {
			vals[i] = float64(i % cfg.unique)
		}
		shuffleInPlace(vals, rng)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	return vals, nil
}

// blankMask marks round(p·n) distinct positions for blanking.
func blankMask(n int, p float64, rng *rand.Rand) []bool {
	mask := make([]bool, n)
	k := int(p*float64(n) + 0.5)
	if k == 0 {
		return mask
	}
	for _, idx := range rng.Perm(n)[:k] {
		mask[idx] = true
	}
	return mask
}
