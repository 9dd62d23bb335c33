// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// rng.go - deterministic random streams for the generators.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand passed
//     through WithRand across goroutines.

package dataset

import "math/rand"

// defaultSeed is used when callers pass seed==0 or no seed at all.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// rngFrom returns cfg.rng if present (shared stream), else a local stream
// seeded by cfg.seed.
func rngFrom(cfg generatorConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rngFromSeed(cfg.seed)
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using r.
func shuffleInPlace(a []float64, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
