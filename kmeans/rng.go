// Package kmeans - RNG utilities for seeding and restarts.
//
// This file centralizes deterministic random generation for the clusterer.
//
// Goals:
//   - Determinism: same seed ⇒ identical clusterings across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: each restart draws from its own derived stream so adding
//     or removing restarts never perturbs the others.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Restarts run sequentially and
//     each owns its derived stream; do not share streams across goroutines.
package kmeans

import "math/rand"

// deriveSeed mixes a parent seed and a restart index into a new 64-bit seed.
//
// Rationale:
//   - Restarts need independent substreams derived from the base seed.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive restart indices.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, restart uint64) int64 {
	x := uint64(parent) ^ (restart + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// restartRNG creates the independent deterministic stream for one restart
// of a run seeded with seed (seed==0 ⇒ DefaultSeed policy applies).
//
// Complexity: O(1).
func restartRNG(seed int64, restart uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, restart)))
}
