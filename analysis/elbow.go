package analysis

import "math"

// Model-selection constants.
const (
	// defaultMaxK bounds the candidate sweep when the caller passes 0.
	defaultMaxK = 10

	// elbowDecayRatio drives the fallback rule: the first k where the
	// inertia decrease drops below this share of the previous decrease.
	elbowDecayRatio = 0.7

	// elbowDefaultK is the last-resort recommendation when no elbow or
	// decay point exists, capped by the largest candidate.
	elbowDefaultK = 3
)

// recommendK picks a cluster count from an inertia-vs-k curve.
//
// Rule (a heuristic, preserved verbatim from the dashboard's historical
// behavior — small changes move every recommendation):
//
//  1. Take first-order differences of the inertias, then differences of
//     those differences (the discrete second derivative). The pick is
//     candidates[argmax(second derivative) + 2] — the +2 corrects the
//     index shift of double differencing — when that index is in range.
//  2. Otherwise walk the first differences from the second element and
//     return candidates[i+1] at the first i where the decrease magnitude
//     drops below elbowDecayRatio of the previous decrease.
//  3. Otherwise min(elbowDefaultK, largest candidate).
//
// candidates and inertias are index-aligned and non-empty.
//
// Complexity: O(len(candidates)).
func recommendK(candidates []int, inertias []float64) int {
	diffs := make([]float64, 0, len(inertias))
	for i := 1; i < len(inertias); i++ {
		diffs = append(diffs, inertias[i]-inertias[i-1])
	}

	if len(inertias) >= 3 {
		argmax, best := 0, math.Inf(-1)
		for i := 1; i < len(diffs); i++ {
			if d2 := diffs[i] - diffs[i-1]; d2 > best {
				argmax, best = i-1, d2
			}
		}
		if idx := argmax + 2; idx < len(candidates) {
			return candidates[idx]
		}
	}

	for i := 1; i < len(diffs); i++ {
		if math.Abs(diffs[i]) < math.Abs(diffs[i-1])*elbowDecayRatio {
			return candidates[i+1]
		}
	}

	if last := candidates[len(candidates)-1]; last < elbowDefaultK {
		return last
	}

	return elbowDefaultK
}
