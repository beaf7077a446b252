package kmeans

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyInput indicates the input matrix has no rows.
	ErrEmptyInput = errors.New("kmeans: input matrix is empty")

	// ErrInvalidClusterCount indicates k is outside the valid range for the
	// requested operation (Run: 1 ≤ k ≤ n; Silhouette: 2 ≤ k ≤ n−1).
	ErrInvalidClusterCount = errors.New("kmeans: invalid cluster count")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultRestarts is the number of independent seeded restarts; the
	// lowest-inertia run wins.
	DefaultRestarts = 10

	// DefaultMaxIterations caps Lloyd iterations per restart.
	DefaultMaxIterations = 300

	// DefaultTolerance is the centroid-shift threshold below which a run
	// is considered converged.
	DefaultTolerance = 1e-4

	// DefaultSeed is the fixed seed making repeated runs reproducible.
	DefaultSeed int64 = 42
)

// Options configures Run.
//
// Fields:
//   - Clusters      — k, the number of groups; 1 ≤ k ≤ #rows.
//   - Restarts      — independent seeded restarts (≤ 0 ⇒ DefaultRestarts).
//   - MaxIterations — Lloyd iteration cap (≤ 0 ⇒ DefaultMaxIterations).
//   - Tolerance     — convergence threshold (≤ 0 ⇒ DefaultTolerance).
//   - Seed          — RNG seed (0 ⇒ DefaultSeed).
type Options struct {
	Clusters      int
	Restarts      int
	MaxIterations int
	Tolerance     float64
	Seed          int64
}

// DefaultOptions returns the reproducible default policy for k clusters.
func DefaultOptions(k int) Options {
	return Options{
		Clusters:      k,
		Restarts:      DefaultRestarts,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Seed:          DefaultSeed,
	}
}

// Result holds the outcome of the best restart.
type Result struct {
	// Labels assigns each input row a cluster in {0 … k−1}.
	Labels []int

	// Centroids is the k×d matrix of final cluster centers.
	Centroids *mat.Dense

	// Inertia is the sum of squared distances from each row to its
	// assigned centroid; lower is tighter.
	Inertia float64
}
