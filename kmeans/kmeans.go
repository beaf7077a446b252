package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Run partitions the rows of x into opt.Clusters groups.
//
// Contracts:
//   - x must have at least one row; 1 ≤ opt.Clusters ≤ #rows.
//   - Deterministic: identical x and Options yield identical Labels,
//     Centroids and Inertia on every invocation.
//
// Errors: ErrEmptyInput, ErrInvalidClusterCount.
//
// Complexity: O(Restarts · MaxIterations · n·k·d).
func Run(x *mat.Dense, opt Options) (*Result, error) {
	if x == nil {
		return nil, ErrEmptyInput
	}
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyInput
	}
	k := opt.Clusters
	if k < 1 || k > n {
		return nil, ErrInvalidClusterCount
	}

	restarts := opt.Restarts
	if restarts <= 0 {
		restarts = DefaultRestarts
	}
	maxIter := opt.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := opt.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	best := &Result{Inertia: math.Inf(1)}
	for r := 0; r < restarts; r++ {
		rng := restartRNG(opt.Seed, uint64(r))
		res := lloyd(x, k, maxIter, tol, rng)
		if res.Inertia < best.Inertia {
			best = res
		}
	}

	return best, nil
}

// lloyd runs one seeded k-means++ initialization followed by Lloyd
// iterations to convergence or the iteration cap.
func lloyd(x *mat.Dense, k, maxIter int, tol float64, rng *rand.Rand) *Result {
	n, d := x.Dims()
	centroids := seedPlusPlus(x, k, rng)
	labels := make([]int, n)
	counts := make([]int, k)
	next := mat.NewDense(k, d, nil)

	for iter := 0; iter < maxIter; iter++ {
		// Assignment step.
		for i := 0; i < n; i++ {
			labels[i] = nearestCentroid(x, centroids, i)
		}

		// Recentering step.
		next.Zero()
		for c := range counts {
			counts[c] = 0
		}
		for i := 0; i < n; i++ {
			c := labels[i]
			counts[c]++
			for j := 0; j < d; j++ {
				next.Set(c, j, next.At(c, j)+x.At(i, j))
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster: re-seed on the row farthest from its
				// assigned centroid so every label stays populated.
				far := farthestRow(x, centroids, labels, counts)
				counts[labels[far]]--
				for j := 0; j < d; j++ {
					next.Set(c, j, x.At(far, j))
				}
				labels[far] = c
				counts[c] = 1
				continue
			}
			for j := 0; j < d; j++ {
				next.Set(c, j, next.At(c, j)/float64(counts[c]))
			}
		}

		// Convergence: largest centroid displacement below tolerance.
		shift := 0.0
		for c := 0; c < k; c++ {
			s := math.Sqrt(sqDistRows(centroids, c, next, c, d))
			if s > shift {
				shift = s
			}
		}
		centroids.Copy(next)
		if shift < tol {
			break
		}
	}

	// Final assignment against the converged centroids.
	inertia := 0.0
	for i := 0; i < n; i++ {
		labels[i] = nearestCentroid(x, centroids, i)
		inertia += sqDistRowCentroid(x, i, centroids, labels[i], d)
	}

	out := mat.NewDense(k, d, nil)
	out.Copy(centroids)

	return &Result{Labels: labels, Centroids: out, Inertia: inertia}
}

// seedPlusPlus picks k initial centroids with the k-means++ rule: the
// first uniformly, each next with probability proportional to the squared
// distance to the nearest centroid chosen so far.
func seedPlusPlus(x *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, d := x.Dims()
	centroids := mat.NewDense(k, d, nil)

	first := rng.Intn(n)
	for j := 0; j < d; j++ {
		centroids.Set(0, j, x.At(first, j))
	}

	dist := make([]float64, n)
	for c := 1; c < k; c++ {
		total := 0.0
		for i := 0; i < n; i++ {
			nearest := math.Inf(1)
			for p := 0; p < c; p++ {
				if sd := sqDistRowCentroid(x, i, centroids, p, d); sd < nearest {
					nearest = sd
				}
			}
			dist[i] = nearest
			total += nearest
		}

		pick := 0
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i := 0; i < n; i++ {
				acc += dist[i]
				if acc >= target {
					pick = i
					break
				}
			}
		} else {
			// All rows coincide with existing centroids; any row works.
			pick = rng.Intn(n)
		}
		for j := 0; j < d; j++ {
			centroids.Set(c, j, x.At(pick, j))
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to row i,
// smallest index winning ties for determinism.
func nearestCentroid(x, centroids *mat.Dense, i int) int {
	k, d := centroids.Dims()
	bestC, bestD := 0, math.Inf(1)
	for c := 0; c < k; c++ {
		if sd := sqDistRowCentroid(x, i, centroids, c, d); sd < bestD {
			bestC, bestD = c, sd
		}
	}
	return bestC
}

// farthestRow returns the row with the largest squared distance to its
// assigned centroid, skipping rows whose cluster would be emptied by
// taking them.
func farthestRow(x, centroids *mat.Dense, labels, counts []int) int {
	n, d := x.Dims()
	bestI, bestD := 0, -1.0
	for i := 0; i < n; i++ {
		if counts[labels[i]] <= 1 {
			continue
		}
		if sd := sqDistRowCentroid(x, i, centroids, labels[i], d); sd > bestD {
			bestI, bestD = i, sd
		}
	}
	return bestI
}

// sqDistRowCentroid returns the squared Euclidean distance between row i
// of x and row c of centroids.
func sqDistRowCentroid(x *mat.Dense, i int, centroids *mat.Dense, c, d int) float64 {
	s := 0.0
	for j := 0; j < d; j++ {
		dev := x.At(i, j) - centroids.At(c, j)
		s += dev * dev
	}
	return s
}

// sqDistRows returns the squared Euclidean distance between row a of m1
// and row b of m2.
func sqDistRows(m1 *mat.Dense, a int, m2 *mat.Dense, b, d int) float64 {
	s := 0.0
	for j := 0; j < d; j++ {
		dev := m1.At(a, j) - m2.At(b, j)
		s += dev * dev
	}
	return s
}
