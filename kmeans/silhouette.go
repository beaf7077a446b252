package kmeans

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Silhouette returns the mean silhouette coefficient of the assignment:
// for each row, (b−a)/max(a,b) where a is the mean distance to rows of its
// own cluster and b the smallest mean distance to any other cluster.
// Range [-1, 1]; higher means better-separated clusters.
//
// Contracts:
//   - len(labels) must equal the row count of x.
//   - The metric is undefined for fewer than 2 clusters or when every row
//     is its own cluster; both return ErrInvalidClusterCount. Pipeline
//     convention: report 0 for k=1 instead of calling this.
//
// Complexity: O(n²·d).
func Silhouette(x *mat.Dense, labels []int) (float64, error) {
	if x == nil {
		return 0, ErrEmptyInput
	}
	n, d := x.Dims()
	if n == 0 || len(labels) != n {
		return 0, ErrEmptyInput
	}

	k := 0
	for _, l := range labels {
		if l+1 > k {
			k = l + 1
		}
	}
	if k < 2 || k >= n {
		return 0, ErrInvalidClusterCount
	}

	sizes := make([]int, k)
	for _, l := range labels {
		sizes[l]++
	}

	sum := 0.0
	meanDist := make([]float64, k)
	for i := 0; i < n; i++ {
		for c := range meanDist {
			meanDist[c] = 0
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			meanDist[labels[j]] += math.Sqrt(sqDistRows(x, i, x, j, d))
		}

		own := labels[i]
		var a float64
		if sizes[own] > 1 {
			a = meanDist[own] / float64(sizes[own]-1)
		}
		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if m := meanDist[c] / float64(sizes[c]); m < b {
				b = m
			}
		}

		// Singleton cluster: coefficient is 0 by definition.
		if sizes[own] > 1 {
			if m := math.Max(a, b); m > 0 {
				sum += (b - a) / m
			}
		}
	}

	return sum / float64(n), nil
}
