package pca

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoData indicates an empty input matrix (zero rows or columns).
	ErrNoData = errors.New("pca: input matrix is empty")

	// ErrFactorization indicates the underlying SVD failed to converge.
	ErrFactorization = errors.New("pca: factorization failed")
)

// Options configures Fit.
//
// Fields:
//   - Components — number of principal components to keep. Values ≤ 0
//     request the default min(#columns, #rows); values above that bound
//     are clamped to it.
type Options struct {
	Components int
}

// Result holds the outcome of Fit. All fields are immutable once returned.
type Result struct {
	// Components is the number of components actually computed.
	Components int

	// Scores is the n×Components reduced matrix; row order matches the
	// input matrix (and therefore the Dataset's ID list).
	Scores *mat.Dense

	// ExplainedVariance holds one ratio per component: the share of total
	// variance that component captures. Non-increasing; sums to ≤ 1.
	ExplainedVariance []float64

	// CumulativeVariance is the running sum of ExplainedVariance.
	CumulativeVariance []float64

	// Loadings maps each module name to its per-component coefficients
	// (length Components). Loadings[f][c] is module f's weight on
	// component c (0-based; presentation layers label them PC1..PCk).
	Loadings map[string][]float64

	// Means and StdDevs are the population statistics the input columns
	// were standardized with, kept so later transforms reuse them instead
	// of refitting.
	Means   []float64
	StdDevs []float64
}

// Standardize returns a copy of m with every column centered to zero mean
// and scaled to unit variance, using population (1/n) statistics, plus the
// fitted means and standard deviations.
//
// A zero-variance column yields an all-zero standardized column; its
// returned StdDev is 0.
//
// Complexity: O(n·d) time, O(n·d) space.
func Standardize(m *mat.Dense) (*mat.Dense, []float64, []float64) {
	n, d := m.Dims()
	means := make([]float64, d)
	stds := make([]float64, d)
	out := mat.NewDense(n, d, nil)

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		means[j], stds[j] = mean, std
		if std == 0 {
			// Degenerate column: leave the zeros in place.
			continue
		}
		for i := 0; i < n; i++ {
			out.Set(i, j, (col[i]-mean)/std)
		}
	}

	return out, means, stds
}

// Fit standardizes m and computes its principal components.
//
// features names the columns of m in order and keys the Loadings table;
// len(features) must equal the column count of m.
//
// Errors: ErrNoData for an empty matrix, ErrFactorization when the SVD
// does not converge.
func Fit(m *mat.Dense, features []string, opt Options) (*Result, error) {
	if m == nil {
		return nil, ErrNoData
	}
	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrNoData
	}

	k := opt.Components
	bound := min(n, d)
	if k <= 0 || k > bound {
		k = bound
	}

	std, means, stds := Standardize(m)

	var pc stat.PC
	if ok := pc.PrincipalComponents(std, nil); !ok {
		return nil, ErrFactorization
	}

	// Columns of vec are the component directions, variance-descending.
	var vec mat.Dense
	pc.VectorsTo(&vec)
	vars := pc.VarsTo(nil)

	// Ratio denominator is the total variance across ALL components, not
	// just the kept ones, so truncated fits still report true shares.
	var total float64
	for _, v := range vars {
		total += v
	}
	ratios := make([]float64, k)
	cumulative := make([]float64, k)
	run := 0.0
	for c := 0; c < k; c++ {
		if total > 0 {
			ratios[c] = vars[c] / total
		}
		run += ratios[c]
		cumulative[c] = run
	}

	kept := vec.Slice(0, d, 0, k)
	scores := mat.NewDense(n, k, nil)
	scores.Mul(std, kept)

	loadings := make(map[string][]float64, d)
	for f, name := range features {
		row := make([]float64, k)
		for c := 0; c < k; c++ {
			row[c] = vec.At(f, c)
		}
		loadings[name] = row
	}

	return &Result{
		Components:         k,
		Scores:             scores,
		ExplainedVariance:  ratios,
		CumulativeVariance: cumulative,
		Loadings:           loadings,
		Means:              means,
		StdDevs:            stds,
	}, nil
}
