package grades

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyFeatureSet is returned when none of the requested module names
	// exists in any record's grade map.
	ErrEmptyFeatureSet = errors.New("grades: none of the requested modules exist in the data")

	// ErrNoValidRows is returned when every record was excluded because at
	// least one resolved module was missing or non-numeric.
	ErrNoValidRows = errors.New("grades: no valid rows after removing incomplete records")
)

// Dataset is the frozen output of Load: the feature matrix plus the two
// parallel lists every later pipeline stage depends on. A Dataset is
// immutable once built; build a new one to analyze a different row set.
type Dataset struct {
	// Features are the resolved module names, in requested order.
	// Column j of Matrix holds Features[j].
	Features []string

	// IDs are the surviving student identifiers. Row i of Matrix holds the
	// grades of IDs[i]; the alignment never changes after construction.
	IDs []string

	// Matrix is the n×d feature matrix over the surviving records.
	Matrix *mat.Dense
}

// Load resolves the requested module names against records and assembles
// the feature matrix.
//
// Contracts:
//   - A requested module resolves if at least one record carries the key;
//     resolved order preserves requested order.
//   - Only records where every resolved module has a numeric value become
//     rows; the rest are silently excluded.
//
// Errors: ErrEmptyFeatureSet when nothing resolves, ErrNoValidRows when
// exclusion empties the matrix.
//
// Complexity: O(n·d) over n records and d requested modules.
func Load(records []Record, requested []string) (*Dataset, error) {
	resolved := make([]string, 0, len(requested))
	for _, name := range requested {
		for _, r := range records {
			if _, present := r.Grades[name]; present {
				resolved = append(resolved, name)
				break
			}
		}
	}
	if len(resolved) == 0 {
		return nil, ErrEmptyFeatureSet
	}

	ids := make([]string, 0, len(records))
	values := make([]float64, 0, len(records)*len(resolved))
rows:
	for _, r := range records {
		row := make([]float64, len(resolved))
		for j, name := range resolved {
			v, ok := r.Grade(name)
			if !ok {
				continue rows
			}
			row[j] = v
		}
		ids = append(ids, r.ID)
		values = append(values, row...)
	}
	if len(ids) == 0 {
		return nil, ErrNoValidRows
	}

	return &Dataset{
		Features: resolved,
		IDs:      ids,
		Matrix:   mat.NewDense(len(ids), len(resolved), values),
	}, nil
}

// Rows returns the number of surviving records.
func (d *Dataset) Rows() int {
	r, _ := d.Matrix.Dims()
	return r
}

// Cols returns the number of resolved modules.
func (d *Dataset) Cols() int {
	_, c := d.Matrix.Dims()
	return c
}

// Column returns the index of the named module, or -1 when it was not
// resolved.
func (d *Dataset) Column(name string) int {
	for j, f := range d.Features {
		if f == name {
			return j
		}
	}
	return -1
}

// SubsetMean returns the per-module means over the given row subset.
// An empty subset yields all zeros.
//
// Complexity: O(len(rows)·d).
func (d *Dataset) SubsetMean(rows []int) []float64 {
	out := make([]float64, d.Cols())
	if len(rows) == 0 {
		return out
	}
	vals := make([]float64, len(rows))
	for j := range out {
		out[j] = stat.Mean(d.subsetColumn(vals, rows, j), nil)
	}
	return out
}

// SubsetStdDev returns the per-module sample standard deviations (n−1
// denominator) over the given row subset. Subsets of fewer than two rows
// yield zeros by convention.
//
// Complexity: O(len(rows)·d).
func (d *Dataset) SubsetStdDev(rows []int) []float64 {
	out := make([]float64, d.Cols())
	if len(rows) < 2 {
		return out
	}
	vals := make([]float64, len(rows))
	for j := range out {
		out[j] = stat.StdDev(d.subsetColumn(vals, rows, j), nil)
	}
	return out
}

// subsetColumn fills dst with column j restricted to the given rows.
func (d *Dataset) subsetColumn(dst []float64, rows []int, j int) []float64 {
	for p, i := range rows {
		dst[p] = d.Matrix.At(i, j)
	}
	return dst
}
