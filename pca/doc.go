// Package pca reduces a numeric feature matrix to its principal
// components: standardize each column, factorize, project.
//
// 🚀 What is PCA here?
//
//	The pipeline's Reducer. Columns are standardized to zero mean and unit
//	variance using population statistics fit once over the current rows,
//	then an SVD-based factorization (gonum stat.PC) yields orthogonal
//	components ordered by descending explained variance. The reduced
//	matrix, variance ratios and per-module loadings feed every later
//	stage: elbow selection, clustering and the biplot.
//
// ✨ Contracts & conventions:
//
//   - Component count defaults to min(#modules, #rows) and is clamped to
//     that bound — never an error
//   - Explained-variance ratios are non-negative, non-increasing, and sum
//     to at most 1; CumulativeVariance is their exact running sum
//   - Component sign follows the factorization's deterministic convention;
//     sign carries no meaning — assert only magnitude and ordering
//   - A zero-variance column standardizes to all zeros instead of dividing
//     by zero; an entirely degenerate (all-identical-rows) matrix yields
//     zero variance ratios rather than failing. Known edge case: callers
//     must tolerate such degenerate outputs.
//
// ⚙️ Usage:
//
//	res, err := pca.Fit(ds.Matrix, ds.Features, pca.Options{})
//	if err != nil { ... }
//	fmt.Println(res.ExplainedVariance, res.Loadings["ANUM"])
//
// Complexity: O(n·d·min(n,d)) for the factorization.
package pca
