// Package kmeans partitions the rows of a numeric matrix into k groups by
// iterative centroid relocation, with deterministic seeding and multiple
// restarts.
//
// 🚀 Algorithm outline:
//
//  1. Seed k centroids with k-means++ from a deterministic RNG stream.
//  2. Lloyd iterations: assign every row to its nearest centroid, then
//     recompute each centroid as the mean of its rows; stop when the
//     largest centroid shift falls below Tolerance or after MaxIterations.
//  3. Repeat from Restarts independent derived streams; keep the run with
//     the lowest inertia (sum of squared point→centroid distances).
//
// ✨ Determinism:
//
//	Restart count and seed are fixed by Options (defaults mirror the
//	dashboard's historical policy: 10 restarts, seed 42). Identical input
//	matrix and k always produce identical labels and inertia — tests rely
//	on it, and so does elbow selection, which sweeps this same primitive
//	over a k range.
//
// Errors:
//   - ErrEmptyInput          — the matrix has no rows
//   - ErrInvalidClusterCount — k < 1, k > #rows, or (for Silhouette)
//     k < 2 / k == #rows where the metric is undefined
//
// ⚙️ Usage:
//
//	res, err := kmeans.Run(scores, kmeans.DefaultOptions(3))
//	if err != nil { ... }
//	score, err := kmeans.Silhouette(scores, res.Labels)
//
// Complexity: O(Restarts · MaxIterations · n·k·d) time, O(n + k·d) extra
// space per run.
package kmeans
