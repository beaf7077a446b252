// Package analysis wires the grade-analysis stages into one pipeline:
// load a cohort's records, reduce them to principal components, pick a
// cluster count, cluster, and report.
//
// 🚀 Two ways in:
//
//	Typed stages — each stage returns a value only the next stage accepts,
//	so calling out of order does not compile:
//
//	  ds, err  := analysis.Load(records, modules)
//	  red, err := ds.Reduce(0)
//	  sel, err := red.SelectClusters(10)
//	  cl, err  := red.Cluster(sel.RecommendedK)
//	  bp, err  := cl.Biplot(1, 2)
//	  bundle   := cl.Export()
//
//	Session — a request-scoped facade for callers that drive stages from
//	separate requests (the dashboard's HTTP layer). It stores each stage's
//	artifact and answers out-of-order calls with ErrNotLoaded /
//	ErrNotReduced / ErrNotClustered. A new Load resets everything
//	downstream. Sessions are single-threaded by design: one per analysis,
//	never shared across goroutines.
//
// ✨ Stage order & artifacts:
//
//	Load → Reduce → SelectClusters / Cluster → Biplot / Export
//
//	Every artifact is produced by exactly one run and immutable once
//	produced. SelectClusters and Cluster both drive the same kmeans
//	primitive with the same fixed seed/restart policy, so the sweep's
//	inertia at k equals Cluster(k)'s inertia.
//
// ⚠️ The recommended cluster count is a heuristic (discrete-curvature
// elbow rule with a decay fallback), not a guarantee of the "true"
// cluster count. Treat it as a starting point.
//
// All results are plain structs ready for serialization; no chart-library
// types leak out of this package.
package analysis
