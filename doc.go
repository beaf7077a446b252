// Package insight is the exploratory-analysis core behind the student
// grade dashboard: it turns per-student grade records into structure a
// frontend can plot — principal components, cluster assignments and a
// recommended cluster count.
//
// 🚀 What does it do?
//
//	A small, deterministic analysis pipeline with a strict stage order:
//		• grades/    — schema resolution & feature-matrix assembly (Loader)
//		• pca/       — standardization + principal component analysis
//		• kmeans/    — seeded k-means++ with restarts, inertia & silhouette
//		• analysis/  — staged session, elbow model selection, biplot & export
//		• specialty/ — pluggable specialty classifier (random stub for now)
//
// ✨ Why this shape?
//
//   - Library-only – the web layer, storage and file ingestion live elsewhere
//     and merely hand records in and serialize results out
//   - Deterministic – fixed seeds and restart policy; identical input yields
//     identical clusters, always
//   - Typed stages – Load → Reduce → Select/Cluster → Report is enforced by
//     the type system, not by runtime flag checks
//
// Quick example:
//
//	ds, err := analysis.Load(records, []string{"ANUM", "SYS1", "RES1"})
//	// handle err
//	red, _ := ds.Reduce(0)            // 0 ⇒ min(#features, #rows) components
//	sel, _ := red.SelectClusters(10)  // elbow sweep over k = 1..min(10, n-1)
//	cl, _ := red.Cluster(sel.RecommendedK)
//	bundle := cl.Export()
//
// See each package's doc.go for contracts, errors and complexity notes.
package insight
