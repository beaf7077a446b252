// Package grades owns the data model of the analysis pipeline: student
// records, feature (module) name resolution, and assembly of the numeric
// feature matrix every later stage consumes.
//
// 🚀 What is a Dataset?
//
//	Callers hand in records — an opaque student identifier plus a free-form
//	module→grade map as produced by the upload layer. Load resolves the
//	requested module names against what the records actually carry, keeps
//	only rows where every resolved module has a numeric value, and freezes
//	the result into a Dataset:
//	  • Features — resolved module names, in requested order
//	  • IDs      — surviving student identifiers, row-aligned with Matrix
//	  • Matrix   — dense n×d feature matrix (gonum mat.Dense)
//
// ✨ Guarantees:
//
//   - Source records are never mutated; a Dataset only derives from them
//   - Row i of Matrix always belongs to IDs[i]; the alignment is fixed at
//     construction and never recomputed
//   - Resolved feature order is an order-preserving subsequence of the
//     requested list
//   - Records missing a resolved module (or carrying a non-numeric value
//     for it) are silently excluded, not errored
//
// Errors:
//   - ErrEmptyFeatureSet — no requested module exists in any record
//   - ErrNoValidRows     — every record was excluded for missing or
//     non-numeric values
//
// ⚙️ Usage:
//
//	ds, err := grades.Load(records, []string{"ANUM", "SYS1", "BDD"})
//	if err != nil {
//	  // errors.Is against the sentinels above
//	}
//	fmt.Println(ds.Rows(), ds.Cols(), ds.Features)
package grades
