// Package analysis: sentinel error set.
// All stage-ordering and reporting failures are package-level sentinels
// matched via errors.Is. Loader and clustering failures surface the
// sentinels of their home packages (grades, kmeans) unchanged.

package analysis

import "errors"

var (
	// ErrNotLoaded is returned when a stage needing a dataset runs before
	// Load has succeeded on this session.
	ErrNotLoaded = errors.New("analysis: no data loaded, call Load first")

	// ErrNotReduced is returned when clustering or model selection runs
	// before Reduce has succeeded on this session.
	ErrNotReduced = errors.New("analysis: PCA not performed, call Reduce first")

	// ErrNotClustered is returned when a report is requested before
	// Cluster has succeeded on this session.
	ErrNotClustered = errors.New("analysis: clustering not performed, call Cluster first")

	// ErrInvalidMaxK indicates a non-positive candidate bound passed to
	// SelectClusters.
	ErrInvalidMaxK = errors.New("analysis: max cluster candidate must be at least 1")

	// ErrComponentOutOfRange indicates a biplot axis outside the computed
	// component range.
	ErrComponentOutOfRange = errors.New("analysis: requested component exceeds computed components")
)
