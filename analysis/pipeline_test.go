package analysis_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mounir19000/student-spec-insight-backend/analysis"
	"github.com/mounir19000/student-spec-insight-backend/grades"
	"github.com/mounir19000/student-spec-insight-backend/kmeans"
)

var modules = []string{"SYS1", "ANUM", "BDD", "RES1"}

// cohort returns n synthetic records over the four test modules, with
// two distinct grade profiles so clustering has structure to find.
func cohort(n int) []grades.Record {
	records := make([]grades.Record, n)
	for i := 0; i < n; i++ {
		base := 8.0
		if i%2 == 1 {
			base = 15.0
		}
		records[i] = grades.Record{
			ID: fmt.Sprintf("2023%04d", i),
			Grades: map[string]any{
				"SYS1": base + float64(i%5)*0.3,
				"ANUM": base + float64((i*3)%7)*0.4,
				"BDD":  base - float64(i%4)*0.5,
				"RES1": base + float64((i*5)%6)*0.2,
			},
		}
	}
	return records
}

// TestPipeline_ScenarioA: 20 records with 4 numeric modules, request all
// 4 — all rows survive, default reduction yields min(4,20)=4 components
// with variance ratios summing to 1 ± 1e-6.
func TestPipeline_ScenarioA(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	assert.Equal(t, 20, ds.Source.Rows(), "no record is incomplete")
	assert.Equal(t, modules, ds.Source.Features)

	red, err := ds.Reduce(0)
	require.NoError(t, err)
	require.Equal(t, 4, red.PCA.Components)

	sum := 0.0
	for _, r := range red.PCA.ExplainedVariance {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

// TestPipeline_ScenarioB: one requested module absent from every record
// — the loader resolves only the present one and the reduction still
// runs with a single component carrying 100% of the variance.
func TestPipeline_ScenarioB(t *testing.T) {
	ds, err := analysis.Load(cohort(20), []string{"SYS1", "GHOST"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SYS1"}, ds.Source.Features)

	red, err := ds.Reduce(0)
	require.NoError(t, err)
	require.Equal(t, 1, red.PCA.Components)
	assert.InDelta(t, 1.0, red.PCA.ExplainedVariance[0], 1e-9)
}

// TestPipeline_ScenarioC: identical rows — standardization must not
// divide by zero; the reduction degenerates gracefully.
func TestPipeline_ScenarioC(t *testing.T) {
	records := make([]grades.Record, 5)
	for i := range records {
		records[i] = grades.Record{
			ID:     fmt.Sprintf("s%d", i),
			Grades: map[string]any{"SYS1": 12.0, "ANUM": 12.0, "BDD": 12.0, "RES1": 12.0},
		}
	}

	ds, err := analysis.Load(records, modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err, "degenerate cohort must not raise a division error")
	for _, r := range red.PCA.ExplainedVariance {
		assert.False(t, math.IsNaN(r), "ratios stay finite")
		assert.Equal(t, 0.0, r)
	}
}

// TestPipeline_ScenarioD: biplot axes (1,5) with only 3 components —
// fails with the component-range sentinel and returns no partial figure.
func TestPipeline_ScenarioD(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(3)
	require.NoError(t, err)
	cl, err := red.Cluster(2)
	require.NoError(t, err)

	bp, err := cl.Biplot(1, 5)
	assert.ErrorIs(t, err, analysis.ErrComponentOutOfRange)
	assert.Nil(t, bp, "no partial figure on failure")
}

// TestSelectClusters_RangeAndConventions verifies the sweep covers
// 1..min(maxK, n−1), pins silhouette to 0 at k=1, and recommends a k
// inside the tested range.
func TestSelectClusters_RangeAndConventions(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)

	sel, err := red.SelectClusters(10)
	require.NoError(t, err)
	require.Len(t, sel.Candidates, 10)
	assert.Equal(t, 1, sel.Candidates[0])
	assert.Equal(t, 10, sel.Candidates[9])
	assert.Equal(t, 0.0, sel.Silhouettes[0], "k=1 silhouette is 0 by convention, not computed")
	assert.GreaterOrEqual(t, sel.RecommendedK, 1)
	assert.LessOrEqual(t, sel.RecommendedK, 10)

	// A small cohort caps the range at n−1.
	small, err := analysis.Load(cohort(6), modules)
	require.NoError(t, err)
	sred, err := small.Reduce(0)
	require.NoError(t, err)
	ssel, err := sred.SelectClusters(10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ssel.Candidates, "k never reaches the row count")
}

// TestSelectClusters_InvalidMaxK verifies the bound checks: 0 means the
// default of 10, negatives are rejected.
func TestSelectClusters_InvalidMaxK(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)

	_, err = red.SelectClusters(-1)
	assert.ErrorIs(t, err, analysis.ErrInvalidMaxK)

	sel, err := red.SelectClusters(0)
	require.NoError(t, err)
	assert.Len(t, sel.Candidates, 10)
}

// TestSelectClusters_MatchesClusterInertia verifies the sweep and the
// clustering stage agree: same primitive, same policy, same inertia.
func TestSelectClusters_MatchesClusterInertia(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)

	sel, err := red.SelectClusters(5)
	require.NoError(t, err)
	cl, err := red.Cluster(3)
	require.NoError(t, err)
	assert.Equal(t, sel.Inertias[2], cl.Inertia, "sweep inertia at k=3 equals Cluster(3) inertia")
}

// TestCluster_StatisticsOnOriginalGrades verifies per-cluster statistics
// are computed over the original matrix and cover every row exactly once.
func TestCluster_StatisticsOnOriginalGrades(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)
	cl, err := red.Cluster(2)
	require.NoError(t, err)

	require.Len(t, cl.Stats, 2)
	totalSize, totalPct := 0, 0.0
	for _, st := range cl.Stats {
		totalSize += st.Size
		totalPct += st.Percentage
		assert.LessOrEqual(t, len(st.Students), 10, "member sample capped at 10")
		require.Len(t, st.MeanScores, 4)
		require.Len(t, st.StdScores, 4)
		for _, m := range modules {
			mean := st.MeanScores[m]
			assert.GreaterOrEqual(t, mean, 7.0, "means are grades, not standardized values")
			assert.LessOrEqual(t, mean, 18.0, "means are grades, not standardized values")
		}
	}
	assert.Equal(t, 20, totalSize)
	assert.InDelta(t, 100.0, totalPct, 1e-9)
	assert.InDelta(t, cl.Silhouette, mustSilhouette(t, cl), 1e-12)
}

func mustSilhouette(t *testing.T, cl *analysis.Clustering) float64 {
	t.Helper()
	score, err := kmeans.Silhouette(cl.PCA.Scores, cl.Labels)
	require.NoError(t, err)
	return score
}

// TestCluster_InvalidCounts verifies the silhouette bounds: k=1 and k=n
// are rejected outright, with no partial result.
func TestCluster_InvalidCounts(t *testing.T) {
	ds, err := analysis.Load(cohort(8), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)

	for _, k := range []int{0, 1, 8, 9} {
		cl, err := red.Cluster(k)
		assert.ErrorIs(t, err, kmeans.ErrInvalidClusterCount, "k=%d", k)
		assert.Nil(t, cl)
	}
}

// TestBiplot_GeometryAndSeries verifies scatter series partition the
// cohort and arrows carry the fixed-scale tip plus two head segments.
func TestBiplot_GeometryAndSeries(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(0)
	require.NoError(t, err)
	cl, err := red.Cluster(2)
	require.NoError(t, err)

	bp, err := cl.Biplot(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, bp.PC1)
	assert.Equal(t, 2, bp.PC2)
	assert.Equal(t, cl.PCA.ExplainedVariance[0], bp.VarianceX)
	assert.Equal(t, cl.PCA.ExplainedVariance[1], bp.VarianceY)

	points := 0
	for _, s := range bp.Series {
		require.Len(t, s.X, len(s.IDs))
		require.Len(t, s.Y, len(s.IDs))
		points += len(s.IDs)
	}
	assert.Equal(t, 20, points, "series partition the cohort")

	require.Len(t, bp.Arrows, 4)
	for _, a := range bp.Arrows {
		tip := math.Hypot(a.Tip.X, a.Tip.Y)
		left := math.Hypot(a.HeadLeft.X-a.Tip.X, a.HeadLeft.Y-a.Tip.Y)
		right := math.Hypot(a.HeadRight.X-a.Tip.X, a.HeadRight.Y-a.Tip.Y)
		assert.LessOrEqual(t, tip, 10.0+1e-9, "unit loadings scale to at most the visual factor")
		assert.InDelta(t, 0.2, left, 1e-9, "fixed head length")
		assert.InDelta(t, 0.2, right, 1e-9, "fixed head length")
		assert.NotEqual(t, a.HeadLeft, a.HeadRight, "two distinct head segments")
	}
}

// TestExport_Bundle verifies the consolidated bundle carries metadata,
// reduction and clustering results consistently, and serializes.
func TestExport_Bundle(t *testing.T) {
	ds, err := analysis.Load(cohort(20), modules)
	require.NoError(t, err)
	red, err := ds.Reduce(3)
	require.NoError(t, err)
	cl, err := red.Cluster(2)
	require.NoError(t, err)

	b := cl.Export()
	assert.Equal(t, modules, b.Metadata.Modules)
	assert.Equal(t, 3, b.Metadata.Components)
	assert.Equal(t, 2, b.Metadata.Clusters)
	assert.Equal(t, 20, b.Metadata.SampleSize)
	require.Len(t, b.Clusters.Assignments, 20)
	for i, a := range b.Clusters.Assignments {
		assert.Equal(t, ds.Source.IDs[i], a.Matricule, "assignment order matches row order")
		assert.Equal(t, cl.Labels[i], a.Cluster)
	}
	assert.Equal(t, cl.Silhouette, b.Clusters.Silhouette)
	require.Len(t, b.PCA.ExplainedVariance, 3)

	raw, err := b.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"selected_modules"`)
	assert.Contains(t, string(raw), `"cluster_results"`)
}
