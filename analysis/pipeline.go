package analysis

import (
	"github.com/mounir19000/student-spec-insight-backend/grades"
	"github.com/mounir19000/student-spec-insight-backend/kmeans"
	"github.com/mounir19000/student-spec-insight-backend/pca"
)

// Dataset is the Loaded stage: a frozen cohort ready for reduction.
type Dataset struct {
	// Source holds the feature matrix with its parallel module and
	// identifier lists.
	Source *grades.Dataset
}

// Reduction is the Reduced stage: principal components over one Dataset.
// It back-references its source so clustering can compute statistics on
// the original grades.
type Reduction struct {
	Source *grades.Dataset
	PCA    *pca.Result
}

// Clustering is the Clustered stage: one fixed-k partition of a
// Reduction's scores, with interpretable per-cluster statistics.
type Clustering struct {
	Source *grades.Dataset
	PCA    *pca.Result

	// K is the cluster count, fixed for this value's lifetime.
	K int

	// Labels assigns Source row i to cluster Labels[i].
	Labels []int

	// Inertia is the winning restart's within-cluster sum of squares.
	Inertia float64

	// Silhouette is the overall separation score of the assignment.
	Silhouette float64

	// Stats summarizes each cluster over the original feature matrix.
	Stats []ClusterStat
}

// Load assembles a Dataset from the cohort's records and the requested
// module names. Delegates resolution and row filtering to grades.Load;
// see its contract for the ErrEmptyFeatureSet / ErrNoValidRows cases.
func Load(records []grades.Record, requested []string) (*Dataset, error) {
	ds, err := grades.Load(records, requested)
	if err != nil {
		return nil, err
	}

	return &Dataset{Source: ds}, nil
}

// Reduce standardizes the dataset and computes its principal components.
// components ≤ 0 requests the default min(#modules, #rows); larger values
// are clamped to that bound.
func (d *Dataset) Reduce(components int) (*Reduction, error) {
	res, err := pca.Fit(d.Source.Matrix, d.Source.Features, pca.Options{Components: components})
	if err != nil {
		return nil, err
	}

	return &Reduction{Source: d.Source, PCA: res}, nil
}

// SelectClusters sweeps k over 1..min(maxK, n−1), clustering the reduced
// scores at each candidate with the default deterministic policy, and
// recommends a count via the elbow heuristic. maxK 0 means the default
// of 10; negative values return ErrInvalidMaxK.
func (r *Reduction) SelectClusters(maxK int) (*Selection, error) {
	return selectClusters(r, maxK, kmeans.DefaultOptions(0))
}

// Cluster partitions the reduced scores into k groups with the default
// deterministic policy and computes the silhouette score and per-cluster
// statistics. k must satisfy 2 ≤ k ≤ n−1 (silhouette is undefined
// outside that range); violations return kmeans.ErrInvalidClusterCount.
func (r *Reduction) Cluster(k int) (*Clustering, error) {
	return cluster(r, k, kmeans.DefaultOptions(k))
}

// selectClusters is the sweep shared by the typed path and the Session,
// which may carry a non-default clustering policy.
func selectClusters(r *Reduction, maxK int, policy kmeans.Options) (*Selection, error) {
	if maxK == 0 {
		maxK = defaultMaxK
	}
	if maxK < 1 {
		return nil, ErrInvalidMaxK
	}
	n, _ := r.PCA.Scores.Dims()
	top := maxK
	if n-1 < top {
		top = n - 1
	}
	if top < 1 {
		return nil, kmeans.ErrInvalidClusterCount
	}

	candidates := make([]int, 0, top)
	inertias := make([]float64, 0, top)
	silhouettes := make([]float64, 0, top)
	for k := 1; k <= top; k++ {
		opt := policy
		opt.Clusters = k
		res, err := kmeans.Run(r.PCA.Scores, opt)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, k)
		inertias = append(inertias, res.Inertia)

		// Silhouette needs at least two clusters; 0 by convention at k=1.
		score := 0.0
		if k > 1 {
			score, err = kmeans.Silhouette(r.PCA.Scores, res.Labels)
			if err != nil {
				return nil, err
			}
		}
		silhouettes = append(silhouettes, score)
	}

	return &Selection{
		Candidates:   candidates,
		Inertias:     inertias,
		Silhouettes:  silhouettes,
		RecommendedK: recommendK(candidates, inertias),
	}, nil
}

// cluster is the clustering stage shared by the typed path and the
// Session.
func cluster(r *Reduction, k int, policy kmeans.Options) (*Clustering, error) {
	n, _ := r.PCA.Scores.Dims()
	// Silhouette bounds: reject k where the score is undefined, so a
	// Clustering never carries a partial result.
	if k < 2 || k >= n {
		return nil, kmeans.ErrInvalidClusterCount
	}

	policy.Clusters = k
	res, err := kmeans.Run(r.PCA.Scores, policy)
	if err != nil {
		return nil, err
	}
	score, err := kmeans.Silhouette(r.PCA.Scores, res.Labels)
	if err != nil {
		return nil, err
	}

	return &Clustering{
		Source:     r.Source,
		PCA:        r.PCA,
		K:          k,
		Labels:     res.Labels,
		Inertia:    res.Inertia,
		Silhouette: score,
		Stats:      clusterStatistics(r.Source, res.Labels, k),
	}, nil
}
