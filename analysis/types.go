package analysis

// Selection is the outcome of the elbow sweep over candidate cluster
// counts. Index i of Inertias and Silhouettes belongs to Candidates[i].
type Selection struct {
	// Candidates is the tested k range, 1..min(maxK, n−1) inclusive.
	Candidates []int `json:"k_range"`

	// Inertias holds the within-cluster sum of squared distances per
	// candidate.
	Inertias []float64 `json:"inertias"`

	// Silhouettes holds the separation score per candidate; 0 by
	// convention for k=1, where the metric is undefined.
	Silhouettes []float64 `json:"silhouette_scores"`

	// RecommendedK is the elbow heuristic's pick. Always within the
	// tested candidate range. A heuristic, not an optimum.
	RecommendedK int `json:"optimal_k"`
}

// ClusterStat summarizes one cluster over the ORIGINAL feature matrix
// (not the standardized or reduced one), for interpretability.
type ClusterStat struct {
	// Cluster is the label in {0 … k−1}.
	Cluster int `json:"cluster"`

	// Size is the number of member rows.
	Size int `json:"size"`

	// Percentage is Size over the total row count, in percent.
	Percentage float64 `json:"percentage"`

	// MeanScores maps module name to the cluster's mean grade.
	MeanScores map[string]float64 `json:"mean_scores"`

	// StdScores maps module name to the cluster's sample standard
	// deviation; 0 for singleton clusters by convention.
	StdScores map[string]float64 `json:"std_scores"`

	// Students holds at most the first 10 member identifiers.
	Students []string `json:"students"`
}

// Assignment pairs one student with their cluster label.
type Assignment struct {
	Matricule string `json:"matricule"`
	Cluster   int    `json:"cluster"`
}

// BiplotSeries is the scatter trace of one cluster on the two chosen
// components.
type BiplotSeries struct {
	Cluster int       `json:"cluster"`
	IDs     []string  `json:"matricules"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
}

// Point is a 2-D coordinate in biplot space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadingArrow is one module's contribution vector on the two chosen
// components, scaled for visibility, with precomputed arrowhead geometry
// so the frontend only draws segments.
type LoadingArrow struct {
	// Module is the feature this arrow represents.
	Module string `json:"module"`

	// Tip is the scaled vector end; the shaft runs from the origin to it.
	Tip Point `json:"tip"`

	// HeadLeft and HeadRight are the free endpoints of the two arrowhead
	// segments drawn from Tip.
	HeadLeft  Point `json:"head_left"`
	HeadRight Point `json:"head_right"`
}

// Biplot is the visualization-ready projection of the clustering onto two
// chosen components. Axes are 1-based in this external presentation.
type Biplot struct {
	PC1 int `json:"pc1"`
	PC2 int `json:"pc2"`

	// VarianceX and VarianceY are the explained-variance shares of the
	// two axes, for axis captions.
	VarianceX float64 `json:"explained_variance_pc1"`
	VarianceY float64 `json:"explained_variance_pc2"`

	Series []BiplotSeries `json:"series"`
	Arrows []LoadingArrow `json:"arrows"`
}

// Metadata describes the run an export bundle came from.
type Metadata struct {
	Modules    []string `json:"selected_modules"`
	Components int      `json:"n_components"`
	Clusters   int      `json:"n_clusters"`
	SampleSize int      `json:"sample_size"`
}

// PCAResults is the exported face of the reduction stage.
type PCAResults struct {
	ExplainedVariance  []float64            `json:"explained_variance"`
	CumulativeVariance []float64            `json:"cumulative_variance"`
	Loadings           map[string][]float64 `json:"loadings"`
}

// ClusterResults is the exported face of the clustering stage.
type ClusterResults struct {
	Assignments []Assignment  `json:"assignments"`
	Statistics  []ClusterStat `json:"statistics"`
	Silhouette  float64       `json:"silhouette_score"`
}

// Bundle is the consolidated export of one complete analysis run: plain
// nested data, ready for any serializer, tied to no chart library.
type Bundle struct {
	Metadata Metadata       `json:"metadata"`
	PCA      PCAResults     `json:"pca_results"`
	Clusters ClusterResults `json:"cluster_results"`
}
