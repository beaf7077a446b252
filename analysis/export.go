package analysis

import "github.com/goccy/go-json"

// Export assembles the consolidated bundle of one complete run: metadata,
// the reduction's variance/loadings, and the clustering's assignments,
// statistics and silhouette. Plain data only; serialize it however the
// transport layer likes, or use Bundle.JSON.
func (c *Clustering) Export() *Bundle {
	assignments := make([]Assignment, len(c.Labels))
	for i, label := range c.Labels {
		assignments[i] = Assignment{Matricule: c.Source.IDs[i], Cluster: label}
	}

	return &Bundle{
		Metadata: Metadata{
			Modules:    c.Source.Features,
			Components: c.PCA.Components,
			Clusters:   c.K,
			SampleSize: len(c.Source.IDs),
		},
		PCA: PCAResults{
			ExplainedVariance:  c.PCA.ExplainedVariance,
			CumulativeVariance: c.PCA.CumulativeVariance,
			Loadings:           c.PCA.Loadings,
		},
		Clusters: ClusterResults{
			Assignments: assignments,
			Statistics:  c.Stats,
			Silhouette:  c.Silhouette,
		},
	}
}

// JSON encodes the bundle for the transport layer.
func (b *Bundle) JSON() ([]byte, error) {
	return json.Marshal(b)
}
