package analysis

import (
	"go.uber.org/zap"

	"github.com/mounir19000/student-spec-insight-backend/grades"
	"github.com/mounir19000/student-spec-insight-backend/kmeans"
)

// Session is the request-scoped facade over the typed pipeline for
// callers that drive stages from separate requests, the way the
// dashboard's HTTP layer does. It stores each stage's artifact and
// answers out-of-order calls with the NotReady sentinels instead of
// making them impossible at compile time.
//
// A Session is NOT safe for concurrent use: one analysis, one Session.
// Concurrent requests must each own their own instance — Sessions share
// no state.
type Session struct {
	log    *zap.Logger
	policy kmeans.Options

	dataset   *Dataset
	reduction *Reduction
	selection *Selection
	result    *Clustering
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithLogger attaches a structured logger; stage transitions log at
// Debug. Defaults to a nop logger.
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClusterPolicy overrides the deterministic clustering policy (seed,
// restarts, iteration cap) used by both SelectClusters and Cluster. The
// Clusters field is ignored; each call sets its own k.
func WithClusterPolicy(policy kmeans.Options) SessionOption {
	return func(s *Session) {
		s.policy = policy
	}
}

// NewSession returns an empty session with the default deterministic
// clustering policy.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		log:    zap.NewNop(),
		policy: kmeans.DefaultOptions(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load assembles the session's dataset and resets every downstream
// artifact: previous reductions, sweeps and clusterings become invalid
// the moment a new cohort is loaded.
func (s *Session) Load(records []grades.Record, requested []string) (*Dataset, error) {
	ds, err := Load(records, requested)
	if err != nil {
		return nil, err
	}
	s.dataset = ds
	s.reduction, s.selection, s.result = nil, nil, nil
	s.log.Debug("dataset loaded",
		zap.Int("rows", ds.Source.Rows()),
		zap.Strings("modules", ds.Source.Features))

	return ds, nil
}

// Reduce runs the reduction stage. Fails with ErrNotLoaded before Load.
func (s *Session) Reduce(components int) (*Reduction, error) {
	if s.dataset == nil {
		return nil, ErrNotLoaded
	}
	red, err := s.dataset.Reduce(components)
	if err != nil {
		return nil, err
	}
	s.reduction = red
	s.selection, s.result = nil, nil
	s.log.Debug("reduction computed", zap.Int("components", red.PCA.Components))

	return red, nil
}

// SelectClusters runs the elbow sweep with the session's clustering
// policy. Fails with ErrNotReduced before Reduce.
func (s *Session) SelectClusters(maxK int) (*Selection, error) {
	if s.reduction == nil {
		return nil, ErrNotReduced
	}
	sel, err := selectClusters(s.reduction, maxK, s.policy)
	if err != nil {
		return nil, err
	}
	s.selection = sel
	s.log.Debug("cluster sweep finished",
		zap.Ints("candidates", sel.Candidates),
		zap.Int("recommended_k", sel.RecommendedK))

	return sel, nil
}

// Cluster partitions the reduced scores into k groups with the session's
// clustering policy. Fails with ErrNotReduced before Reduce.
func (s *Session) Cluster(k int) (*Clustering, error) {
	if s.reduction == nil {
		return nil, ErrNotReduced
	}
	cl, err := cluster(s.reduction, k, s.policy)
	if err != nil {
		return nil, err
	}
	s.result = cl
	s.log.Debug("clustering finished",
		zap.Int("k", k),
		zap.Float64("inertia", cl.Inertia),
		zap.Float64("silhouette", cl.Silhouette))

	return cl, nil
}

// Selection returns the last sweep, or nil when SelectClusters has not
// run since the last Load/Reduce.
func (s *Session) Selection() *Selection {
	return s.selection
}

// Biplot reports the last clustering on two 1-based component axes.
// Fails with ErrNotClustered before Cluster.
func (s *Session) Biplot(pc1, pc2 int) (*Biplot, error) {
	if s.result == nil {
		return nil, ErrNotClustered
	}

	return s.result.Biplot(pc1, pc2)
}

// Export assembles the consolidated bundle of the session's last complete
// run. Fails with ErrNotClustered before Cluster.
func (s *Session) Export() (*Bundle, error) {
	if s.result == nil {
		return nil, ErrNotClustered
	}

	return s.result.Export(), nil
}
