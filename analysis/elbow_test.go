package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRecommendK_SecondDerivativePick verifies the curvature rule on a
// curve with one sharp bend: the pick lands two candidates after the
// point of maximum curvature (the double-differencing shift).
func TestRecommendK_SecondDerivativePick(t *testing.T) {
	candidates := []int{1, 2, 3, 4, 5}
	inertias := []float64{100, 50, 48, 46, 44}
	// diffs [-50,-2,-2,-2], second derivative [48,0,0] → argmax 0 → index 2.
	assert.Equal(t, 3, recommendK(candidates, inertias))
}

// TestRecommendK_PickTracksTheBend verifies the pick moves with the bend.
func TestRecommendK_PickTracksTheBend(t *testing.T) {
	candidates := []int{1, 2, 3, 4, 5, 6}
	inertias := []float64{100, 90, 40, 38, 37, 36}
	// diffs [-10,-50,-2,-1,-1]; second derivative [-40,48,1,0] → argmax 1
	// → index 3.
	assert.Equal(t, 4, recommendK(candidates, inertias))
}

// TestRecommendK_FirstMaxWins verifies ties resolve to the earliest bend.
func TestRecommendK_FirstMaxWins(t *testing.T) {
	candidates := []int{1, 2, 3, 4, 5, 6}
	inertias := []float64{100, 60, 40, 20, 0, -20}
	// diffs [-40,-20,-20,-20,-20]; second derivative [20,0,0,0] → argmax 0.
	assert.Equal(t, 3, recommendK(candidates, inertias))
}

// TestRecommendK_TooFewCandidates verifies the default path when fewer
// than three candidates exist: min(3, largest candidate).
func TestRecommendK_TooFewCandidates(t *testing.T) {
	assert.Equal(t, 2, recommendK([]int{1, 2}, []float64{100, 80}))
	assert.Equal(t, 1, recommendK([]int{1}, []float64{100}))
}
