package analysis

import "math"

// Biplot geometry constants, fixed so every frontend draws the same
// figure.
const (
	// loadingScale stretches loading vectors so they are visible against
	// the score scatter.
	loadingScale = 10.0

	// arrowHeadLength is the length of each arrowhead segment.
	arrowHeadLength = 0.2

	// arrowHalfAngle is the angle between the shaft and each arrowhead
	// segment (30°).
	arrowHalfAngle = math.Pi / 6
)

// Biplot projects the clustering onto two chosen components: one scatter
// series per cluster plus one scaled loading arrow per module.
//
// pc1 and pc2 are 1-based component indices; each must be within
// 1..PCA.Components or the call fails with ErrComponentOutOfRange and no
// partial figure.
//
// Complexity: O(n + d).
func (c *Clustering) Biplot(pc1, pc2 int) (*Biplot, error) {
	if pc1 < 1 || pc1 > c.PCA.Components || pc2 < 1 || pc2 > c.PCA.Components {
		return nil, ErrComponentOutOfRange
	}
	xIdx, yIdx := pc1-1, pc2-1

	series := make([]BiplotSeries, c.K)
	for i := range series {
		series[i].Cluster = i
	}
	for row, label := range c.Labels {
		s := &series[label]
		s.IDs = append(s.IDs, c.Source.IDs[row])
		s.X = append(s.X, c.PCA.Scores.At(row, xIdx))
		s.Y = append(s.Y, c.PCA.Scores.At(row, yIdx))
	}

	arrows := make([]LoadingArrow, 0, len(c.Source.Features))
	for _, module := range c.Source.Features {
		load := c.PCA.Loadings[module]
		arrows = append(arrows, loadingArrow(module, load[xIdx]*loadingScale, load[yIdx]*loadingScale))
	}

	return &Biplot{
		PC1:       pc1,
		PC2:       pc2,
		VarianceX: c.PCA.ExplainedVariance[xIdx],
		VarianceY: c.PCA.ExplainedVariance[yIdx],
		Series:    series,
		Arrows:    arrows,
	}, nil
}

// loadingArrow computes the arrowhead endpoints for a shaft from the
// origin to (x, y): two segments of arrowHeadLength leaving the tip at
// ±arrowHalfAngle from the shaft direction.
func loadingArrow(module string, x, y float64) LoadingArrow {
	angle := math.Atan2(y, x)

	return LoadingArrow{
		Module: module,
		Tip:    Point{X: x, Y: y},
		HeadLeft: Point{
			X: x - arrowHeadLength*math.Cos(angle-arrowHalfAngle),
			Y: y - arrowHeadLength*math.Sin(angle-arrowHalfAngle),
		},
		HeadRight: Point{
			X: x - arrowHeadLength*math.Cos(angle+arrowHalfAngle),
			Y: y - arrowHeadLength*math.Sin(angle+arrowHalfAngle),
		},
	}
}
