package analysis

import "github.com/mounir19000/student-spec-insight-backend/grades"

// maxSampledStudents caps the member identifiers listed per cluster.
const maxSampledStudents = 10

// clusterStatistics summarizes each cluster over the ORIGINAL feature
// matrix: sizes, shares, per-module mean and sample standard deviation,
// and a capped sample of member identifiers. Original (not standardized)
// grades keep the numbers interpretable as actual marks.
//
// Complexity: O(n·d + k·d).
func clusterStatistics(src *grades.Dataset, labels []int, k int) []ClusterStat {
	members := make([][]int, k)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}

	total := float64(len(labels))
	stats := make([]ClusterStat, k)
	for c := 0; c < k; c++ {
		rows := members[c]
		means := src.SubsetMean(rows)
		stds := src.SubsetStdDev(rows)

		meanScores := make(map[string]float64, src.Cols())
		stdScores := make(map[string]float64, src.Cols())
		for j, module := range src.Features {
			meanScores[module] = means[j]
			stdScores[module] = stds[j]
		}

		sample := rows
		if len(sample) > maxSampledStudents {
			sample = sample[:maxSampledStudents]
		}
		students := make([]string, len(sample))
		for i, row := range sample {
			students[i] = src.IDs[row]
		}

		stats[c] = ClusterStat{
			Cluster:    c,
			Size:       len(rows),
			Percentage: float64(len(rows)) / total * 100,
			MeanScores: meanScores,
			StdScores:  stdScores,
			Students:   students,
		}
	}

	return stats
}
