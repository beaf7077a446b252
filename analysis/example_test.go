package analysis_test

import (
	"fmt"

	"github.com/mounir19000/student-spec-insight-backend/analysis"
	"github.com/mounir19000/student-spec-insight-backend/grades"
)

// ExampleLoad walks the typed pipeline end to end: load a cohort, reduce
// it, sweep cluster counts, cluster at the recommendation and export.
func ExampleLoad() {
	records := []grades.Record{
		{ID: "20230001", Grades: map[string]any{"SYS1": 12.5, "ANUM": 14.0}},
		{ID: "20230002", Grades: map[string]any{"SYS1": 8.0, "ANUM": 9.5}},
		{ID: "20230003", Grades: map[string]any{"SYS1": 15.0, "ANUM": 13.0}},
		{ID: "20230004", Grades: map[string]any{"SYS1": 7.5, "ANUM": 10.0}},
		{ID: "20230005", Grades: map[string]any{"SYS1": 13.0, "ANUM": 15.5}},
	}

	ds, err := analysis.Load(records, []string{"SYS1", "ANUM"})
	if err != nil {
		fmt.Println("load:", err)
		return
	}
	red, err := ds.Reduce(0)
	if err != nil {
		fmt.Println("reduce:", err)
		return
	}
	cl, err := red.Cluster(2)
	if err != nil {
		fmt.Println("cluster:", err)
		return
	}

	bundle := cl.Export()
	fmt.Println("modules:", bundle.Metadata.Modules)
	fmt.Println("components:", bundle.Metadata.Components)
	fmt.Println("clusters:", bundle.Metadata.Clusters)
	fmt.Println("students:", bundle.Metadata.SampleSize)
	// Output:
	// modules: [SYS1 ANUM]
	// components: 2
	// clusters: 2
	// students: 5
}
