package grades_test

import (
	"fmt"

	"github.com/mounir19000/student-spec-insight-backend/grades"
)

// ExampleLoad shows schema resolution and silent row exclusion: GHOST
// never resolves, and the student missing ANUM is dropped.
func ExampleLoad() {
	records := []grades.Record{
		{ID: "20230001", Grades: map[string]any{"SYS1": 12.5, "ANUM": 14.0}},
		{ID: "20230002", Grades: map[string]any{"SYS1": 9.0}},
		{ID: "20230003", Grades: map[string]any{"SYS1": "11.5", "ANUM": 10}},
	}

	ds, err := grades.Load(records, []string{"ANUM", "GHOST", "SYS1"})
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	fmt.Println("modules:", ds.Features)
	fmt.Println("students:", ds.IDs)
	fmt.Println("grade of 20230003 in SYS1:", ds.Matrix.At(1, ds.Column("SYS1")))
	// Output:
	// modules: [ANUM SYS1]
	// students: [20230001 20230003]
	// grade of 20230003 in SYS1: 11.5
}
