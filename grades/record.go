package grades

import (
	"encoding/json"
	"strconv"
)

// Record is one student row as handed over by the storage/upload layer:
// an opaque identifier plus a free-form module→grade map. Values may be
// any scalar the ingestion layer produced; Grade performs the typed
// numeric lookup. Records are owned by the caller and never mutated here.
type Record struct {
	// ID is the student identifier (matricule). Opaque to the pipeline.
	ID string

	// Grades maps module name to a grade value of unspecified scalar type.
	// A missing key means the module is absent for this student.
	Grades map[string]any
}

// Grade returns the numeric value of the named module, or ok=false when
// the module is absent or its value is not numeric-convertible.
//
// Accepted value kinds: all Go integer and float types, json.Number, and
// strings parsing as floats (spreadsheets routinely deliver "14.5").
// Everything else — nil, bool, nested structures — is treated as absent.
//
// Complexity: O(1).
func (r Record) Grade(module string) (float64, bool) {
	v, present := r.Grades[module]
	if !present {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Has reports whether the named module carries a numeric value in r.
func (r Record) Has(module string) bool {
	_, ok := r.Grade(module)
	return ok
}
