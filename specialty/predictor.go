package specialty

import (
	"math"
	"math/rand"

	"github.com/mounir19000/student-spec-insight-backend/grades"
)

// The known specialties and their display names.
var (
	Specialties = []string{"SIL", "SIQ", "SID", "SIT"}

	Descriptions = map[string]string{
		"SIL": "Systèmes d'Information et Logiciels",
		"SIQ": "Systèmes d'Information et de Qualité",
		"SID": "Systèmes d'Information et Données",
		"SIT": "Systèmes d'Information et Technologies",
	}
)

// Confidence bounds of the placeholder predictor.
const (
	minConfidence = 0.60
	maxConfidence = 0.95
)

// Prediction is one student's recommendation.
type Prediction struct {
	Matricule   string  `json:"matricule"`
	Specialty   string  `json:"recommended_specialty"`
	Description string  `json:"specialty_description"`
	Confidence  float64 `json:"confidence_score"`
}

// Predictor recommends a specialty for one student record.
type Predictor interface {
	Predict(r grades.Record) Prediction
}

// RandomPredictor is the placeholder classifier: uniform-random specialty,
// confidence uniform in [0.60, 0.95] rounded to two decimals. It carries
// an injected deterministic random source; same seed, same predictions.
// Not a model — do not read meaning into its output.
type RandomPredictor struct {
	rng *rand.Rand
}

// NewRandomPredictor returns a placeholder predictor seeded with seed.
func NewRandomPredictor(seed int64) *RandomPredictor {
	return &RandomPredictor{rng: rand.New(rand.NewSource(seed))}
}

// Predict recommends a uniform-random specialty for r.
func (p *RandomPredictor) Predict(r grades.Record) Prediction {
	specialty := Specialties[p.rng.Intn(len(Specialties))]
	confidence := minConfidence + p.rng.Float64()*(maxConfidence-minConfidence)

	return Prediction{
		Matricule:   r.ID,
		Specialty:   specialty,
		Description: Descriptions[specialty],
		Confidence:  math.Round(confidence*100) / 100,
	}
}

// PredictAll recommends specialties for a whole cohort, in record order.
func PredictAll(p Predictor, records []grades.Record) []Prediction {
	out := make([]Prediction, len(records))
	for i, r := range records {
		out[i] = p.Predict(r)
	}

	return out
}
