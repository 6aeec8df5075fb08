package scoring

import (
	"math"
	"sort"

	"github.com/terraincognita07/cyra/internal/models"
)

// ModelVersion tags every persisted prediction produced by this package.
const ModelVersion = "1.0"

// Risk level thresholds over the [0,1] score.
const (
	ThresholdModerate = 0.3
	ThresholdHigh     = 0.7
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

type Assessment struct {
	Score           float64               `json:"score"`
	Level           string                `json:"level"`
	Confidence      float64               `json:"confidence"`
	Factors         []models.FactorWeight `json:"factors"`
	Recommendations []string              `json:"recommendations"`
}

// featureSpec describes one scored feature: the accepted input range, the
// healthy reference population (mean, sd) the input is normalized against,
// and the signed logit coefficient per standard deviation of deviation.
// Negative coefficients mark protective features.
type featureSpec struct {
	name        string
	min         float64
	max         float64
	mean        float64
	sd          float64
	coefficient float64
}

// normalized deviations are clamped so one extreme feature cannot dominate.
const deviationClamp = 3.0

func LevelForScore(score float64) string {
	switch {
	case score < ThresholdModerate:
		return models.RiskLow
	case score < ThresholdHigh:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}

func sigmoid(logit float64) float64 {
	return 1 / (1 + math.Exp(-logit))
}

func clampDeviation(z float64) float64 {
	if z > deviationClamp {
		return deviationClamp
	}
	if z < -deviationClamp {
		return -deviationClamp
	}
	return z
}

// scoreFeatures validates the input against the table, then accumulates the
// logit and the per-feature contributions. Table order drives evaluation so
// identical input always produces identical output.
func scoreFeatures(specs []featureSpec, bias float64, features map[string]float64) (float64, []models.FactorWeight, error) {
	for name := range features {
		if !knownFeature(specs, name) {
			return 0, nil, &ValidationError{Field: name, Reason: "unknown feature"}
		}
	}

	logit := bias
	factors := make([]models.FactorWeight, 0, len(specs))
	for _, spec := range specs {
		value, present := features[spec.name]
		if !present {
			return 0, nil, &ValidationError{Field: spec.name, Reason: "required feature is missing"}
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, nil, &ValidationError{Field: spec.name, Reason: "value is not a finite number"}
		}
		if value < spec.min || value > spec.max {
			return 0, nil, &ValidationError{Field: spec.name, Reason: "value is out of range"}
		}

		deviation := clampDeviation((value - spec.mean) / spec.sd)
		contribution := spec.coefficient * deviation
		logit += contribution
		factors = append(factors, models.FactorWeight{Name: spec.name, Weight: contribution})
	}

	sortFactors(factors)
	return sigmoid(logit), factors, nil
}

// sortFactors orders by descending weight with a name tiebreak so equal
// contributions still rank deterministically.
func sortFactors(factors []models.FactorWeight) {
	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].Weight == factors[j].Weight {
			return factors[i].Name < factors[j].Name
		}
		return factors[i].Weight > factors[j].Weight
	})
}

func knownFeature(specs []featureSpec, name string) bool {
	for _, spec := range specs {
		if spec.name == name {
			return true
		}
	}
	return false
}

func confidenceForScore(score float64) float64 {
	return math.Max(score, 1-score)
}

func featureNames(specs []featureSpec) []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.name)
	}
	return names
}
