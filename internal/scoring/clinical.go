package scoring

// Clinical feature names. Units follow the lab-report conventions listed in
// FeatureCatalog.
const (
	FeatureInsulin      = "Insulin"
	FeatureTestosterone = "Testosterone"
	FeatureLH           = "LH"
	FeatureFSH          = "FSH"
	FeatureGlucose      = "Glucose"
	FeatureCholesterol  = "Cholesterol"
)

// Healthy reference means/sds per lab marker; LH and testosterone carry the
// largest coefficients, FSH is mildly protective (high LH/FSH ratio is the
// actual signal).
var clinicalSpecs = []featureSpec{
	{name: FeatureAge, min: 18, max: 60, mean: 28, sd: 6, coefficient: -0.05},
	{name: FeatureBMI, min: 10, max: 60, mean: 23, sd: 3, coefficient: 0.35},
	{name: FeatureInsulin, min: 0, max: 300, mean: 12, sd: 4, coefficient: 0.35},
	{name: FeatureTestosterone, min: 0, max: 300, mean: 35, sd: 10, coefficient: 0.45},
	{name: FeatureLH, min: 0, max: 100, mean: 6, sd: 2, coefficient: 0.50},
	{name: FeatureFSH, min: 0, max: 100, mean: 7, sd: 2, coefficient: -0.10},
	{name: FeatureGlucose, min: 40, max: 400, mean: 90, sd: 10, coefficient: 0.30},
	{name: FeatureCholesterol, min: 80, max: 500, mean: 180, sd: 30, coefficient: 0.15},
}

const clinicalBias = -1.8

// A probability at or above this mark classifies the record as PCOS likely.
const clinicalDecisionPoint = 0.5

type ClinicalAssessment struct {
	Result      int     `json:"result"`
	Probability float64 `json:"probability"`
	Level       string  `json:"level"`
	Confidence  float64 `json:"confidence"`
}

func ClinicalFeatureNames() []string {
	return featureNames(clinicalSpecs)
}

// ScoreClinical maps a complete lab-value record onto a binary outcome plus
// probability. Pure, like ScoreLifestyle.
func ScoreClinical(features map[string]float64) (ClinicalAssessment, error) {
	probability, _, err := scoreFeatures(clinicalSpecs, clinicalBias, features)
	if err != nil {
		return ClinicalAssessment{}, err
	}

	result := 0
	if probability >= clinicalDecisionPoint {
		result = 1
	}

	return ClinicalAssessment{
		Result:      result,
		Probability: probability,
		Level:       LevelForScore(probability),
		Confidence:  confidenceForScore(probability),
	}, nil
}

type FeatureInfo struct {
	Description  string `json:"description"`
	TypicalRange string `json:"typical_range"`
}

// FeatureCatalog documents the clinical inputs for API consumers.
func FeatureCatalog() map[string]FeatureInfo {
	return map[string]FeatureInfo{
		FeatureAge:          {Description: "Age in years", TypicalRange: "18-45"},
		FeatureBMI:          {Description: "Body Mass Index", TypicalRange: "18-35"},
		FeatureInsulin:      {Description: "Insulin level (μIU/mL)", TypicalRange: "5-25"},
		FeatureTestosterone: {Description: "Testosterone level (ng/dL)", TypicalRange: "15-85"},
		FeatureLH:           {Description: "Luteinizing Hormone (mIU/mL)", TypicalRange: "2-20"},
		FeatureFSH:          {Description: "Follicle Stimulating Hormone (mIU/mL)", TypicalRange: "3-12"},
		FeatureGlucose:      {Description: "Glucose level (mg/dL)", TypicalRange: "70-140"},
		FeatureCholesterol:  {Description: "Cholesterol level (mg/dL)", TypicalRange: "150-250"},
	}
}
