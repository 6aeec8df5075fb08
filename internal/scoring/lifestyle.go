package scoring

// Lifestyle feature names, matching the questionnaire field names the API
// accepts.
const (
	FeatureAge                  = "Age"
	FeatureBMI                  = "BMI"
	FeatureCycleRegularity      = "CycleRegularity"
	FeatureCycleLength          = "CycleLength"
	FeatureHirsutism            = "Hirsutism"
	FeatureAcne                 = "Acne"
	FeatureHairLoss             = "HairLoss"
	FeatureWeightGainDifficulty = "WeightGainDifficulty"
	FeatureFamilyHistory        = "FamilyHistory"
	FeatureStressLevel          = "StressLevel"
	FeatureExerciseFrequency    = "ExerciseFrequency"
	FeatureSleepQuality         = "SleepQuality"
)

// Calibrated against the reference population the lifestyle dataset was
// drawn from: mean/sd are the healthy cohort statistics, coefficients rank
// cycle regularity, family history and hirsutism as the strongest signals.
var lifestyleSpecs = []featureSpec{
	{name: FeatureAge, min: 18, max: 45, mean: 28, sd: 5, coefficient: 0.05},
	{name: FeatureBMI, min: 15, max: 45, mean: 23, sd: 3, coefficient: 0.35},
	{name: FeatureCycleRegularity, min: 0, max: 2, mean: 0, sd: 1, coefficient: 0.55},
	{name: FeatureCycleLength, min: 20, max: 90, mean: 28, sd: 3, coefficient: 0.30},
	{name: FeatureHirsutism, min: 0, max: 3, mean: 0, sd: 1, coefficient: 0.40},
	{name: FeatureAcne, min: 0, max: 3, mean: 0, sd: 1, coefficient: 0.25},
	{name: FeatureHairLoss, min: 0, max: 2, mean: 0, sd: 1, coefficient: 0.25},
	{name: FeatureWeightGainDifficulty, min: 0, max: 2, mean: 0, sd: 1, coefficient: 0.30},
	{name: FeatureFamilyHistory, min: 0, max: 1, mean: 0, sd: 1, coefficient: 0.50},
	{name: FeatureStressLevel, min: 0, max: 10, mean: 5, sd: 2, coefficient: 0.15},
	{name: FeatureExerciseFrequency, min: 0, max: 7, mean: 3, sd: 1, coefficient: -0.20},
	{name: FeatureSleepQuality, min: 0, max: 10, mean: 7, sd: 2, coefficient: -0.20},
}

const lifestyleBias = -1.7

func LifestyleFeatureNames() []string {
	return featureNames(lifestyleSpecs)
}

// ScoreLifestyle turns a complete questionnaire record into a risk
// assessment. Pure: no I/O, no randomness, no shared state.
func ScoreLifestyle(features map[string]float64) (Assessment, error) {
	score, factors, err := scoreFeatures(lifestyleSpecs, lifestyleBias, features)
	if err != nil {
		return Assessment{}, err
	}

	level := LevelForScore(score)
	return Assessment{
		Score:           score,
		Level:           level,
		Confidence:      confidenceForScore(score),
		Factors:         factors,
		Recommendations: BuildRecommendations(level, factors),
	}, nil
}
