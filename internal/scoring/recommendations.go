package scoring

import "github.com/terraincognita07/cyra/internal/models"

// Only the strongest contributing factors drive advice.
const topFactorCount = 5

const highRiskAdvice = "Consult a gynecologist or endocrinologist for proper diagnosis: get blood tests for hormones, glucose and insulin, and discuss an ultrasound examination if needed."

// adviceByFactor is a static lookup; factors without an entry (such as Age)
// produce no advice.
var adviceByFactor = map[string]string{
	FeatureBMI:                  "Focus on weight management: even a 5-10% weight loss can significantly improve PCOS symptoms.",
	FeatureCycleRegularity:      "Track your menstrual cycle daily and consult a gynecologist if cycles are consistently irregular.",
	FeatureCycleLength:          "Note cycle length and flow every month; lengthening cycles are worth raising with your doctor.",
	FeatureHirsutism:            "Excess hair growth relates to elevated androgens: consult a dermatologist and check hormone levels with your doctor.",
	FeatureAcne:                 "Persistent acne can be hormone driven; a dermatologist can advise on treatment options.",
	FeatureHairLoss:             "Scalp hair thinning can be androgen related; discuss hormone testing with your doctor.",
	FeatureWeightGainDifficulty: "Difficulty managing weight responds well to combining diet changes with strength training.",
	FeatureFamilyHistory:        "With a family history of PCOS, share your symptoms with your doctor proactively.",
	FeatureStressLevel:          "Manage stress levels: meditation, 7-8 hours of sleep and counselling all support hormone balance.",
	FeatureExerciseFrequency:    "Increase physical activity: aim for 30 minutes of exercise 5 days a week, mixing cardio and strength work.",
	FeatureSleepQuality:         "Improve sleep quality: keep a regular sleep schedule and avoid screens before bedtime.",
}

// BuildRecommendations derives advice purely from the risk level and the
// top contributing factors. Factors must already be sorted by weight.
func BuildRecommendations(level string, factors []models.FactorWeight) []string {
	recommendations := make([]string, 0, topFactorCount+1)
	if level == models.RiskHigh {
		recommendations = append(recommendations, highRiskAdvice)
	}

	considered := factors
	if len(considered) > topFactorCount {
		considered = considered[:topFactorCount]
	}

	for _, factor := range considered {
		if factor.Weight <= 0 {
			continue
		}
		advice, found := adviceByFactor[factor.Name]
		if !found {
			continue
		}
		recommendations = append(recommendations, advice)
	}

	return recommendations
}
