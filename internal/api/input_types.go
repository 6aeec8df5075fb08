package api

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	FullName    string `json:"full_name"`
	Age         *int   `json:"age"`
}

type profileInput struct {
	HeightCm              float64 `json:"height_cm"`
	WeightKg              float64 `json:"weight_kg"`
	FamilyHistoryPCOS     bool    `json:"family_history_pcos"`
	FamilyHistoryDiabetes bool    `json:"family_history_diabetes"`
}

type cycleInfoInput struct {
	Regularity     string `json:"regularity"`
	AverageLength  int    `json:"average_length"`
	LastPeriodDate string `json:"last_period_date"`
}

type symptomLogInput struct {
	Date         string `json:"date"`
	AcneSeverity *int   `json:"acne_severity"`
	Hirsutism    *int   `json:"hirsutism_score"`
	HairLoss     *int   `json:"hair_loss_score"`
	FatigueLevel *int   `json:"fatigue_level"`
	MoodSwings   *int   `json:"mood_swings"`
	AnxietyLevel *int   `json:"anxiety_level"`
	SleepQuality *int   `json:"sleep_quality"`
	FoodCravings *int   `json:"food_cravings"`
	Bloating     *int   `json:"bloating"`
	PeriodFlow   string `json:"period_flow"`
	PeriodActive bool   `json:"period_active"`
}
