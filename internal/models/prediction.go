package models

import "time"

const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"

	PredictionTypeLifestyle = "lifestyle"
	PredictionTypeClinical  = "clinical"
)

// FactorWeight is one entry of the ordered factor breakdown attached to a
// lifestyle prediction. Order in the slice is meaningful (descending weight).
type FactorWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type LifestylePrediction struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Reference       string         `gorm:"uniqueIndex;not null" json:"reference"`
	UserID          uint           `gorm:"not null;index:idx_lifestyle_user_created" json:"user_id"`
	RiskScore       float64        `gorm:"not null" json:"risk_score"`
	RiskLevel       string         `gorm:"not null" json:"risk_level"`
	Confidence      float64        `json:"confidence"`
	RiskFactors     []FactorWeight `gorm:"serializer:json" json:"risk_factors"`
	Recommendations []string       `gorm:"serializer:json" json:"recommendations"`
	ModelVersion    string         `gorm:"not null" json:"model_version"`
	CreatedAt       time.Time      `gorm:"index:idx_lifestyle_user_created" json:"created_at"`
}

type ClinicalPrediction struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	Reference        string             `gorm:"uniqueIndex;not null" json:"reference"`
	UserID           uint               `gorm:"not null;index:idx_clinical_user_created" json:"user_id"`
	PredictionResult int                `gorm:"not null" json:"prediction_result"`
	Probability      float64            `gorm:"not null" json:"probability"`
	RiskLevel        string             `gorm:"not null" json:"risk_level"`
	InputData        map[string]float64 `gorm:"serializer:json" json:"input_data"`
	ModelVersion     string             `gorm:"not null" json:"model_version"`
	CreatedAt        time.Time          `gorm:"index:idx_clinical_user_created" json:"created_at"`
}
