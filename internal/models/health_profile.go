package models

import "time"

type HealthProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	HeightCm              float64   `json:"height_cm"`
	WeightKg              float64   `json:"weight_kg"`
	BMI                   float64   `json:"bmi"`
	FamilyHistoryPCOS     bool      `gorm:"not null;default:false" json:"family_history_pcos"`
	FamilyHistoryDiabetes bool      `gorm:"not null;default:false" json:"family_history_diabetes"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ComputeBMI derives body mass index from height in centimeters and
// weight in kilograms. Returns 0 when height is not positive.
func ComputeBMI(heightCm float64, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return weightKg / (meters * meters)
}
