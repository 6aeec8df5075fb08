package models

import "time"

const (
	CycleRegular       = "regular"
	CycleIrregular     = "irregular"
	CycleVeryIrregular = "very_irregular"

	MinCycleLength = 20
	MaxCycleLength = 90
)

type CycleInfo struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Regularity     string     `gorm:"not null;default:regular" json:"regularity"`
	AverageLength  int        `gorm:"not null" json:"average_length"`
	LastPeriodDate *time.Time `gorm:"type:date" json:"last_period_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func IsValidCycleRegularity(value string) bool {
	switch value {
	case CycleRegular, CycleIrregular, CycleVeryIrregular:
		return true
	default:
		return false
	}
}

// CycleRegularityScale maps the stored category onto the 0-2 scale the
// scoring service expects.
func CycleRegularityScale(value string) int {
	switch value {
	case CycleIrregular:
		return 1
	case CycleVeryIrregular:
		return 2
	default:
		return 0
	}
}
