package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"

	MinSeverity = 0
	MaxSeverity = 10

	DefaultSleepQuality = 5
)

type SymptomLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_symptom_user_date" json:"user_id"`
	LogDate       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_symptom_user_date" json:"log_date"`
	AcneSeverity  int       `gorm:"not null;default:0" json:"acne_severity"`
	Hirsutism     int       `gorm:"not null;default:0" json:"hirsutism_score"`
	HairLoss      int       `gorm:"not null;default:0" json:"hair_loss_score"`
	FatigueLevel  int       `gorm:"not null;default:0" json:"fatigue_level"`
	MoodSwings    int       `gorm:"not null;default:0" json:"mood_swings"`
	AnxietyLevel  int       `gorm:"not null;default:0" json:"anxiety_level"`
	SleepQuality  int       `gorm:"not null;default:5" json:"sleep_quality"`
	FoodCravings  int       `gorm:"not null;default:0" json:"food_cravings"`
	Bloating      int       `gorm:"not null;default:0" json:"bloating"`
	PeriodFlow    string    `gorm:"not null;default:none" json:"period_flow"`
	PeriodActive  bool      `gorm:"not null;default:false" json:"period_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func IsValidFlow(flow string) bool {
	switch flow {
	case FlowNone, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func IsValidSeverity(value int) bool {
	return value >= MinSeverity && value <= MaxSeverity
}
