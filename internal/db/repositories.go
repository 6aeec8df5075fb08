package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Profiles    *ProfileRepository
	CycleInfos  *CycleInfoRepository
	SymptomLogs *SymptomLogRepository
	Predictions *PredictionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Profiles:    NewProfileRepository(database),
		CycleInfos:  NewCycleInfoRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
		Predictions: NewPredictionRepository(database),
	}
}
