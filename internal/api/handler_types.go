package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/cyra/internal/db"
	"gorm.io/gorm"
)

type Handler struct {
	database   *gorm.DB
	repos      *db.Repositories
	secretKey  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, bcryptCost int) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &Handler{
		database:   database,
		repos:      db.NewRepositories(database),
		secretKey:  []byte(secretKey),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

const defaultTokenTTL = 7 * 24 * time.Hour

const contextUserIDKey = "currentUserID"

type authClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
