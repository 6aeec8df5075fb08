package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/cyra/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c.Get(fiber.HeaderAuthorization))
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "token is missing")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apiError(c, fiber.StatusUnauthorized, "token has expired")
		}
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	}
	if !token.Valid || claims.UserID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals(contextUserIDKey, claims.UserID)
	return c.Next()
}

// bearerToken accepts only the Bearer scheme; any other Authorization
// header shape is treated as no token at all.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(contextUserIDKey).(uint)
	return userID
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
