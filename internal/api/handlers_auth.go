package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if validationError := validateRegistrationCredentials(credentials); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(credentials.Email)
	if err != nil {
		return storageError(c, err)
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), handler.bcryptCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(passwordHash),
		DisplayName:  credentials.DisplayName,
		Age:          credentials.Age,
		CreatedAt:    time.Now(),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		return storageError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"token":   token,
		"user":    user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := handler.repos.Users.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return storageError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	if err := handler.repos.Users.TouchLastLogin(user.ID, now); err != nil {
		return storageError(c, err)
	}
	user.LastLoginAt = &now

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, err := handler.repos.Users.FindByID(currentUserID(c))
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	if err := handler.repos.Users.DeleteAccount(currentUserID(c)); err != nil {
		return storageError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
