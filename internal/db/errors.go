// Sentinel errors shared by every repository so handlers can translate
// storage failures into the right HTTP status without inspecting driver
// error strings themselves.
package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a unique constraint rejects a write, such as
// registering an email twice or logging the same day twice.
var ErrConflict = errors.New("conflict")

// ErrForeignKey is returned when a write references a user that does not
// exist. Enforced by sqlite itself (foreign_keys pragma), not by handlers.
var ErrForeignKey = errors.New("referenced user does not exist")

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	message := err.Error()
	if strings.Contains(message, "UNIQUE constraint failed") {
		return ErrConflict
	}
	if strings.Contains(message, "FOREIGN KEY constraint failed") {
		return ErrForeignKey
	}
	return err
}
