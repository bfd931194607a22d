package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns a study plan
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
