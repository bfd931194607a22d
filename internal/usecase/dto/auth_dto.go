package dto

import (
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
)

// RegisterInput is the data needed to open an account
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput holds user credentials
type LoginInput struct {
	Email    string
	Password string
}

// TokenResult is an issued access token
type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}
