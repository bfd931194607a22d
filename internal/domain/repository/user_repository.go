package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
