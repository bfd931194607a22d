package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
)

// AuthService registers users and issues tokens
type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResult, error)
}

// PlanService builds and rebalances study plans
type PlanService interface {
	GeneratePlan(ctx context.Context, userID uuid.UUID, input dto.GeneratePlanInput) (*dto.GeneratePlanResult, error)
	Reschedule(ctx context.Context, userID uuid.UUID) (*dto.RescheduleResult, error)
}

// TaskService reads and updates plan tasks
type TaskService interface {
	UpdateStatus(ctx context.Context, userID uuid.UUID, taskID int64, complete bool) error
	SaveNotes(ctx context.Context, userID uuid.UUID, taskID int64, notes string) error
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	Planner(ctx context.Context, userID uuid.UUID) ([]dto.PlannerDay, error)
}

// DashboardService summarizes a user's progress
type DashboardService interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error)
}

// TutorService answers study questions
type TutorService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Simplify(ctx context.Context, text string) (string, error)
	Ask(ctx context.Context, contextText, question string) (string, error)
}
