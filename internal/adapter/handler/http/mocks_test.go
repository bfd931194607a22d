package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input dto.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResult), args.Error(1)
}

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, userID uuid.UUID, input dto.GeneratePlanInput) (*dto.GeneratePlanResult, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GeneratePlanResult), args.Error(1)
}

func (m *MockPlanService) Reschedule(ctx context.Context, userID uuid.UUID) (*dto.RescheduleResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RescheduleResult), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, userID uuid.UUID, taskID int64, complete bool) error {
	return m.Called(ctx, userID, taskID, complete).Error(0)
}

func (m *MockTaskService) SaveNotes(ctx context.Context, userID uuid.UUID, taskID int64, notes string) error {
	return m.Called(ctx, userID, taskID, notes).Error(0)
}

func (m *MockTaskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskService) Planner(ctx context.Context, userID uuid.UUID) ([]dto.PlannerDay, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PlannerDay), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Get(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Dashboard), args.Error(1)
}

type MockTutorService struct {
	mock.Mock
}

func (m *MockTutorService) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockTutorService) Simplify(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockTutorService) Ask(ctx context.Context, contextText, question string) (string, error) {
	args := m.Called(ctx, contextText, question)
	return args.String(0), args.Error(1)
}
