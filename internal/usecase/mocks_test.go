package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/provider"
)

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, tasks []*entity.Task) error {
	args := m.Called(ctx, userID, tasks)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time, taskType entity.TaskType) ([]*entity.Task, error) {
	args := m.Called(ctx, userID, date, taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateCompletion(ctx context.Context, id int64, complete bool) error {
	args := m.Called(ctx, id, complete)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *MockTaskRepository) ListOverdue(ctx context.Context, userID uuid.UUID, today time.Time) ([]*entity.Task, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) CountByDateAfter(ctx context.Context, userID uuid.UUID, today time.Time) (map[time.Time]int, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Time]int), args.Error(1)
}

func (m *MockTaskRepository) ApplyReassignments(ctx context.Context, userID uuid.UUID, changes []entity.DueDateChange) error {
	args := m.Called(ctx, userID, changes)
	return args.Error(0)
}

func (m *MockTaskRepository) CountByType(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error) {
	args := m.Called(ctx, userID, taskType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) CountCompleted(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error) {
	args := m.Called(ctx, userID, taskType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) ExistsOverdue(ctx context.Context, userID uuid.UUID, today time.Time) (bool, error) {
	args := m.Called(ctx, userID, today)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) CountCompletedByDueDate(ctx context.Context, userID uuid.UUID, taskType entity.TaskType, from, to time.Time) (map[time.Time]int, error) {
	args := m.Called(ctx, userID, taskType, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Time]int), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockPlanLocker is a mock implementation of PlanLocker
type MockPlanLocker struct {
	mock.Mock
}

func (m *MockPlanLocker) Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockPlanLocker) Release(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

// MockCacheRepository is a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockTextProvider is a mock implementation of TextProvider
type MockTextProvider struct {
	mock.Mock
}

func (m *MockTextProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextProvider) Name() provider.ProviderType {
	return provider.ProviderTypeGoogleAI
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID uuid.UUID, email, name string, now time.Time) (string, time.Time, error) {
	args := m.Called(userID, email, name, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
