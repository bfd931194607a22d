package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase"
	appErrors "github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

func TestTaskUsecase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name     string
		setup    func(repo *MockTaskRepository)
		userID   uuid.UUID
		wantCode string
	}{
		{
			name: "owner completes task",
			setup: func(repo *MockTaskRepository) {
				repo.On("FindByID", ctx, int64(5)).Return(&entity.Task{ID: 5, UserID: owner}, nil)
				repo.On("UpdateCompletion", ctx, int64(5), true).Return(nil)
			},
			userID: owner,
		},
		{
			name: "missing task",
			setup: func(repo *MockTaskRepository) {
				repo.On("FindByID", ctx, int64(5)).Return(nil, domainErrors.ErrTaskNotFound)
			},
			userID:   owner,
			wantCode: appErrors.ErrNotFound,
		},
		{
			name: "another user's task",
			setup: func(repo *MockTaskRepository) {
				repo.On("FindByID", ctx, int64(5)).Return(&entity.Task{ID: 5, UserID: owner}, nil)
			},
			userID:   uuid.New(),
			wantCode: appErrors.ErrUnauthorized,
		},
		{
			name: "database failure",
			setup: func(repo *MockTaskRepository) {
				repo.On("FindByID", ctx, int64(5)).Return(&entity.Task{ID: 5, UserID: owner}, nil)
				repo.On("UpdateCompletion", ctx, int64(5), true).Return(errors.New("timeout"))
			},
			userID:   owner,
			wantCode: appErrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			tt.setup(repo)

			err := usecase.NewTaskUsecase(repo, zap.NewNop()).UpdateStatus(ctx, tt.userID, 5, true)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, appErrors.CodeOf(err))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskUsecase_SaveNotes(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := new(MockTaskRepository)
	repo.On("FindByID", ctx, int64(3)).Return(&entity.Task{ID: 3, UserID: owner}, nil)
	repo.On("UpdateNotes", ctx, int64(3), "read chapter 4").Return(nil)

	err := usecase.NewTaskUsecase(repo, zap.NewNop()).SaveNotes(ctx, owner, 3, "read chapter 4")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTaskUsecase_Planner(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tasks := []*entity.Task{
		{ID: 1, DueDate: date(0), Topic: "a"},
		{ID: 2, DueDate: date(0), Topic: "b"},
		{ID: 3, DueDate: date(1), Topic: "c"},
		{ID: 4, DueDate: date(3), Topic: "d"},
	}
	repo := new(MockTaskRepository)
	repo.On("ListByUser", ctx, userID).Return(tasks, nil)

	days, err := usecase.NewTaskUsecase(repo, zap.NewNop()).Planner(ctx, userID)

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, date(0), days[0].Date)
	assert.Len(t, days[0].Tasks, 2)
	assert.Equal(t, date(1), days[1].Date)
	assert.Equal(t, int64(4), days[2].Tasks[0].ID)
}
