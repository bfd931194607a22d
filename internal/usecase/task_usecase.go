package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// TaskUsecase reads and updates individual plan tasks
type TaskUsecase struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(taskRepo repository.TaskRepository, logger *zap.Logger) *TaskUsecase {
	return &TaskUsecase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ownedTask loads a task and checks it belongs to userID
func (u *TaskUsecase) ownedTask(ctx context.Context, userID uuid.UUID, taskID int64) (*entity.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrTaskNotFound) {
			return nil, errors.NotFound("Task not found")
		}
		return nil, errors.Wrap(err, "failed to load task")
	}

	if !task.OwnedBy(userID) {
		u.logger.Warn("task access denied",
			zap.String("user_id", userID.String()),
			zap.Int64("task_id", taskID))
		return nil, errors.Unauthorized("Unauthorized")
	}
	return task, nil
}

// UpdateStatus marks a task complete or incomplete
func (u *TaskUsecase) UpdateStatus(ctx context.Context, userID uuid.UUID, taskID int64, complete bool) error {
	if _, err := u.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := u.taskRepo.UpdateCompletion(ctx, taskID, complete); err != nil {
		if errors.Is(err, domainErrors.ErrTaskNotFound) {
			return errors.NotFound("Task not found")
		}
		return errors.Wrap(err, "failed to update task status")
	}
	return nil
}

// SaveNotes replaces the notes of a task
func (u *TaskUsecase) SaveNotes(ctx context.Context, userID uuid.UUID, taskID int64, notes string) error {
	if _, err := u.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := u.taskRepo.UpdateNotes(ctx, taskID, notes); err != nil {
		if errors.Is(err, domainErrors.ErrTaskNotFound) {
			return errors.NotFound("Task not found")
		}
		return errors.Wrap(err, "failed to save notes")
	}
	return nil
}

// ListTasks returns all tasks of the user in plan order
func (u *TaskUsecase) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := u.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tasks")
	}
	return tasks, nil
}

// Planner returns the user's tasks grouped by due date, earliest first
func (u *TaskUsecase) Planner(ctx context.Context, userID uuid.UUID) ([]dto.PlannerDay, error) {
	tasks, err := u.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := lo.PartitionBy(tasks, func(t *entity.Task) string {
		return t.DueDate.Format("2006-01-02")
	})

	days := make([]dto.PlannerDay, 0, len(groups))
	for _, group := range groups {
		days = append(days, dto.PlannerDay{Date: group[0].DueDate, Tasks: group})
	}
	return days, nil
}
