package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shettypp/ai-syllabus-planner/internal/adapter/mapper"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/model"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type taskRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB, logger *zap.Logger) repository.TaskRepository {
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// dateArg renders a civil date so postgres compares it as a date, not a timestamp
func dateArg(t time.Time) string {
	return scheduler.DateOf(t).Format(time.DateOnly)
}

func (r *taskRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, tasks []*entity.Task) error {
	models := make([]*model.Task, 0, len(tasks))
	for _, t := range tasks {
		t.UserID = userID
		models = append(models, mapper.TaskToModel(t))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace tasks",
			zap.String("user_id", userID.String()),
			zap.Int("count", len(tasks)),
			zap.Error(err),
		)
		return err
	}

	for i, m := range models {
		tasks[i].ID = m.ID
	}
	return nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var models []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, start_time ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return mapper.TasksFromModels(models), nil
}

func (r *taskRepository) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time, taskType entity.TaskType) ([]*entity.Task, error) {
	var models []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date = ? AND task_type = ?", userID, dateArg(date), string(taskType)).
		Order("start_time ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for date: %w", err)
	}
	return mapper.TasksFromModels(models), nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var m model.Task
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return mapper.TaskFromModel(&m), nil
}

func (r *taskRepository) UpdateCompletion(ctx context.Context, id int64, complete bool) error {
	return r.update(ctx, id, map[string]interface{}{"is_complete": complete})
}

func (r *taskRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.update(ctx, id, map[string]interface{}{"notes": notes})
}

func (r *taskRepository) update(ctx context.Context, id int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) ListOverdue(ctx context.Context, userID uuid.UUID, today time.Time) ([]*entity.Task, error) {
	var models []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ? AND due_date < ?", userID, false, dateArg(today)).
		Order("due_date ASC, start_time ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue tasks: %w", err)
	}
	return mapper.TasksFromModels(models), nil
}

type dateCount struct {
	DueDate time.Time
	Count   int
}

func toDateCounts(rows []dateCount) map[time.Time]int {
	counts := make(map[time.Time]int, len(rows))
	for _, row := range rows {
		counts[scheduler.DateOf(row.DueDate)] += row.Count
	}
	return counts
}

func (r *taskRepository) CountByDateAfter(ctx context.Context, userID uuid.UUID, today time.Time) (map[time.Time]int, error) {
	var rows []dateCount
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("due_date, COUNT(*) AS count").
		Where("user_id = ? AND due_date > ?", userID, dateArg(today)).
		Group("due_date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count future tasks: %w", err)
	}
	return toDateCounts(rows), nil
}

func (r *taskRepository) ApplyReassignments(ctx context.Context, userID uuid.UUID, changes []entity.DueDateChange) error {
	if len(changes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, c := range changes {
			err := tx.Model(&model.Task{}).
				Where("id = ? AND user_id = ?", c.TaskID, userID).
				Updates(map[string]interface{}{"due_date": dateArg(c.DueDate), "updated_at": now}).Error
			if err != nil {
				r.logger.Error("Failed to move task",
					zap.Int64("task_id", c.TaskID),
					zap.Error(err),
				)
				return fmt.Errorf("failed to move task %d: %w", c.TaskID, err)
			}
		}
		return nil
	})
}

func (r *taskRepository) CountByType(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("user_id = ? AND task_type = ?", userID, string(taskType)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

func (r *taskRepository) CountCompleted(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("user_id = ? AND task_type = ? AND is_complete = ?", userID, string(taskType), true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	return count, nil
}

func (r *taskRepository) ExistsOverdue(ctx context.Context, userID uuid.UUID, today time.Time) (bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("user_id = ? AND is_complete = ? AND due_date < ?", userID, false, dateArg(today)).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("failed to check overdue tasks: %w", err)
	}
	return len(ids) > 0, nil
}

func (r *taskRepository) CountCompletedByDueDate(ctx context.Context, userID uuid.UUID, taskType entity.TaskType, from, to time.Time) (map[time.Time]int, error) {
	var rows []dateCount
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("due_date, COUNT(*) AS count").
		Where("user_id = ? AND task_type = ? AND is_complete = ? AND due_date BETWEEN ? AND ?",
			userID, string(taskType), true, dateArg(from), dateArg(to)).
		Group("due_date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks by date: %w", err)
	}
	return toDateCounts(rows), nil
}
