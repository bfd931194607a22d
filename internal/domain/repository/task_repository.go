package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
)

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	// ReplaceForUser deletes every task of the user and inserts tasks in one transaction
	ReplaceForUser(ctx context.Context, userID uuid.UUID, tasks []*entity.Task) error

	// ListByUser returns the user's tasks ordered by due date and start time
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// ListByDate returns the user's tasks of one type due on date, ordered by start time
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time, taskType entity.TaskType) ([]*entity.Task, error)

	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	UpdateCompletion(ctx context.Context, id int64, complete bool) error
	UpdateNotes(ctx context.Context, id int64, notes string) error

	// ListOverdue returns incomplete tasks due before today, oldest first
	ListOverdue(ctx context.Context, userID uuid.UUID, today time.Time) ([]*entity.Task, error)

	// CountByDateAfter counts tasks per due date for dates after today
	CountByDateAfter(ctx context.Context, userID uuid.UUID, today time.Time) (map[time.Time]int, error)

	// ApplyReassignments updates due dates in one transaction
	ApplyReassignments(ctx context.Context, userID uuid.UUID, changes []entity.DueDateChange) error

	CountByType(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error)
	CountCompleted(ctx context.Context, userID uuid.UUID, taskType entity.TaskType) (int64, error)
	ExistsOverdue(ctx context.Context, userID uuid.UUID, today time.Time) (bool, error)

	// CountCompletedByDueDate counts completed tasks per due date in [from, to]
	CountCompletedByDueDate(ctx context.Context, userID uuid.UUID, taskType entity.TaskType, from, to time.Time) (map[time.Time]int, error)
}
