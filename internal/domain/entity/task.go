package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
)

// TaskType separates study work from blocked time
type TaskType string

const (
	TaskTypeStudy TaskType = "study"
	TaskTypeBreak TaskType = "break"
)

// Column widths of the tasks table, in characters.
const (
	MaxSubjectLength = 100
	MaxTopicLength   = 200
)

// Task is one scheduled item of a user's plan
type Task struct {
	ID         int64
	UserID     uuid.UUID
	Subject    string
	Topic      string
	DueDate    time.Time
	StartTime  *scheduler.TimeOfDay
	EndTime    *scheduler.TimeOfDay
	IsComplete bool
	Notes      string
	TaskType   TaskType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnedBy reports whether the task belongs to userID
func (t *Task) OwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// IsTimed reports whether the task has both a start and an end time
func (t *Task) IsTimed() bool {
	return t.StartTime != nil && t.EndTime != nil
}

// DueDateChange moves a task to another date
type DueDateChange struct {
	TaskID  int64
	DueDate time.Time
}
