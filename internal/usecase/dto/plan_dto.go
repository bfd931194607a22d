package dto

import (
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
)

// SubjectInput is a subject as entered by the user
type SubjectInput struct {
	Name     string `json:"name"`
	Topics   string `json:"topics"`
	ExamDate string `json:"examDate"`
}

// GeneratePlanInput is the request to rebuild a user's plan
type GeneratePlanInput struct {
	Subjects   []SubjectInput
	HasClasses bool
}

// GeneratePlanResult summarizes a generated plan
type GeneratePlanResult struct {
	TasksCreated    int
	SkippedSubjects int
	// DroppedTopics counts topics too long to store, in subjects that were kept
	DroppedTopics int
	// Horizon is nil when no subject was valid
	Horizon     *time.Time
	Unscheduled []scheduler.UnscheduledTopic
}

// RescheduleResult summarizes a rebalancing run
type RescheduleResult struct {
	Moved   []entity.DueDateChange
	Message string
}

// PlannerDay groups the tasks due on one date
type PlannerDay struct {
	Date  time.Time
	Tasks []*entity.Task
}

// PlanGeneratedEvent is published after a plan is replaced
type PlanGeneratedEvent struct {
	UserID       string    `json:"user_id"`
	TasksCreated int       `json:"tasks_created"`
	Unscheduled  int       `json:"unscheduled"`
	Horizon      string    `json:"horizon,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// TasksRescheduledEvent is published after overdue tasks are moved
type TasksRescheduledEvent struct {
	UserID      string    `json:"user_id"`
	Moved       int       `json:"moved"`
	LastDueDate string    `json:"last_due_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
