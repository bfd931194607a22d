package mapper

import (
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/model"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"gorm.io/datatypes"
)

// TaskToModel converts a task entity to its database model
func TaskToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	taskType := t.TaskType
	if taskType == "" {
		taskType = entity.TaskTypeStudy
	}

	return &model.Task{
		ID:         t.ID,
		UserID:     t.UserID,
		Subject:    t.Subject,
		Topic:      t.Topic,
		DueDate:    datatypes.Date(scheduler.DateOf(t.DueDate)),
		StartTime:  timeToModel(t.StartTime),
		EndTime:    timeToModel(t.EndTime),
		IsComplete: t.IsComplete,
		Notes:      t.Notes,
		TaskType:   string(taskType),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// TaskFromModel converts a database model to a task entity
func TaskFromModel(m *model.Task) *entity.Task {
	if m == nil {
		return nil
	}

	return &entity.Task{
		ID:         m.ID,
		UserID:     m.UserID,
		Subject:    m.Subject,
		Topic:      m.Topic,
		DueDate:    scheduler.DateOf(time.Time(m.DueDate)),
		StartTime:  timeFromModel(m.StartTime),
		EndTime:    timeFromModel(m.EndTime),
		IsComplete: m.IsComplete,
		Notes:      m.Notes,
		TaskType:   entity.TaskType(m.TaskType),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TasksFromModels converts a slice of models
func TasksFromModels(models []model.Task) []*entity.Task {
	tasks := make([]*entity.Task, 0, len(models))
	for i := range models {
		tasks = append(tasks, TaskFromModel(&models[i]))
	}
	return tasks
}

func timeToModel(t *scheduler.TimeOfDay) *datatypes.Time {
	if t == nil {
		return nil
	}
	v := datatypes.NewTime(t.Hour, t.Minute, 0, 0)
	return &v
}

func timeFromModel(t *datatypes.Time) *scheduler.TimeOfDay {
	if t == nil {
		return nil
	}
	d := time.Duration(*t)
	v := scheduler.Clock(int(d/time.Hour), int(d%time.Hour/time.Minute))
	return &v
}
