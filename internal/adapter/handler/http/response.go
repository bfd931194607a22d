package http

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/middleware/auth"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// TaskResponse is the JSON view of a task
type TaskResponse struct {
	ID         int64                `json:"id"`
	Subject    string               `json:"subject"`
	Topic      string               `json:"topic"`
	DueDate    string               `json:"due_date"`
	StartTime  *scheduler.TimeOfDay `json:"start_time"`
	EndTime    *scheduler.TimeOfDay `json:"end_time"`
	IsComplete bool                 `json:"is_complete"`
	Notes      string               `json:"notes"`
	TaskType   string               `json:"task_type"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		Subject:    t.Subject,
		Topic:      t.Topic,
		DueDate:    t.DueDate.Format(time.DateOnly),
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		IsComplete: t.IsComplete,
		Notes:      t.Notes,
		TaskType:   string(t.TaskType),
	}
}

func newTaskResponses(tasks []*entity.Task) []TaskResponse {
	return lo.Map(tasks, func(t *entity.Task, _ int) TaskResponse {
		return newTaskResponse(t)
	})
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

// currentUserID returns the id of the authenticated caller
func currentUserID(c echo.Context) (uuid.UUID, error) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		return uuid.Nil, errors.ToHTTPError(errors.Unauthenticated("unauthorized"))
	}
	return user.UserID, nil
}

// taskIDParam parses the :id path parameter
func taskIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ToHTTPError(errors.InvalidArgument("invalid task id", err))
	}
	return id, nil
}
