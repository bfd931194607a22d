package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// SubjectRequest is one subject of a plan request. Incomplete subjects are
// skipped rather than rejected; over-long fields are rejected.
type SubjectRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Topics   string `json:"topics" validate:"max=10000"`
	ExamDate string `json:"examDate"`
}

// GeneratePlanRequest is the body of POST /api/v1/plans
type GeneratePlanRequest struct {
	Subjects   []SubjectRequest `json:"subjects" validate:"max=50,dive"`
	HasClasses bool             `json:"has_classes"`
}

type unscheduledResponse struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	ExamDate string `json:"exam_date"`
}

type movedResponse struct {
	TaskID  int64  `json:"task_id"`
	DueDate string `json:"due_date"`
}

// PlanHandler handles plan generation and rescheduling
type PlanHandler struct {
	planService PlanService
	logger      *zap.Logger
}

// NewPlanHandler creates a new plan handler instance
func NewPlanHandler(planService PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      logger,
	}
}

// GeneratePlan handles POST /api/v1/plans
func (h *PlanHandler) GeneratePlan(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req GeneratePlanRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	input := dto.GeneratePlanInput{
		HasClasses: req.HasClasses,
		Subjects: lo.Map(req.Subjects, func(s SubjectRequest, _ int) dto.SubjectInput {
			return dto.SubjectInput{Name: s.Name, Topics: s.Topics, ExamDate: s.ExamDate}
		}),
	}

	result, err := h.planService.GeneratePlan(c.Request().Context(), userID, input)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	var horizon *string
	if result.Horizon != nil {
		formatted := result.Horizon.Format(time.DateOnly)
		horizon = &formatted
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":          true,
		"tasks_created":    result.TasksCreated,
		"skipped_subjects": result.SkippedSubjects,
		"dropped_topics":   result.DroppedTopics,
		"horizon":          horizon,
		"unscheduled": lo.Map(result.Unscheduled, func(u scheduler.UnscheduledTopic, _ int) unscheduledResponse {
			return unscheduledResponse{
				Subject:  u.Subject,
				Topic:    u.Topic,
				ExamDate: u.ExamDate.Format(time.DateOnly),
			}
		}),
	})
}

// Reschedule handles POST /api/v1/tasks/reschedule
func (h *PlanHandler) Reschedule(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	result, err := h.planService.Reschedule(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Message,
		"moved": lo.Map(result.Moved, func(m entity.DueDateChange, _ int) movedResponse {
			return movedResponse{TaskID: m.TaskID, DueDate: m.DueDate.Format(time.DateOnly)}
		}),
	})
}
