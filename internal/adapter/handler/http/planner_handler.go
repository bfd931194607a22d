package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/adapter/export"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

type plannerDayResponse struct {
	Date  string         `json:"date"`
	Tasks []TaskResponse `json:"tasks"`
}

// PlannerHandler serves the read side of a plan: the day list, the
// dashboard and the calendar exports.
type PlannerHandler struct {
	taskService      TaskService
	dashboardService DashboardService
	location         *time.Location
	now              func() time.Time
	logger           *zap.Logger
}

// NewPlannerHandler creates a new planner handler instance. Timed export
// events are placed in location.
func NewPlannerHandler(taskService TaskService, dashboardService DashboardService, location *time.Location, logger *zap.Logger) *PlannerHandler {
	if location == nil {
		location = time.UTC
	}
	return &PlannerHandler{
		taskService:      taskService,
		dashboardService: dashboardService,
		location:         location,
		now:              time.Now,
		logger:           logger,
	}
}

// GetPlanner handles GET /api/v1/planner
func (h *PlannerHandler) GetPlanner(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	days, err := h.taskService.Planner(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"days": lo.Map(days, func(d dto.PlannerDay, _ int) plannerDayResponse {
			return plannerDayResponse{
				Date:  d.Date.Format(time.DateOnly),
				Tasks: newTaskResponses(d.Tasks),
			}
		}),
	})
}

// GetDashboard handles GET /api/v1/dashboard
func (h *PlannerHandler) GetDashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_tasks":           dashboard.TotalTasks,
		"completed_tasks":       dashboard.CompletedTasks,
		"completion_percentage": dashboard.CompletionPercentage,
		"todays_tasks":          newTaskResponses(dashboard.TodaysTasks),
		"overdue_tasks_exist":   dashboard.OverdueTasksExist,
		"chart_labels":          dashboard.ChartLabels,
		"chart_data":            dashboard.ChartData,
	})
}

// ExportICS handles GET /api/v1/planner/export.ics
func (h *PlannerHandler) ExportICS(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	body := export.BuildICS(tasks, h.location, h.now())
	setAttachment(c, "study-plan.ics")
	return c.Blob(http.StatusOK, export.ICSContentType, []byte(body))
}

// ExportXLSX handles GET /api/v1/planner/export.xlsx
func (h *PlannerHandler) ExportXLSX(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPError(err)
	}

	data, err := export.BuildXLSX(tasks)
	if err != nil {
		h.logger.Error("Failed to build spreadsheet export",
			zap.String("user_id", userID.String()),
			zap.Int("tasks", len(tasks)),
			zap.Error(err))
		return errors.ToHTTPError(errors.Internal("failed to export plan", err))
	}

	setAttachment(c, "study-plan.xlsx")
	return c.Blob(http.StatusOK, export.XLSXContentType, data)
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
