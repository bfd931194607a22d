package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// UpdateStatusRequest is the body of PATCH /api/v1/tasks/:id/status
type UpdateStatusRequest struct {
	IsComplete *bool `json:"is_complete" validate:"required"`
}

// SaveNotesRequest is the body of PUT /api/v1/tasks/:id/notes
type SaveNotesRequest struct {
	Notes string `json:"notes" validate:"max=10000"`
}

// TaskHandler handles task mutations
type TaskHandler struct {
	taskService TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(taskService TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// UpdateStatus handles PATCH /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateStatus(c.Request().Context(), userID, taskID, *req.IsComplete); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// SaveNotes handles PUT /api/v1/tasks/:id/notes
func (h *TaskHandler) SaveNotes(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req SaveNotesRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	if err := h.taskService.SaveNotes(c.Request().Context(), userID, taskID, req.Notes); err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Notes saved.",
	})
}
