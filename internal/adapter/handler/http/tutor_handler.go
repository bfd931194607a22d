package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// TextRequest carries the text to summarize or simplify
type TextRequest struct {
	Text string `json:"text" validate:"max=20000"`
}

// AskRequest is the body of POST /api/v1/tutor/ask
type AskRequest struct {
	Context  string `json:"context" validate:"max=20000"`
	Question string `json:"question" validate:"max=2000"`
}

// TutorHandler exposes the study assistant
type TutorHandler struct {
	tutorService TutorService
	logger       *zap.Logger
}

// NewTutorHandler creates a new tutor handler instance
func NewTutorHandler(tutorService TutorService, logger *zap.Logger) *TutorHandler {
	return &TutorHandler{
		tutorService: tutorService,
		logger:       logger,
	}
}

// Summarize handles POST /api/v1/tutor/summarize
func (h *TutorHandler) Summarize(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.tutorService.Summarize(c.Request().Context(), req.Text)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"result": result})
}

// Simplify handles POST /api/v1/tutor/simplify
func (h *TutorHandler) Simplify(c echo.Context) error {
	var req TextRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.tutorService.Simplify(c.Request().Context(), req.Text)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"result": result})
}

// Ask handles POST /api/v1/tutor/ask
func (h *TutorHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.tutorService.Ask(c.Request().Context(), req.Context, req.Question)
	if err != nil {
		return errors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"result": result})
}
