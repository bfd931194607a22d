package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

func setupTutorHandler() (*testServer, *MockTutorService) {
	svc := new(MockTutorService)
	h := NewTutorHandler(svc, zap.NewNop())

	s := newTestServer()
	s.protected.POST("/tutor/summarize", h.Summarize)
	s.protected.POST("/tutor/simplify", h.Simplify)
	s.protected.POST("/tutor/ask", h.Ask)
	return s, svc
}

func TestTutorHandler_Summarize(t *testing.T) {
	s, svc := setupTutorHandler()
	svc.On("Summarize", mock.Anything, "long text").Return("- point", nil)

	rec := s.do(http.MethodPost, "/api/v1/tutor/summarize", `{"text":"long text"}`, bearerToken(t, uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "- point", decodeBody(t, rec)["result"])
}

func TestTutorHandler_Simplify(t *testing.T) {
	s, svc := setupTutorHandler()
	svc.On("Simplify", mock.Anything, "entropy").Return("disorder", nil)

	rec := s.do(http.MethodPost, "/api/v1/tutor/simplify", `{"text":"entropy"}`, bearerToken(t, uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "disorder", decodeBody(t, rec)["result"])
}

func TestTutorHandler_AskMissingFields(t *testing.T) {
	s, svc := setupTutorHandler()
	svc.On("Ask", mock.Anything, "", "why?").
		Return("", errors.InvalidArgument("Context and question are required.", nil))

	rec := s.do(http.MethodPost, "/api/v1/tutor/ask", `{"question":"why?"}`, bearerToken(t, uuid.New()))

	assertError(t, rec, http.StatusBadRequest, "Context and question are required.")
}

func TestTutorHandler_ServiceUnavailable(t *testing.T) {
	s, svc := setupTutorHandler()
	svc.On("Ask", mock.Anything, "notes", "why?").
		Return("", errors.Unavailable("The AI service could not be reached.", errors.New("quota exceeded")))

	rec := s.do(http.MethodPost, "/api/v1/tutor/ask", `{"context":"notes","question":"why?"}`, bearerToken(t, uuid.New()))

	assertError(t, rec, http.StatusServiceUnavailable, "The AI service could not be reached.")
	assert.NotContains(t, rec.Body.String(), "quota")
}

func TestTutorHandler_RequiresToken(t *testing.T) {
	s, _ := setupTutorHandler()

	rec := s.do(http.MethodPost, "/api/v1/tutor/summarize", `{"text":"x"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
