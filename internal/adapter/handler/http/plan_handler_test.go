package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

func setupPlanHandler() (*testServer, *MockPlanService) {
	svc := new(MockPlanService)
	h := NewPlanHandler(svc, zap.NewNop())

	s := newTestServer()
	s.protected.POST("/plans", h.GeneratePlan)
	s.protected.POST("/tasks/reschedule", h.Reschedule)
	return s, svc
}

func TestPlanHandler_GeneratePlan(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	horizon := time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC)

	svc.On("GeneratePlan", mock.Anything, userID, dto.GeneratePlanInput{
		HasClasses: true,
		Subjects: []dto.SubjectInput{
			{Name: "Math", Topics: "Limits, Derivatives", ExamDate: "2024-01-20"},
		},
	}).Return(&dto.GeneratePlanResult{
		TasksCreated: 11,
		Horizon:      &horizon,
		Unscheduled: []scheduler.UnscheduledTopic{
			{Subject: "Math", Topic: "Integrals", ExamDate: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)},
		},
	}, nil)

	rec := s.do(http.MethodPost, "/api/v1/plans",
		`{"subjects":[{"name":"Math","topics":"Limits, Derivatives","examDate":"2024-01-20"}],"has_classes":true}`,
		bearerToken(t, userID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(11), body["tasks_created"])
	assert.Equal(t, "2024-01-19", body["horizon"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"subject": "Math", "topic": "Integrals", "exam_date": "2024-01-20"},
	}, body["unscheduled"])
	svc.AssertExpectations(t)
}

func TestPlanHandler_GeneratePlanClearsWithoutHorizon(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	svc.On("GeneratePlan", mock.Anything, userID, mock.Anything).
		Return(&dto.GeneratePlanResult{SkippedSubjects: 1}, nil)

	rec := s.do(http.MethodPost, "/api/v1/plans",
		`{"subjects":[{"name":"","topics":"","examDate":""}]}`, bearerToken(t, userID))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Nil(t, body["horizon"])
	assert.Equal(t, float64(0), body["tasks_created"])
	assert.Equal(t, float64(1), body["skipped_subjects"])
	assert.Equal(t, []interface{}{}, body["unscheduled"])
}

func TestPlanHandler_RequiresToken(t *testing.T) {
	s, svc := setupPlanHandler()

	rec := s.do(http.MethodPost, "/api/v1/plans", `{"subjects":[]}`, "")

	assertError(t, rec, http.StatusUnauthorized, "Authorization header required")
	svc.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanHandler_GeneratePlanInProgress(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	svc.On("GeneratePlan", mock.Anything, userID, mock.Anything).
		Return(nil, errors.Conflict("plan generation already in progress", nil))

	rec := s.do(http.MethodPost, "/api/v1/plans", `{"subjects":[]}`, bearerToken(t, userID))

	assertError(t, rec, http.StatusConflict, "plan generation already in progress")
}

func TestPlanHandler_Reschedule(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	svc.On("Reschedule", mock.Anything, userID).Return(&dto.RescheduleResult{
		Message: "Rescheduled 2 overdue tasks.",
		Moved: []entity.DueDateChange{
			{TaskID: 4, DueDate: time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)},
			{TaskID: 9, DueDate: time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)},
		},
	}, nil)

	rec := s.do(http.MethodPost, "/api/v1/tasks/reschedule", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Rescheduled 2 overdue tasks.", body["message"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"task_id": float64(4), "due_date": "2024-01-16"},
		map[string]interface{}{"task_id": float64(9), "due_date": "2024-01-16"},
	}, body["moved"])
}

func TestPlanHandler_RescheduleNothingOverdue(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	svc.On("Reschedule", mock.Anything, userID).
		Return(&dto.RescheduleResult{Message: "No overdue tasks to reschedule."}, nil)

	rec := s.do(http.MethodPost, "/api/v1/tasks/reschedule", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No overdue tasks to reschedule.", body["message"])
	assert.Equal(t, []interface{}{}, body["moved"])
}

func TestPlanHandler_GeneratePlanRejectsOversizedInput(t *testing.T) {
	manySubjects := make([]string, 51)
	for i := range manySubjects {
		manySubjects[i] = `{"name":"S","topics":"t","examDate":"2024-01-20"}`
	}

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "subject name too long",
			body:    fmt.Sprintf(`{"subjects":[{"name":%q,"topics":"a","examDate":"2024-01-20"}]}`, strings.Repeat("n", 101)),
			message: "name must be at most 100 characters",
		},
		{
			name:    "too many subjects",
			body:    `{"subjects":[` + strings.Join(manySubjects, ",") + `]}`,
			message: "subjects must have at most 50 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, svc := setupPlanHandler()

			rec := s.do(http.MethodPost, "/api/v1/plans", tt.body, bearerToken(t, uuid.New()))

			assertError(t, rec, http.StatusBadRequest, tt.message)
			svc.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPlanHandler_GeneratePlanReportsDroppedTopics(t *testing.T) {
	s, svc := setupPlanHandler()
	userID := uuid.New()
	longTopic := strings.Repeat("x", 250)

	svc.On("GeneratePlan", mock.Anything, userID, dto.GeneratePlanInput{
		Subjects: []dto.SubjectInput{
			{Name: "Math", Topics: "Limits," + longTopic, ExamDate: "2024-01-20"},
		},
	}).Return(&dto.GeneratePlanResult{TasksCreated: 4, DroppedTopics: 1}, nil)

	rec := s.do(http.MethodPost, "/api/v1/plans",
		fmt.Sprintf(`{"subjects":[{"name":"Math","topics":"Limits,%s","examDate":"2024-01-20"}]}`, longTopic),
		bearerToken(t, userID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["dropped_topics"])
	assert.Equal(t, float64(4), body["tasks_created"])
	svc.AssertExpectations(t)
}
