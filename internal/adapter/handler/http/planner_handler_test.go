package http

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/adapter/export"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

func setupPlannerHandler() (*testServer, *MockTaskService, *MockDashboardService) {
	tasks := new(MockTaskService)
	dashboard := new(MockDashboardService)
	h := NewPlannerHandler(tasks, dashboard, time.UTC, zap.NewNop())
	h.now = func() time.Time { return time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC) }

	s := newTestServer()
	s.protected.GET("/planner", h.GetPlanner)
	s.protected.GET("/planner/export.ics", h.ExportICS)
	s.protected.GET("/planner/export.xlsx", h.ExportXLSX)
	s.protected.GET("/dashboard", h.GetDashboard)
	return s, tasks, dashboard
}

func timeOf(h, m int) *scheduler.TimeOfDay {
	t := scheduler.Clock(h, m)
	return &t
}

func plannerTasks(userID uuid.UUID) []*entity.Task {
	monday := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return []*entity.Task{
		{ID: 1, UserID: userID, Subject: "Math", Topic: "Limits", DueDate: monday,
			StartTime: timeOf(15, 0), EndTime: timeOf(16, 30), TaskType: entity.TaskTypeStudy},
		{ID: 2, UserID: userID, Subject: "Math", Topic: "EXAM DAY", DueDate: monday.AddDate(0, 0, 1),
			TaskType: entity.TaskTypeBreak, IsComplete: true},
	}
}

func TestPlannerHandler_GetPlanner(t *testing.T) {
	s, tasks, _ := setupPlannerHandler()
	userID := uuid.New()
	all := plannerTasks(userID)
	tasks.On("Planner", mock.Anything, userID).Return([]dto.PlannerDay{
		{Date: all[0].DueDate, Tasks: all[:1]},
		{Date: all[1].DueDate, Tasks: all[1:]},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/planner", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	days := decodeBody(t, rec)["days"].([]interface{})
	require.Len(t, days, 2)

	first := days[0].(map[string]interface{})
	assert.Equal(t, "2024-01-15", first["date"])
	task := first["tasks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "15:00", task["start_time"])
	assert.Equal(t, "16:30", task["end_time"])
	assert.Equal(t, "study", task["task_type"])

	second := days[1].(map[string]interface{})
	exam := second["tasks"].([]interface{})[0].(map[string]interface{})
	assert.Nil(t, exam["start_time"])
	assert.Equal(t, true, exam["is_complete"])
}

func TestPlannerHandler_GetDashboard(t *testing.T) {
	s, _, dashboard := setupPlannerHandler()
	userID := uuid.New()
	dashboard.On("Get", mock.Anything, userID).Return(&dto.Dashboard{
		TotalTasks:           3,
		CompletedTasks:       1,
		CompletionPercentage: 33,
		TodaysTasks:          plannerTasks(userID)[:1],
		OverdueTasksExist:    true,
		ChartLabels:          []string{"Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Mon"},
		ChartData:            []int{0, 0, 0, 0, 0, 0, 1},
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/dashboard", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(33), body["completion_percentage"])
	assert.Equal(t, true, body["overdue_tasks_exist"])
	assert.Len(t, body["todays_tasks"], 1)
	assert.Equal(t, "Mon", body["chart_labels"].([]interface{})[6])
	assert.Equal(t, float64(1), body["chart_data"].([]interface{})[6])
}

func TestPlannerHandler_ExportICS(t *testing.T) {
	s, tasks, _ := setupPlannerHandler()
	userID := uuid.New()
	tasks.On("ListTasks", mock.Anything, userID).Return(plannerTasks(userID), nil)

	rec := s.do(http.MethodGet, "/api/v1/planner/export.ics", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ICSContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="study-plan.ics"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "BEGIN:VEVENT"))
	assert.Contains(t, rec.Body.String(), "DTSTART:20240115T150000Z")
	assert.Contains(t, rec.Body.String(), "DTSTAMP:20240115T080000Z")
}

func TestPlannerHandler_ExportXLSX(t *testing.T) {
	s, tasks, _ := setupPlannerHandler()
	userID := uuid.New()
	tasks.On("ListTasks", mock.Anything, userID).Return(plannerTasks(userID), nil)

	rec := s.do(http.MethodGet, "/api/v1/planner/export.xlsx", "", bearerToken(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.XLSXContentType, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.PlanSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestPlannerHandler_ServiceFailure(t *testing.T) {
	s, tasks, _ := setupPlannerHandler()
	userID := uuid.New()
	tasks.On("ListTasks", mock.Anything, userID).
		Return(nil, errors.Wrap(errors.New("connection refused"), "failed to load tasks"))

	rec := s.do(http.MethodGet, "/api/v1/planner/export.ics", "", bearerToken(t, userID))

	assertError(t, rec, http.StatusInternalServerError, "failed to load tasks")
}
