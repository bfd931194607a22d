package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/middleware/auth"
	"github.com/shettypp/ai-syllabus-planner/pkg/logger"
)

const testSecret = "handler-test-secret"

// testServer mirrors the production echo setup: validator, JSON error
// handler and a JWT protected /api/v1 group.
type testServer struct {
	echo      *echo.Echo
	public    *echo.Group
	protected *echo.Group
}

func newTestServer() *testServer {
	e := echo.New()
	e.Validator = NewRequestValidator()
	logger.WithEchoLogger(e, zap.NewNop())

	v1 := e.Group("/api/v1")
	return &testServer{
		echo:   e,
		public: v1,
		protected: v1.Group("", auth.JWTMiddleware(auth.JWTConfig{
			Secret: testSecret,
			Logger: zap.NewNop(),
		})),
	}
}

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(userID, "ada@example.com", "Ada", time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func (s *testServer) do(method, path, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, message, decodeBody(t, rec)["error"])
}
