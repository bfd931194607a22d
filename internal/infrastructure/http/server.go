package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/shettypp/ai-syllabus-planner/internal/adapter/handler/http"
	"github.com/shettypp/ai-syllabus-planner/internal/config"
	"github.com/shettypp/ai-syllabus-planner/internal/middleware/auth"
	"github.com/shettypp/ai-syllabus-planner/pkg/logger"
)

// Handlers groups the HTTP handlers mounted by the server
type Handlers struct {
	Auth    *handlers.AuthHandler
	Plan    *handlers.PlanHandler
	Task    *handlers.TaskHandler
	Planner *handlers.PlannerHandler
	Tutor   *handlers.TutorHandler
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	handlers Handlers
}

func NewServer(cfg *config.Config, log *zap.Logger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Server.HTTP.Debug
	e.Validator = handlers.NewRequestValidator()
	e.Server.ReadTimeout = cfg.Server.HTTP.Timeout
	e.Server.WriteTimeout = cfg.Server.HTTP.Timeout

	logger.WithEchoLogger(e, log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(logger.NewEchoRequestLogger(log))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		handlers: h,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Start() error {
	addr := ":" + s.config.Server.HTTP.Port
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying echo instance
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
			"version": s.config.Service.Version,
		})
	})

	v1 := s.echo.Group("/api/v1")

	// Public routes
	v1.POST("/auth/register", s.handlers.Auth.Register)
	v1.POST("/auth/login", s.handlers.Auth.Login)

	protected := v1.Group("", auth.JWTMiddleware(auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	}))

	protected.POST("/plans", s.handlers.Plan.GeneratePlan)

	tasks := protected.Group("/tasks")
	tasks.POST("/reschedule", s.handlers.Plan.Reschedule)
	tasks.PATCH("/:id/status", s.handlers.Task.UpdateStatus)
	tasks.PUT("/:id/notes", s.handlers.Task.SaveNotes)

	planner := protected.Group("/planner")
	planner.GET("", s.handlers.Planner.GetPlanner)
	planner.GET("/export.ics", s.handlers.Planner.ExportICS)
	planner.GET("/export.xlsx", s.handlers.Planner.ExportXLSX)

	protected.GET("/dashboard", s.handlers.Planner.GetDashboard)

	tutor := protected.Group("/tutor")
	tutor.POST("/summarize", s.handlers.Tutor.Summarize)
	tutor.POST("/simplify", s.handlers.Tutor.Simplify)
	tutor.POST("/ask", s.handlers.Tutor.Ask)
}
