package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	handlers "github.com/shettypp/ai-syllabus-planner/internal/adapter/handler/http"
	"github.com/shettypp/ai-syllabus-planner/internal/adapter/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/config"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/provider"
	"github.com/shettypp/ai-syllabus-planner/internal/infrastructure/cache"
	"github.com/shettypp/ai-syllabus-planner/internal/infrastructure/database"
	"github.com/shettypp/ai-syllabus-planner/internal/infrastructure/events"
	grpcServer "github.com/shettypp/ai-syllabus-planner/internal/infrastructure/grpc"
	httpServer "github.com/shettypp/ai-syllabus-planner/internal/infrastructure/http"
	textProvider "github.com/shettypp/ai-syllabus-planner/internal/infrastructure/provider"
	"github.com/shettypp/ai-syllabus-planner/internal/middleware/auth"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase"
	"github.com/shettypp/ai-syllabus-planner/pkg/messaging"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to read .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.Logger
	defer logger.Sync()

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid planner timezone", zap.Error(err))
	}

	catalog, err := loadCatalog(cfg.Planner.TemplatesFile)
	if err != nil {
		logger.Fatal("Failed to load day templates", zap.String("path", cfg.Planner.TemplatesFile), zap.Error(err))
	}

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cache.Config{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	repos := database.NewRepositories(db, logger)
	cacheRepo := repository.NewRedisCacheRepository(redisClient, logger)
	locker := repository.NewRedisPlanLocker(redisClient)
	broker := messaging.NewRedisBroker(redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tutorModel provider.TextProvider
	tutorModel, err = textProvider.NewFactory(cfg, logger).GetProvider(ctx)
	if err != nil {
		logger.Warn("Tutor disabled, text provider unavailable",
			zap.String("provider", cfg.AI.Provider),
			zap.Error(err))
		tutorModel = nil
	}

	clock := usecase.RealClock{}
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	authUsecase := usecase.NewAuthUsecase(repos.User, issuer, clock, usecase.AuthOptions{
		PasswordMinLength: cfg.Auth.PasswordMinLength,
		HashCost:          cfg.Auth.HashCost,
	}, logger)
	planUsecase := usecase.NewPlanUsecase(repos.Task, locker, broker, clock, usecase.PlanOptions{
		Catalog:  catalog,
		Location: location,
		LockTTL:  cfg.Planner.LockTTL,
		DailyCap: cfg.Planner.DailyCap,
	}, logger)
	taskUsecase := usecase.NewTaskUsecase(repos.Task, logger)
	dashboardUsecase := usecase.NewDashboardUsecase(repos.Task, clock, location, logger)
	tutorUsecase := usecase.NewTutorUsecase(tutorModel, cacheRepo, cfg.AI.CacheTTL, logger)

	httpSrv := httpServer.NewServer(cfg, logger, httpServer.Handlers{
		Auth:    handlers.NewAuthHandler(authUsecase, logger),
		Plan:    handlers.NewPlanHandler(planUsecase, logger),
		Task:    handlers.NewTaskHandler(taskUsecase, logger),
		Planner: handlers.NewPlannerHandler(taskUsecase, dashboardUsecase, location, logger),
		Tutor:   handlers.NewTutorHandler(tutorUsecase, logger),
	})
	grpcSrv := grpcServer.NewServer(
		grpcServer.WithPort(cfg.Server.GRPC.Port),
		grpcServer.WithLogger(logger),
	)

	listener := events.NewListener(broker, logger, usecase.ChannelPlanGenerated, usecase.ChannelTasksRescheduled)
	go func() {
		if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Plan event listener stopped", zap.Error(err))
		}
	}()

	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Fatal("Failed to start gRPC server", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down servers...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}
	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown gRPC server", zap.Error(err))
	}

	logger.Info("Servers shut down successfully")
}

// loadCatalog reads the day templates from path, or returns the built-in
// ones when no path is configured.
func loadCatalog(path string) (*scheduler.Catalog, error) {
	if path == "" {
		return scheduler.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open templates file: %w", err)
	}
	defer f.Close()

	return scheduler.LoadCatalog(f)
}
