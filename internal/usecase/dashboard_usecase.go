package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

const chartDays = 7

// DashboardUsecase builds the progress overview
type DashboardUsecase struct {
	taskRepo repository.TaskRepository
	clock    Clock
	location *time.Location
	logger   *zap.Logger
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(taskRepo repository.TaskRepository, clock Clock, location *time.Location, logger *zap.Logger) *DashboardUsecase {
	return &DashboardUsecase{
		taskRepo: taskRepo,
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

// CompletionPercentage returns completed/total as a whole percentage, truncated
func CompletionPercentage(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(completed).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		IntPart())
}

// Get returns study progress, today's study tasks and the last week's completions
func (u *DashboardUsecase) Get(ctx context.Context, userID uuid.UUID) (*dto.Dashboard, error) {
	day := today(u.clock, u.location)

	total, err := u.taskRepo.CountByType(ctx, userID, entity.TaskTypeStudy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tasks")
	}

	completed, err := u.taskRepo.CountCompleted(ctx, userID, entity.TaskTypeStudy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed tasks")
	}

	todays, err := u.taskRepo.ListByDate(ctx, userID, day, entity.TaskTypeStudy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load today's tasks")
	}

	overdue, err := u.taskRepo.ExistsOverdue(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check overdue tasks")
	}

	from := day.AddDate(0, 0, -(chartDays - 1))
	perDay, err := u.taskRepo.CountCompletedByDueDate(ctx, userID, entity.TaskTypeStudy, from, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load completion history")
	}

	labels := make([]string, 0, chartDays)
	data := make([]int, 0, chartDays)
	for d := from; !d.After(day); d = d.AddDate(0, 0, 1) {
		labels = append(labels, d.Format("Mon"))
		data = append(data, perDay[d])
	}

	return &dto.Dashboard{
		TotalTasks:           total,
		CompletedTasks:       completed,
		CompletionPercentage: CompletionPercentage(completed, total),
		TodaysTasks:          todays,
		OverdueTasksExist:    overdue,
		ChartLabels:          labels,
		ChartData:            data,
	}, nil
}
