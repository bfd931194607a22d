package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/internal/scheduler"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

const (
	ChannelPlanGenerated    = "plan.generated"
	ChannelTasksRescheduled = "tasks.rescheduled"

	MessageNothingToReschedule = "No overdue tasks to reschedule."

	defaultLockTTL = 30 * time.Second
)

// PlanOptions tunes plan generation
type PlanOptions struct {
	Catalog  *scheduler.Catalog
	Location *time.Location
	LockTTL  time.Duration
	DailyCap int
}

// PlanUsecase generates and rebalances study plans
type PlanUsecase struct {
	taskRepo  repository.TaskRepository
	locker    repository.PlanLocker
	publisher repository.EventPublisher
	clock     Clock
	opts      PlanOptions
	logger    *zap.Logger
}

// NewPlanUsecase creates a new plan usecase
func NewPlanUsecase(
	taskRepo repository.TaskRepository,
	locker repository.PlanLocker,
	publisher repository.EventPublisher,
	clock Clock,
	opts PlanOptions,
	logger *zap.Logger,
) *PlanUsecase {
	if opts.Catalog == nil {
		opts.Catalog = scheduler.DefaultCatalog()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}
	if opts.DailyCap <= 0 {
		opts.DailyCap = scheduler.DefaultDailyCap
	}

	return &PlanUsecase{
		taskRepo:  taskRepo,
		locker:    locker,
		publisher: publisher,
		clock:     clock,
		opts:      opts,
		logger:    logger,
	}
}

// withLock runs fn while holding the user's plan lock
func (u *PlanUsecase) withLock(ctx context.Context, userID uuid.UUID, fn func() error) error {
	token, err := u.locker.Acquire(ctx, userID, u.opts.LockTTL)
	if err != nil {
		if errors.Is(err, domainErrors.ErrPlanInProgress) {
			return errors.Conflict(domainErrors.ErrPlanInProgress.Error(), err)
		}
		return errors.Internal("failed to lock plan", err)
	}

	defer func() {
		if err := u.locker.Release(context.WithoutCancel(ctx), userID, token); err != nil {
			u.logger.Warn("failed to release plan lock",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}()

	return fn()
}

// GeneratePlan replaces the user's tasks with a freshly generated plan
func (u *PlanUsecase) GeneratePlan(ctx context.Context, userID uuid.UUID, input dto.GeneratePlanInput) (*dto.GeneratePlanResult, error) {
	now := u.clock.Now()
	day := today(u.clock, u.opts.Location)
	subjects, skipped, dropped := ParseSubjects(input.Subjects, day)

	result := &dto.GeneratePlanResult{SkippedSubjects: skipped, DroppedTopics: dropped}

	err := u.withLock(ctx, userID, func() error {
		plan := scheduler.Generate(scheduler.Request{
			Subjects:   subjects,
			Today:      day,
			HasClasses: input.HasClasses,
			Catalog:    u.opts.Catalog,
		})

		for _, t := range plan.Unscheduled {
			u.logger.Warn("topic did not fit before its exam",
				zap.String("user_id", userID.String()),
				zap.String("subject", t.Subject),
				zap.String("topic", t.Topic),
				zap.String("exam_date", t.ExamDate.Format(time.DateOnly)))
		}

		tasks := draftsToTasks(userID, plan.Drafts())
		if err := u.taskRepo.ReplaceForUser(ctx, userID, tasks); err != nil {
			return errors.Wrap(err, "failed to save plan")
		}

		result.TasksCreated = len(tasks)
		result.Unscheduled = plan.Unscheduled
		if plan.Calendar.Len() > 0 {
			horizon := plan.Calendar.Horizon()
			result.Horizon = &horizon
		}
		return nil
	})
	if err != nil {
		errors.LogError(u.logger, err, "failed to generate plan", zap.String("user_id", userID.String()))
		return nil, err
	}

	event := dto.PlanGeneratedEvent{
		UserID:       userID.String(),
		TasksCreated: result.TasksCreated,
		Unscheduled:  len(result.Unscheduled),
		GeneratedAt:  now,
	}
	if result.Horizon != nil {
		event.Horizon = result.Horizon.Format(time.DateOnly)
	}
	u.publish(ctx, ChannelPlanGenerated, event)

	u.logger.Info("plan generated",
		zap.String("user_id", userID.String()),
		zap.Int("subjects", len(subjects)),
		zap.Int("skipped_subjects", skipped),
		zap.Int("dropped_topics", dropped),
		zap.Int("tasks", result.TasksCreated),
		zap.Int("unscheduled", len(result.Unscheduled)))

	return result, nil
}

// Reschedule moves the user's overdue incomplete tasks onto upcoming days
func (u *PlanUsecase) Reschedule(ctx context.Context, userID uuid.UUID) (*dto.RescheduleResult, error) {
	day := today(u.clock, u.opts.Location)
	result := &dto.RescheduleResult{}

	err := u.withLock(ctx, userID, func() error {
		overdue, err := u.taskRepo.ListOverdue(ctx, userID, day)
		if err != nil {
			return errors.Wrap(err, "failed to load overdue tasks")
		}
		if len(overdue) == 0 {
			result.Message = MessageNothingToReschedule
			return nil
		}

		counts, err := u.taskRepo.CountByDateAfter(ctx, userID, day)
		if err != nil {
			return errors.Wrap(err, "failed to count upcoming tasks")
		}

		ids := lo.Map(overdue, func(t *entity.Task, _ int) int64 { return t.ID })
		moves := scheduler.Rebalance(day, ids, counts, u.opts.DailyCap)
		changes := lo.Map(moves, func(m scheduler.Reassignment, _ int) entity.DueDateChange {
			return entity.DueDateChange{TaskID: m.TaskID, DueDate: m.DueDate}
		})

		if err := u.taskRepo.ApplyReassignments(ctx, userID, changes); err != nil {
			return errors.Wrap(err, "failed to reschedule tasks")
		}

		result.Moved = changes
		result.Message = fmt.Sprintf("Rescheduled %d overdue tasks.", len(changes))
		return nil
	})
	if err != nil {
		errors.LogError(u.logger, err, "failed to reschedule tasks", zap.String("user_id", userID.String()))
		return nil, err
	}

	if len(result.Moved) > 0 {
		u.publish(ctx, ChannelTasksRescheduled, dto.TasksRescheduledEvent{
			UserID:      userID.String(),
			Moved:       len(result.Moved),
			LastDueDate: result.Moved[len(result.Moved)-1].DueDate.Format(time.DateOnly),
			OccurredAt:  u.clock.Now(),
		})
	}

	return result, nil
}

// publish is best effort; the plan is already committed
func (u *PlanUsecase) publish(ctx context.Context, channel string, event interface{}) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, channel, event); err != nil {
		u.logger.Warn("failed to publish event",
			zap.String("channel", channel),
			zap.Error(err))
	}
}

func draftsToTasks(userID uuid.UUID, drafts []scheduler.Draft) []*entity.Task {
	return lo.Map(drafts, func(d scheduler.Draft, _ int) *entity.Task {
		start, end := d.Start, d.End
		return &entity.Task{
			UserID:    userID,
			Subject:   d.Subject,
			Topic:     d.Topic,
			DueDate:   d.Date,
			StartTime: &start,
			EndTime:   &end,
			TaskType:  entity.TaskType(d.Kind),
		}
	})
}
