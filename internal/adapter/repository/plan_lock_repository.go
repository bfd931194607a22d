package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
)

const planLockPrefix = "planner:lock:plan:"

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisPlanLocker struct {
	client redis.UniversalClient
}

// NewRedisPlanLocker creates a per-user lock on redis
func NewRedisPlanLocker(client redis.UniversalClient) repository.PlanLocker {
	return &redisPlanLocker{client: client}
}

func planLockKey(userID uuid.UUID) string {
	return planLockPrefix + userID.String()
}

func (l *redisPlanLocker) Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	token, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate lock token: %w", err)
	}

	ok, err := l.client.SetNX(ctx, planLockKey(userID), token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire plan lock: %w", err)
	}
	if !ok {
		return "", domainErrors.ErrPlanInProgress
	}
	return token, nil
}

func (l *redisPlanLocker) Release(ctx context.Context, userID uuid.UUID, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{planLockKey(userID)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release plan lock: %w", err)
	}
	return nil
}
