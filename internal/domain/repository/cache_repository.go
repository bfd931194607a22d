package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheRepository is a string key-value store with expiry
type CacheRepository interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get returns ErrCacheMiss when the key is absent
	Get(ctx context.Context, key string) (string, error)

	Delete(ctx context.Context, key string) error
}

// PlanLocker serializes plan mutations per user
type PlanLocker interface {
	// Acquire returns a token for Release, or ErrPlanInProgress when the lock is held
	Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)

	// Release frees the lock if token still owns it
	Release(ctx context.Context, userID uuid.UUID, token string) error
}

// EventPublisher emits domain events
type EventPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}
