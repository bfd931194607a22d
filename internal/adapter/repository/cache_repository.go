package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type redisCacheRepository struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// NewRedisCacheRepository creates a cache backed by redis
func NewRedisCacheRepository(client redis.UniversalClient, logger *zap.Logger) repository.CacheRepository {
	return &redisCacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *redisCacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.logger.Error("Redis set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *redisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domainErrors.ErrCacheMiss
		}
		r.logger.Error("Redis get failed", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return value, nil
}

func (r *redisCacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
