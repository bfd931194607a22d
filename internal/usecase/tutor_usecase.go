package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/shettypp/ai-syllabus-planner/internal/domain/errors"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/provider"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

const tutorCachePrefix = "planner:tutor:"

// TutorUsecase answers study questions through a language model
type TutorUsecase struct {
	provider provider.TextProvider
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewTutorUsecase creates a new tutor usecase. textProvider may be nil when no
// model is configured; every call then reports the service as unavailable.
func NewTutorUsecase(textProvider provider.TextProvider, cache repository.CacheRepository, cacheTTL time.Duration, logger *zap.Logger) *TutorUsecase {
	return &TutorUsecase{
		provider: textProvider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Summarize condenses text into key bullet points
func (u *TutorUsecase) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.InvalidArgument("text is required", nil)
	}
	return u.generate(ctx, "Summarize the following text into key bullet points:\n\n"+text)
}

// Simplify explains a concept in simple terms
func (u *TutorUsecase) Simplify(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.InvalidArgument("text is required", nil)
	}
	return u.generate(ctx, "Explain the following concept in simple terms:\n\n"+text)
}

// Ask answers question using only the given context
func (u *TutorUsecase) Ask(ctx context.Context, contextText, question string) (string, error) {
	if strings.TrimSpace(contextText) == "" || strings.TrimSpace(question) == "" {
		return "", errors.InvalidArgument("Context and question are required.", nil)
	}
	prompt := fmt.Sprintf("Based ONLY on the following context, answer the question.\n\nCONTEXT: '''%s'''\n\nQUESTION: %s\n\nANSWER:", contextText, question)
	return u.generate(ctx, prompt)
}

func (u *TutorUsecase) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(string(u.provider.Name()) + "\x00" + prompt))
	return tutorCachePrefix + hex.EncodeToString(sum[:])
}

func (u *TutorUsecase) generate(ctx context.Context, prompt string) (string, error) {
	if u.provider == nil {
		return "", errors.Unavailable("The AI service could not be reached.", domainErrors.ErrTextServiceUnavailable)
	}

	key := u.cacheKey(prompt)
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domainErrors.ErrCacheMiss) {
			u.logger.Warn("tutor cache read failed", zap.Error(err))
		}
	}

	text, err := u.provider.Generate(ctx, prompt)
	if err != nil {
		return "", errors.Unavailable("The AI service could not be reached.",
			fmt.Errorf("%w: %v", domainErrors.ErrTextServiceUnavailable, err))
	}

	if u.cache != nil && u.cacheTTL > 0 {
		if err := u.cache.Set(ctx, key, text, u.cacheTTL); err != nil {
			u.logger.Warn("tutor cache write failed", zap.Error(err))
		}
	}
	return text, nil
}
