package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/provider"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangchainProvider adapts a langchaingo model to provider.TextProvider
type LangchainProvider struct {
	llm     llms.Model
	name    provider.ProviderType
	timeout time.Duration
	logger  *zap.Logger
}

// NewLangchainProvider wraps llm. A zero timeout leaves the caller's deadline in charge.
func NewLangchainProvider(llm llms.Model, name provider.ProviderType, timeout time.Duration, logger *zap.Logger) *LangchainProvider {
	return &LangchainProvider{
		llm:     llm,
		name:    name,
		timeout: timeout,
		logger:  logger,
	}
}

func (p *LangchainProvider) Name() provider.ProviderType {
	return p.name
}

// Generate sends prompt as a single human message
func (p *LangchainProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt)
	if err != nil {
		p.logger.Error("Text generation failed",
			zap.String("provider", string(p.name)),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%s generate: %w", p.name, err)
	}

	p.logger.Debug("Text generated",
		zap.String("provider", string(p.name)),
		zap.Duration("latency", time.Since(start)),
		zap.Int("prompt_length", len(prompt)),
	)
	return strings.TrimSpace(text), nil
}
