package provider

import (
	"context"
	"fmt"

	"github.com/shettypp/ai-syllabus-planner/internal/config"
	"github.com/shettypp/ai-syllabus-planner/internal/domain/provider"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Factory creates text providers based on the configured provider type
type Factory struct {
	config *config.Config
	logger *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(config *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		config: config,
		logger: logger,
	}
}

// GetProvider returns the provider named by ai.provider
func (f *Factory) GetProvider(ctx context.Context) (provider.TextProvider, error) {
	providerType := provider.ProviderType(f.config.AI.Provider)
	if providerType == "" {
		providerType = provider.ProviderTypeGoogleAI
	}

	switch providerType {
	case provider.ProviderTypeGoogleAI:
		return f.createGoogleAIProvider(ctx)
	case provider.ProviderTypeOpenAI:
		return f.createOpenAIProvider()
	default:
		return nil, fmt.Errorf("unsupported text provider: %s", providerType)
	}
}

func (f *Factory) createGoogleAIProvider(ctx context.Context) (provider.TextProvider, error) {
	if f.config.AI.APIKey == "" {
		return nil, fmt.Errorf("Google AI api key not configured")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(f.config.AI.APIKey),
		googleai.WithDefaultModel(f.config.AI.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return NewLangchainProvider(llm, provider.ProviderTypeGoogleAI, f.config.AI.Timeout, f.logger), nil
}

func (f *Factory) createOpenAIProvider() (provider.TextProvider, error) {
	if f.config.AI.APIKey == "" {
		return nil, fmt.Errorf("OpenAI api key not configured")
	}

	opts := []openai.Option{
		openai.WithToken(f.config.AI.APIKey),
		openai.WithModel(f.config.AI.Model),
	}
	if f.config.AI.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(f.config.AI.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return NewLangchainProvider(llm, provider.ProviderTypeOpenAI, f.config.AI.Timeout, f.logger), nil
}
