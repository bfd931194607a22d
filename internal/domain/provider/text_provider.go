package provider

import "context"

// ProviderType identifies a language model backend
type ProviderType string

const (
	ProviderTypeGoogleAI ProviderType = "googleai"
	ProviderTypeOpenAI   ProviderType = "openai"
)

// TextProvider turns a prompt into generated text
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() ProviderType
}
