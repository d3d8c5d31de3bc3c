package llm

import (
	"context"
	"fmt"
	"strings"

	"shopwise/internal/config"
)

// Factory creates LLM clients from the loaded configuration.
type Factory struct {
	APIKey           string
	BaseURL          string
	YandexOAuthToken string
	YandexFolderID   string
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		APIKey:           cfg.GeminiAPIKey,
		BaseURL:          cfg.LLMBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
}

func (f *Factory) CreateClient(ctx context.Context, provider config.LLMProvider, model string) (Client, error) {
	switch config.LLMProvider(strings.ToLower(string(provider))) {
	case config.ProviderOpenAI:
		return NewOpenAI(f.APIKey, f.BaseURL, model), nil
	case config.ProviderGemini:
		// LLM_BASE_URL points at the OpenAI shim, not the native API.
		return NewGemini(ctx, f.APIKey, "", model)
	case config.ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
