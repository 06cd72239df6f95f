package llm

import (
	"context"
	"fmt"

	"github.com/asmanlearning/asman/internal/logger"
)

// NewProvider creates a Provider from configuration, wrapped with the
// logging and deadline middleware. An empty Provider is resolved from
// whichever API key is present.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	cfg, _ = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → logging → base
	logged := WithLogging(base, log)
	return WithTimeout(logged, cfg.Timeout), nil
}
