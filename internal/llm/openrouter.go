package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterAppTitle       = "ASman Learning"
)

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Model ids
// pass through unchanged since OpenRouter names them "vendor/model".
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterProvider{OpenAIProvider: &OpenAIProvider{
		client: newOpenAIClient(cfg.APIKey, baseURL, openRouterHeader(cfg.Referer)),
		model:  cfg.Model,
	}}, nil
}

// openRouterHeader carries the app attribution OpenRouter shows in its
// rankings.
func openRouterHeader(referer string) http.Header {
	h := http.Header{}
	h.Set("X-Title", openRouterAppTitle)
	if referer != "" {
		h.Set("HTTP-Referer", referer)
	}
	return h
}
