package lessons

import (
	"context"
	"errors"
	"net"

	"github.com/asmanlearning/asman/internal/llm"
)

// CompletionResult is either the raw completion text or a classified
// failure.
type CompletionResult struct {
	Text    string
	Usage   llm.Usage
	Failure *CompletionError
}

// OK reports whether the completion succeeded.
func (r CompletionResult) OK() bool {
	return r.Failure == nil
}

// CompletionClient sends one prompt to the generative backend.
type CompletionClient struct {
	provider llm.Provider
	cfg      Config
}

// NewCompletionClient wraps provider with the lesson generation settings.
func NewCompletionClient(provider llm.Provider, cfg Config) *CompletionClient {
	return &CompletionClient{provider: provider, cfg: cfg}
}

// RequestCompletion makes exactly one backend call. It never retries.
func (c *CompletionClient) RequestCompletion(ctx context.Context, prompt string) CompletionResult {
	ctx = llm.WithPurpose(ctx, "lesson-pack")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		JSONObject:  true,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	if c.cfg.StructuredOutput {
		req.Schema = LessonPackSchema
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return CompletionResult{Failure: &CompletionError{Kind: classifyFailure(err), Err: err}}
	}
	return CompletionResult{Text: resp.Text, Usage: resp.Usage}
}

// classifyFailure maps a provider error onto the four failure kinds.
func classifyFailure(err error) FailureKind {
	var (
		authErr *llm.ErrAuth
		rateErr *llm.ErrRateLimit
		unavail *llm.ErrProviderUnavailable
		netErr  net.Error
	)
	switch {
	case errors.As(err, &authErr):
		return FailureAuth
	case errors.As(err, &rateErr):
		return FailureQuota
	case errors.As(err, &unavail),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}
