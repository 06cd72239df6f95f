package llm

import "context"

// UnconfiguredProvider stands in when no credentials are available. Every
// call fails with ErrAuth, which lesson generation turns into a fallback
// pack instead of refusing to start.
type UnconfiguredProvider struct {
	Reason error
}

// NewUnconfiguredProvider returns a provider that always reports reason.
func NewUnconfiguredProvider(reason error) *UnconfiguredProvider {
	return &UnconfiguredProvider{Reason: reason}
}

func (p *UnconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrAuth{Err: p.Reason}
}

func (p *UnconfiguredProvider) ModelID() string {
	return "unconfigured"
}
