package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/asmanlearning/asman/internal/logger"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: `{"title":"Rain"}`, Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Text: `{"title":"Rivers"}`, Model: "gemini-2.0-flash"},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "rain"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text != `{"title":"Rain"}` || first.Model != "mock" || first.StopReason != "end" {
		t.Fatalf("unexpected first response: %+v", first)
	}
	if first.Usage.TotalTokens != 15 {
		t.Fatalf("expected total tokens filled in as 15, got %d", first.Usage.TotalTokens)
	}

	second, err := mock.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "rivers"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Model != "gemini-2.0-flash" {
		t.Fatalf("expected model override, got %q", second.Model)
	}
	if mock.Pending() != 0 {
		t.Fatalf("expected queue drained, %d left", mock.Pending())
	}

	last, ok := mock.LastRequest()
	if !ok || last.Messages[0].Content != "rivers" {
		t.Fatalf("unexpected last request: %+v", last)
	}
}

func TestMockProvider_ExhaustedQueueIsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{System: "sys"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if mock.CallCount() != 1 || mock.Calls[0].System != "sys" {
		t.Fatalf("expected the failed call to be recorded, got %d calls", mock.CallCount())
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	mock.AddResponse(MockResponse{Text: "{}"})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if _, err := mock.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("expected the added response next, got: %v", err)
	}
}

func TestMockProvider_HonorsCancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "{}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if mock.CallCount() != 0 || mock.Pending() != 1 {
		t.Fatal("a cancelled call must not consume a response")
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestRequestMetadataContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if _, ok := RequestIDFrom(ctx); ok {
		t.Fatal("expected no request id")
	}

	ctx = WithRequestID(WithPurpose(ctx, "lesson-pack"), "01J0REQ")
	if p := PurposeFrom(ctx); p != "lesson-pack" {
		t.Fatalf("expected 'lesson-pack', got %q", p)
	}
	if id, ok := RequestIDFrom(ctx); !ok || id != "01J0REQ" {
		t.Fatalf("expected request id, got %q", id)
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		input float64
		found bool
	}{
		{"gpt-4o-mini", 0.15, true},
		{"gemini-flash", 0.1, true},
		{"claude-haiku", 1, true},
		{"google/gemini-2.0-flash-exp", 0.1, true},
		{"mock", 0, false},
	}
	for _, tt := range tests {
		cost := LookupCost(tt.model)
		if (cost != nil) != tt.found {
			t.Fatalf("LookupCost(%q) found = %v, want %v", tt.model, cost != nil, tt.found)
		}
		if cost != nil && cost.InputPerMTok != tt.input {
			t.Errorf("LookupCost(%q) input = %v, want %v", tt.model, cost.InputPerMTok, tt.input)
		}
	}

	if got := (ModelCost{InputPerMTok: 2, OutputPerMTok: 8}).Cost(500_000, 250_000); got != 3 {
		t.Fatalf("expected $3, got %v", got)
	}
	models := PricedModels()
	if len(models) == 0 || models[0] > models[len(models)-1] {
		t.Fatalf("expected sorted model ids, got %v", models)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "openrouter with key",
			cfg:     Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			wantErr: false,
		},
		{
			name:    "nothing configured",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Resolved(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		want     string
		resolved bool
	}{
		{"explicit provider wins", Config{Provider: "openai", Gemini: GeminiConfig{APIKey: "g"}}, "openai", true},
		{"gemini first", Config{Gemini: GeminiConfig{APIKey: "g"}, OpenAI: OpenAIConfig{APIKey: "o"}}, "gemini", true},
		{"openai before anthropic", Config{OpenAI: OpenAIConfig{APIKey: "o"}, Anthropic: AnthropicConfig{APIKey: "a"}}, "openai", true},
		{"anthropic before openrouter", Config{Anthropic: AnthropicConfig{APIKey: "a"}, OpenRouter: OpenRouterConfig{APIKey: "r"}}, "anthropic", true},
		{"openrouter last", Config{OpenRouter: OpenRouterConfig{APIKey: "r"}}, "openrouter", true},
		{"no keys", Config{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cfg.Resolved()
			if ok != tt.resolved {
				t.Fatalf("Resolved() ok = %v, want %v", ok, tt.resolved)
			}
			if got.Provider != tt.want {
				t.Fatalf("Resolved() provider = %q, want %q", got.Provider, tt.want)
			}
		})
	}
}

func TestUnconfiguredProvider_ReturnsAuthError(t *testing.T) {
	p := NewUnconfiguredProvider(errors.New("no key"))
	_, err := p.Generate(context.Background(), Request{})
	var auth *ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("expected ErrAuth, got: %T", err)
	}
	if p.ModelID() != "unconfigured" {
		t.Fatalf("expected 'unconfigured', got %q", p.ModelID())
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_BoundsCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("expected inner model id, got %q", p.ModelID())
	}
}

func TestWithTimeout_ZeroIsPassThrough(t *testing.T) {
	mock := NewMockProvider()
	if got := WithTimeout(mock, 0); got != Provider(mock) {
		t.Fatal("expected provider returned unchanged")
	}
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	mock := NewMockProvider(
		MockResponse{Text: "ok", Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: &ErrAuth{}},
	)
	p := WithLogging(mock, log)
	ctx := WithRequestID(WithPurpose(context.Background(), "lesson-pack"), "01J0REQ")

	if _, err := p.Generate(ctx, Request{System: "sys"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	ok := entries[0].ContextMap()
	if ok["purpose"] != "lesson-pack" || ok["success"] != true || ok["request_id"] != "01J0REQ" {
		t.Fatalf("unexpected fields: %v", ok)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level for failure, got %s", entries[1].Level)
	}
}

func TestFactory_MockProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestFactory_RejectsMissingKey(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{}, logger.Nop()); err == nil {
		t.Fatal("expected error with no provider configured")
	}
}

func TestMapStatus(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{401, func(e error) bool { var x *ErrAuth; return errors.As(e, &x) }},
		{403, func(e error) bool { var x *ErrAuth; return errors.As(e, &x) }},
		{429, func(e error) bool { var x *ErrRateLimit; return errors.As(e, &x) }},
		{503, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
		{400, func(e error) bool { var x *ErrAPI; return errors.As(e, &x) && x.StatusCode == 400 }},
		{0, func(e error) bool { var x *ErrProviderUnavailable; return errors.As(e, &x) }},
	}
	for _, tt := range tests {
		err := mapStatus(tt.status, base)
		if !tt.check(err) {
			t.Errorf("mapStatus(%d) = %T", tt.status, err)
		}
		if !errors.Is(err, base) {
			t.Errorf("mapStatus(%d) lost the wrapped error", tt.status)
		}
	}
}
