package llm

import "context"

// Provider is a generative text backend. One Generate call is one outbound
// request; the decorators in this package add logging and deadlines but
// never retries.
type Provider interface {
	// Generate returns the backend's raw completion text. Output modes in
	// the request are hints; callers validate the text themselves.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider sends requests to.
	ModelID() string
}

// Request is one completion request.
type Request struct {
	System   string
	Messages []Message

	// Schema requests native structured output where the backend has it.
	Schema *Schema

	// JSONObject asks for a reply that is a single JSON object of any
	// shape: OpenAI JSON mode, a Gemini JSON MIME type, or an Anthropic
	// reply prefilled with "{". Ignored when Schema is set.
	JSONObject bool

	MaxTokens int
	// Temperature is 0.0 - 1.0. Zero leaves the backend default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema sent to backends that support structured output.
type Schema struct {
	// Name is a kebab-case identifier such as "lesson-pack".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the backend's answer.
type Response struct {
	Text  string
	Usage Usage
	// Model is the model that served the request, which may differ from
	// the configured alias.
	Model string
	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
