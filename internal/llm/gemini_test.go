package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genai"
)

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := newGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash"}, server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": `{"title":"Plants"}`}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     12,
				"candidatesTokenCount": 8,
				"totalTokenCount":      20,
			},
		})
	}

	p := newTestGeminiProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a lesson designer.",
		Messages:  []Message{{Role: RoleUser, Content: "Plants"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"title":"Plants"}` {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 20 {
		t.Fatalf("expected 20 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.Model != "gemini-2.0-flash" {
		t.Fatalf("expected resolved model, got %q", resp.Model)
	}
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}

	p := newTestGeminiProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestGeminiProvider_BadRequestStatuses(t *testing.T) {
	tests := []struct {
		name    string
		message string
		auth    bool
	}{
		{"invalid key", "API key not valid. Please pass a valid API key.", true},
		{"other bad request", "Invalid JSON payload received.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": 400, "message": tt.message, "status": "INVALID_ARGUMENT"},
				})
			})
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})

			var auth *ErrAuth
			if got := errors.As(err, &auth); got != tt.auth {
				t.Fatalf("ErrAuth = %v, want %v (err %T: %v)", got, tt.auth, err, err)
			}
			if !tt.auth {
				var api *ErrAPI
				if !errors.As(err, &api) || api.StatusCode != 400 {
					t.Fatalf("expected ErrAPI 400, got %T (%v)", err, err)
				}
			}
		})
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": "integer"},
			"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"name", "age"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["name"].Type != "STRING" {
		t.Fatalf("expected STRING for name, got %s", schema.Properties["name"].Type)
	}
	if schema.Properties["age"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for age, got %s", schema.Properties["age"].Type)
	}
	if len(schema.Properties["grade"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["grade"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestGenerateConfig_JSONModes(t *testing.T) {
	plain := generateConfig(Request{MaxTokens: 512})
	if plain.ResponseMIMEType != "" || plain.SystemInstruction != nil || plain.Temperature != nil {
		t.Fatalf("plain request set output options: %+v", plain)
	}

	obj := generateConfig(Request{JSONObject: true, Temperature: 0.4, System: "sys"})
	if obj.ResponseMIMEType != "application/json" || obj.ResponseSchema != nil {
		t.Fatalf("JSON object mode: mime %q schema %v", obj.ResponseMIMEType, obj.ResponseSchema)
	}
	if obj.Temperature == nil || *obj.Temperature != float32(0.4) {
		t.Fatalf("temperature not carried: %v", obj.Temperature)
	}
	if obj.SystemInstruction == nil || obj.SystemInstruction.Parts[0].Text != "sys" {
		t.Fatal("system instruction not carried")
	}

	withSchema := generateConfig(Request{Schema: &Schema{Definition: map[string]any{"type": "object"}}})
	if withSchema.ResponseSchema == nil || withSchema.ResponseMIMEType != "application/json" {
		t.Fatal("schema mode must set both MIME type and schema")
	}
}

func TestBuildGeminiSchema_NullableUnion(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":  []any{"array", "null"},
		"items": map[string]any{"type": "string"},
	})
	if schema.Type != genai.TypeArray {
		t.Fatalf("type = %v, want array", schema.Type)
	}
	if schema.Nullable == nil || !*schema.Nullable {
		t.Fatal("expected nullable schema")
	}
	if schema.Items == nil || schema.Items.Type != genai.TypeString {
		t.Fatal("items not carried")
	}
}
