package llm

import "strings"

// Config model settings accept these short aliases. Anything else is sent
// to the backend as written.
var (
	anthropicModels = map[string]string{
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-20250514",
	}
	openaiModels = map[string]string{
		"gpt-mini": "gpt-4o-mini",
		"gpt":      "gpt-4o",
	}
	geminiModels = map[string]string{
		"gemini-flash":      "gemini-2.0-flash",
		"gemini-flash-lite": "gemini-2.0-flash-lite",
		"gemini-pro":        "gemini-2.5-pro",
	}
)

func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// canonicalModel maps an alias or an OpenRouter "vendor/model" id to the
// id used in the pricing table.
func canonicalModel(id string) string {
	for _, aliases := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		if full, ok := aliases[id]; ok {
			return full
		}
	}
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	return strings.TrimSuffix(id, "-exp")
}
