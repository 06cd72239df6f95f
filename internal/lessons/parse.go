package lessons

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\n?```")

// ParseAndValidate extracts a lesson pack from a raw completion. The text
// may carry markdown fences and prose around the JSON object. Validation
// is all-or-nothing: any failure returns an error wrapping ErrMalformedJSON
// or ErrSchemaViolation and no pack.
func ParseAndValidate(text string) (LessonPack, error) {
	raw, ok := findJSON(text)
	if !ok {
		return LessonPack{}, fmt.Errorf("%w: no JSON object found", ErrMalformedJSON)
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return LessonPack{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, isObject := doc.(map[string]any); !isObject {
		return LessonPack{}, fmt.Errorf("%w: top-level value is not an object", ErrMalformedJSON)
	}

	if err := validateDocument(doc); err != nil {
		return LessonPack{}, err
	}

	var pack LessonPack
	if err := json.Unmarshal([]byte(raw), &pack); err != nil {
		return LessonPack{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := checkSemantics(pack); err != nil {
		return LessonPack{}, err
	}

	pack.Source = SourceAI
	pack.FallbackReason = ""
	return pack, nil
}

// findJSON locates the object in a completion. Fenced blocks holding a
// well-formed object win, in order; otherwise the object is cut from the
// raw text, so backticks inside string values or an unrelated code block
// before the pack do not hide it.
func findJSON(text string) (string, bool) {
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		if raw, ok := extractJSON(m[1]); ok && json.Valid([]byte(raw)) {
			return raw, true
		}
	}
	return extractJSON(text)
}

// extractJSON returns the span from the first '{' to the last '}'.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
