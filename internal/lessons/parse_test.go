package lessons

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndValidate_PlainJSON(t *testing.T) {
	pack, err := ParseAndValidate(validPackJSON)
	require.NoError(t, err)

	assert.Equal(t, "Where Does Rain Go?", pack.Title)
	assert.Equal(t, SourceAI, pack.Source)
	require.Len(t, pack.QA, 2)
	assert.Equal(t, []string{"Rivers", "Clouds", "Trees"}, pack.QA[1].Options)
	assert.NotNil(t, pack.EnrichmentResults)
	assert.Empty(t, pack.EnrichmentResults)
}

func TestParseAndValidate_FencedWithProse(t *testing.T) {
	text := "Sure! Here is your lesson pack:\n```json\n" + validPackJSON + "\n```\nLet me know if you need changes."
	pack, err := ParseAndValidate(text)
	require.NoError(t, err)
	assert.Equal(t, "Where Does Rain Go?", pack.Title)
}

func TestParseAndValidate_BareFenceAndProse(t *testing.T) {
	pack, err := ParseAndValidate("```\n" + validPackJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Make a Rain Jar", pack.Activity.Title)

	pack, err = ParseAndValidate("The pack follows. " + validPackJSON + " Enjoy!")
	require.NoError(t, err)
	assert.Len(t, pack.Activity.Steps, 3)
}

func TestParseAndValidate_BackticksInsideStrings(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPackJSON), &doc))
	doc["facilitatorNotes"] = "Show it like ```this``` on the board."
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	pack, err := ParseAndValidate(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "Show it like ```this``` on the board.", pack.FacilitatorNotes)

	pack, err = ParseAndValidate("Here you go:\n```json\n" + string(raw) + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Where Does Rain Go?", pack.Title)
}

func TestParseAndValidate_SkipsUnrelatedCodeBlock(t *testing.T) {
	text := "Example:\n```\nnot json\n```\nHere is the pack:\n```json\n" + validPackJSON + "\n```"
	pack, err := ParseAndValidate(text)
	require.NoError(t, err)
	assert.Equal(t, "Where Does Rain Go?", pack.Title)
}

func TestParseAndValidate_NullOptionsOnOpenQuestion(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPackJSON), &doc))
	qa := doc["qa"].([]any)
	qa[0].(map[string]any)["options"] = nil
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	pack, err := ParseAndValidate(string(raw))
	require.NoError(t, err)
	assert.Empty(t, pack.QA[0].Options)
}

func TestParseAndValidate_MissingQA(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPackJSON), &doc))
	delete(doc, "qa")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = ParseAndValidate(string(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	var sv *SchemaViolationError
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "qa", sv.Field)
}

func TestParseAndValidate_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"Sure! {incomplete",
		"no json here",
		"{\"title\": }",
		"```json\n[1, 2, 3]\n```",
	}
	for _, in := range inputs {
		_, err := ParseAndValidate(in)
		assert.ErrorIs(t, err, ErrMalformedJSON, "input %q", in)
	}
}

func TestParseAndValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{
			name:   "empty qa",
			mutate: func(d map[string]any) { d["qa"] = []any{} },
			field:  "qa",
		},
		{
			name:   "null title",
			mutate: func(d map[string]any) { d["title"] = nil },
			field:  "title",
		},
		{
			name:   "no steps",
			mutate: func(d map[string]any) { d["activity"].(map[string]any)["steps"] = []any{} },
			field:  "activity.steps",
		},
		{
			name:   "no key frames",
			mutate: func(d map[string]any) { d["animation"].(map[string]any)["keyFrames"] = []any{} },
			field:  "animation.keyFrames",
		},
		{
			name: "unknown qa kind",
			mutate: func(d map[string]any) {
				d["qa"].([]any)[0].(map[string]any)["kind"] = "essay"
			},
			field: "qa[0].kind",
		},
		{
			name: "multiple choice without options",
			mutate: func(d map[string]any) {
				delete(d["qa"].([]any)[1].(map[string]any), "options")
			},
			field: "qa[1].options",
		},
		{
			name: "options on a yes/no question",
			mutate: func(d map[string]any) {
				d["qa"].([]any)[0].(map[string]any)["options"] = []any{"Yes", "No"}
			},
			field: "qa[0].options",
		},
		{
			name:   "blank title",
			mutate: func(d map[string]any) { d["title"] = "   " },
			field:  "title",
		},
		{
			name:   "unclosed visual marker",
			mutate: func(d map[string]any) { d["explanation"] = "Look [VISUAL: a tree without end" },
			field:  "explanation",
		},
		{
			name:   "missing narration",
			mutate: func(d map[string]any) { delete(d, "narrationScript") },
			field:  "narrationScript",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(validPackJSON), &doc))
			tt.mutate(doc)
			raw, err := json.Marshal(doc)
			require.NoError(t, err)

			_, err = ParseAndValidate(string(raw))
			var sv *SchemaViolationError
			require.True(t, errors.As(err, &sv), "got %v", err)
			assert.Equal(t, tt.field, sv.Field)
		})
	}
}

func TestParseAndValidate_FirstInvalidFieldIsStable(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPackJSON), &doc))
	delete(doc, "facilitatorNotes")
	delete(doc, "title")
	delete(doc, "activity")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := ParseAndValidate(string(raw))
		var sv *SchemaViolationError
		require.True(t, errors.As(err, &sv))
		assert.Equal(t, "title", sv.Field)
	}
}

func TestParseAndValidate_AcceptsFallbackPack(t *testing.T) {
	in, err := Normalize(LessonRequest{
		Source:              FreeText{Text: strings.Repeat("Rivers [carry] water to the sea. ", 20)},
		ClassLevel:          "5",
		EnrichmentModuleIDs: []string{"japan", "usa"},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(SynthesizeFallback(in))
	require.NoError(t, err)

	pack, err := ParseAndValidate(string(raw))
	require.NoError(t, err)
	assert.Len(t, pack.EnrichmentResults, 2)
}
