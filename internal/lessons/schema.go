package lessons

import "github.com/asmanlearning/asman/internal/llm"

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "minLength": 1, "description": desc}
}

func stringList(desc string, minItems int) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"minItems":    minItems,
		"description": desc,
	}
}

// nullable also accepts JSON null for prop.
func nullable(prop map[string]any) map[string]any {
	prop["type"] = []any{prop["type"], "null"}
	return prop
}

// LessonPackSchema defines the JSON schema every lesson pack must satisfy.
var LessonPackSchema = &llm.Schema{
	Name:        "lesson-pack",
	Description: "An interactive whiteboard lesson pack for a primary-school class",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       stringProp("Short lesson title"),
			"explanation": stringProp("Age-appropriate explanation with [VISUAL: ...] markers"),
			"animation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"description":       stringProp("What the whiteboard animation shows"),
					"keyFrames":         stringList("Ordered key frames of the animation", 1),
					"interactionPoints": stringList("Moments where students interact", 0),
				},
				"required": []any{"description", "keyFrames", "interactionPoints"},
			},
			"qa": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": stringProp("The question"),
						"answer":   stringProp("The answer"),
						"kind": map[string]any{
							"type": "string",
							"enum": []any{KindYesNo, KindMultipleChoice, KindDrawing, KindOpen},
						},
						"options": nullable(stringList("Choices, only for multipleChoice", 0)),
					},
					"required": []any{"question", "answer", "kind"},
				},
			},
			"activity": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":     stringProp("Activity title"),
					"materials": stringList("Materials needed", 0),
					"steps":     stringList("Ordered steps", 1),
					"duration":  map[string]any{"type": "string"},
				},
				"required": []any{"title", "materials", "steps", "duration"},
			},
			"enrichmentResults": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"moduleName":   stringProp("Name of the global learning module"),
						"activity":     map[string]any{"type": "string"},
						"culturalNote": map[string]any{"type": "string"},
					},
					"required": []any{"moduleName", "activity", "culturalNote"},
				},
			},
			"narrationScript":  map[string]any{"type": "string"},
			"facilitatorNotes": map[string]any{"type": "string"},
		},
		"required": []any{
			"title", "explanation", "animation", "qa", "activity",
			"enrichmentResults", "narrationScript", "facilitatorNotes",
		},
	},
}

// fieldOrder ranks top-level fields so "the first invalid field" is stable.
var fieldOrder = map[string]int{
	"title":             0,
	"explanation":       1,
	"animation":         2,
	"qa":                3,
	"activity":          4,
	"enrichmentResults": 5,
	"narrationScript":   6,
	"facilitatorNotes":  7,
}
