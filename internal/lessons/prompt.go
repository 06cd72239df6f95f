package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an expert primary-school educator creating interactive AI whiteboard lessons for ASman Learning. You turn NCERT curriculum content into engaging, visual lesson packs that a teacher can present in class. You always answer with a single JSON object and nothing else.`

// BuildPrompt renders the user message for a lesson pack. The same input
// always produces the same string.
func BuildPrompt(in NormalizedInput) string {
	var b strings.Builder

	switch in.Shape {
	case ShapeUpload:
		b.WriteString("Create a simple lesson pack from the uploaded material below.\n\n")
	default:
		b.WriteString("Create a complete lesson pack for the teacher to present in class.\n\n")
	}

	b.WriteString("Content:\n")
	b.WriteString(in.Text)
	b.WriteString("\n\n")

	switch in.ExtractionKind {
	case ExtractionUpload:
		b.WriteString("Note: this content was extracted from an uploaded document and may contain extraction noise.\n")
	case ExtractionAudio:
		b.WriteString("Note: this content was transcribed from a voice recording and may be informal.\n")
	}

	if in.ClassLevel != "" {
		fmt.Fprintf(&b, "Class: %s\n", in.ClassLevel)
	}
	fmt.Fprintf(&b, "Student ages: %s\n", in.AgeBand)
	if in.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", in.Subject)
	}
	fmt.Fprintf(&b, "Language: %s\n", in.Language.describe())
	fmt.Fprintf(&b, "AI character: %s (%s; voice: %s)\n", in.Persona.Name, in.Persona.Personality, in.Persona.VoiceStyle)

	b.WriteString("\nGlobal learning modules:\n")
	if len(in.EnrichmentModules) == 0 {
		b.WriteString("None\n")
	} else {
		for _, m := range in.EnrichmentModules {
			fmt.Fprintf(&b, "- %s (%s): %s\n", m.Name, m.Description, m.Methodology)
		}
	}

	b.WriteString(`
Instructions:
1. Write every part at a reading level suitable for children aged `)
	b.WriteString(in.AgeBand)
	b.WriteString(`. Use short sentences and familiar, concrete examples.
2. Wherever a drawing or animation should appear on the whiteboard, insert a marker written exactly as [VISUAL: <what to draw>]. Use this marker syntax verbatim and close every marker with ].
3. Describe the whiteboard animation with at least one key frame and the moments where students can interact.
4. Write at least two questions. Each question has a kind of "yesNo", "multipleChoice", "drawing" or "open". Only multipleChoice questions have an "options" list, with at least two options.
5. Design one hands-on activity with a materials list, numbered steps and a duration.
`)
	if len(in.EnrichmentModules) > 0 {
		b.WriteString("6. For each global learning module listed above, weave its methodology into the lesson and add one enrichmentResults entry with the module name, a short activity in that style and a cultural note.\n")
	} else {
		b.WriteString("6. No global learning modules were selected; return an empty enrichmentResults list.\n")
	}
	fmt.Fprintf(&b, "7. Write the narrationScript in the voice of %s, as natural speech with pauses for the animations.\n", in.Persona.Name)
	b.WriteString("8. Add facilitatorNotes with practical tips for the teacher.\n")

	b.WriteString(`
Return ONLY one JSON object with exactly these keys:
{
  "title": string,
  "explanation": string,
  "animation": {"description": string, "keyFrames": [string], "interactionPoints": [string]},
  "qa": [{"question": string, "answer": string, "kind": string, "options": [string]}],
  "activity": {"title": string, "materials": [string], "steps": [string], "duration": string},
  "enrichmentResults": [{"moduleName": string, "activity": string, "culturalNote": string}],
  "narrationScript": string,
  "facilitatorNotes": string
}
Do not wrap the JSON in markdown and do not add any text before or after it.`)

	return b.String()
}
