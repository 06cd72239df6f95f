package lessons

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders a pack as a Markdown document. Visual markers in
// the explanation become blockquoted drawing cues.
func RenderMarkdown(p LessonPack) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.IsFallback() {
		b.WriteString("_Offline lesson: generated without the AI service._\n\n")
	}

	b.WriteString("## Explanation\n\n")
	for _, seg := range SplitVisualCues(p.Explanation) {
		switch seg.Kind {
		case SegmentVisual:
			fmt.Fprintf(&b, "\n> 🎨 **Whiteboard:** %s\n\n", seg.Text)
		default:
			b.WriteString(strings.TrimSpace(seg.Text))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n## Animation\n\n")
	b.WriteString(p.Animation.Description)
	b.WriteString("\n\n**Key frames**\n\n")
	writeNumbered(&b, p.Animation.KeyFrames)
	if len(p.Animation.InteractionPoints) > 0 {
		b.WriteString("\n**Interaction points**\n\n")
		writeBullets(&b, p.Animation.InteractionPoints)
	}

	b.WriteString("\n## Questions & Answers\n\n")
	for i, q := range p.QA {
		fmt.Fprintf(&b, "%d. **%s** _(%s)_\n", i+1, q.Question, q.Kind)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "   %c) %s\n", 'a'+rune(j), opt)
		}
		fmt.Fprintf(&b, "   Answer: %s\n", q.Answer)
	}

	fmt.Fprintf(&b, "\n## Activity: %s\n\n", p.Activity.Title)
	if p.Activity.Duration != "" {
		fmt.Fprintf(&b, "Duration: %s\n\n", p.Activity.Duration)
	}
	if len(p.Activity.Materials) > 0 {
		b.WriteString("**Materials**\n\n")
		writeBullets(&b, p.Activity.Materials)
		b.WriteString("\n")
	}
	b.WriteString("**Steps**\n\n")
	writeNumbered(&b, p.Activity.Steps)

	if len(p.EnrichmentResults) > 0 {
		b.WriteString("\n## Global Learning Modules\n\n")
		for _, r := range p.EnrichmentResults {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n_%s_\n\n", r.ModuleName, r.Activity, r.CulturalNote)
		}
	}

	b.WriteString("\n## Narration Script\n\n")
	b.WriteString(p.NarrationScript)
	b.WriteString("\n\n## Teacher Notes\n\n")
	b.WriteString(p.FacilitatorNotes)
	b.WriteString("\n")

	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, it)
	}
}

func writeBullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
