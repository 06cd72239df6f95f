package packview

import (
	"fmt"
	"strings"

	"github.com/asmanlearning/asman/internal/lessons"
)

// Section tabs in display order.
const (
	tabExplanation = iota
	tabAnimation
	tabQA
	tabActivity
	tabModules
	tabNarration
	tabNotes
)

var tabLabels = []string{
	"Explanation",
	"Animation",
	"Q&A",
	"Activity",
	"Global Modules",
	"Narration",
	"Notes",
}

// sectionText is the plain text of one section. It is what the viewer
// wraps for display and what narration speaks.
func sectionText(p lessons.LessonPack, tab int) string {
	var b strings.Builder
	switch tab {
	case tabExplanation:
		b.WriteString(p.Explanation)

	case tabAnimation:
		b.WriteString(p.Animation.Description + "\n\n")
		b.WriteString("Key frames:\n")
		for i, f := range p.Animation.KeyFrames {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, f)
		}
		if len(p.Animation.InteractionPoints) > 0 {
			b.WriteString("\nInteraction points:\n")
			for _, ip := range p.Animation.InteractionPoints {
				fmt.Fprintf(&b, "  • %s\n", ip)
			}
		}

	case tabQA:
		for i, qa := range p.QA {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "Q%d. %s (%s)\n", i+1, qa.Question, kindLabel(qa.Kind))
			for j, opt := range qa.Options {
				fmt.Fprintf(&b, "    %c) %s\n", 'a'+j, opt)
			}
			fmt.Fprintf(&b, "    Answer: %s\n", qa.Answer)
		}

	case tabActivity:
		fmt.Fprintf(&b, "%s (%s)\n\n", p.Activity.Title, p.Activity.Duration)
		if len(p.Activity.Materials) > 0 {
			b.WriteString("Materials:\n")
			for _, m := range p.Activity.Materials {
				fmt.Fprintf(&b, "  • %s\n", m)
			}
			b.WriteString("\n")
		}
		b.WriteString("Steps:\n")
		for i, s := range p.Activity.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}

	case tabModules:
		if len(p.EnrichmentResults) == 0 {
			b.WriteString("No global learning modules were selected for this lesson.")
		}
		for i, r := range p.EnrichmentResults {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s\n  Activity: %s\n  Cultural note: %s\n", r.ModuleName, r.Activity, r.CulturalNote)
		}

	case tabNarration:
		b.WriteString(p.NarrationScript)

	case tabNotes:
		b.WriteString(p.FacilitatorNotes)
	}
	return strings.TrimRight(b.String(), "\n")
}

func kindLabel(kind string) string {
	switch kind {
	case lessons.KindYesNo:
		return "yes/no"
	case lessons.KindMultipleChoice:
		return "multiple choice"
	case lessons.KindDrawing:
		return "drawing"
	default:
		return "open"
	}
}
