package lessons

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/asmanlearning/asman/internal/catalog"
)

const (
	excerptLimit = 200
	topicLimit   = 60
)

// SynthesizeFallback builds a complete, valid lesson pack from the input
// alone. It is total for any input with non-empty text.
func SynthesizeFallback(in NormalizedInput) LessonPack {
	excerpt := sanitizeMarkerText(truncateText(in.Text, excerptLimit))
	topic := sanitizeMarkerText(truncateText(firstLine(in.Text), topicLimit))

	pack := LessonPack{
		Title:       fallbackTitle(in, topic),
		Explanation: fallbackExplanation(in, excerpt, topic),
		Animation: Animation{
			Description: fmt.Sprintf("A step-by-step whiteboard drawing that brings %q to life.", topic),
			KeyFrames: []string{
				"An empty whiteboard with the lesson title written at the top",
				fmt.Sprintf("A simple picture showing %s", topic),
				"Arrows and labels connecting each part of the picture",
			},
			InteractionPoints: []string{
				"Pause and ask students what they can see",
				"Invite a student to point at the part the teacher is describing",
			},
		},
		QA: []QA{
			{
				Question: "Have you ever seen something like this in your home or neighbourhood?",
				Answer:   "Yes! Many things we learn in class can be seen around us every day.",
				Kind:     KindYesNo,
			},
			{
				Question: "What was today's lesson mainly about?",
				Answer:   topic,
				Kind:     KindMultipleChoice,
				Options:  []string{topic, "A cricket match", "A birthday party"},
			},
			{
				Question: "What is one new thing you learned today?",
				Answer:   "Answers will vary. Encourage every student to share one idea in their own words.",
				Kind:     KindOpen,
			},
			{
				Question: "Can you draw a picture of what you learned?",
				Answer:   "Drawings will vary. Look for the main idea of the lesson in each picture.",
				Kind:     KindDrawing,
			},
		},
		Activity: Activity{
			Title:     "Learn, Draw and Share",
			Materials: []string{"Chart paper", "Crayons or colour pencils", "Everyday objects related to the topic"},
			Steps: []string{
				"Read the lesson content aloud together with the class.",
				"Ask students to name the most important idea they heard.",
				"In small groups, draw a picture that explains that idea.",
				"Each group shows its drawing and explains it in one or two sentences.",
				"Finish by connecting the drawings to something students see every day.",
			},
			Duration: activityDuration(in.AgeBand),
		},
		EnrichmentResults: fallbackEnrichment(in.EnrichmentModules),
		NarrationScript:   fallbackNarration(in, topic),
		FacilitatorNotes:  fallbackNotes(in),
		Source:            SourceFallback,
	}
	return pack
}

func fallbackTitle(in NormalizedInput, topic string) string {
	switch {
	case in.Subject != "" && in.ClassLevel != "":
		return fmt.Sprintf("%s Lesson for Class %s", catalog.SubjectLabel(in.Subject), in.ClassLevel)
	case in.ClassLevel != "":
		return fmt.Sprintf("Class %s Lesson: %s", in.ClassLevel, topic)
	default:
		return "Lesson: " + topic
	}
}

func fallbackExplanation(in NormalizedInput, excerpt, topic string) string {
	var b strings.Builder
	b.WriteString("Today we are learning about this: ")
	b.WriteString(excerpt)
	b.WriteString(" ")
	b.WriteString(visualMarker("A colourful whiteboard drawing that shows " + excerpt))
	b.WriteString(" Let us look closely at each part of the idea and talk about what we notice. ")
	b.WriteString(visualMarker("Labels and arrows pointing to the key parts of " + topic))
	fmt.Fprintf(&b, " Think about where you have seen this in your own life. This lesson is written for children aged %s.", in.AgeBand)
	if in.Language == LanguageBilingual {
		b.WriteString(" Teachers can repeat each idea in Hindi after the English explanation.")
	}
	return b.String()
}

func fallbackEnrichment(modules []catalog.Module) []EnrichmentResult {
	out := make([]EnrichmentResult, 0, len(modules))
	for _, m := range modules {
		out = append(out, EnrichmentResult{
			ModuleName: m.Name,
			Activity: fmt.Sprintf("Practise today's idea the %s way: %s.",
				m.Name, strings.ToLower(m.Methodology)),
			CulturalNote: fmt.Sprintf("Classrooms that follow the %s approach value %s.",
				m.Name, strings.ToLower(m.Description)),
		})
	}
	return out
}

func fallbackNarration(in NormalizedInput, topic string) string {
	var greeting string
	switch in.Persona.ID {
	case "curious_explorer":
		greeting = fmt.Sprintf("Hey explorers! I'm %s, and I can't wait to discover something amazing with you.", in.Persona.Name)
	case "wise_storyteller":
		greeting = fmt.Sprintf("Come, sit close, children. I am %s, and I have a story to share with you today.", in.Persona.Name)
	default:
		greeting = fmt.Sprintf("Hello children! I am %s, your friendly teacher.", in.Persona.Name)
	}
	if in.Language == LanguageBilingual || in.Language == LanguageSecondary {
		greeting = "Namaste! " + greeting
	}
	return fmt.Sprintf("%s Today we will learn about %s. Watch the whiteboard as the pictures appear, "+
		"and listen carefully. ... Look at the drawing. What do you notice? ... "+
		"Great thinking! Now let us try an activity together.", greeting, topic)
}

func fallbackNotes(in NormalizedInput) string {
	var b strings.Builder
	b.WriteString("This lesson was prepared offline from the content you provided. ")
	fmt.Fprintf(&b, "Adapt the language for children aged %s and review the questions before class.", in.AgeBand)
	if len(in.EnrichmentModules) > 0 {
		names := make([]string, len(in.EnrichmentModules))
		for i, m := range in.EnrichmentModules {
			names[i] = m.Name
		}
		fmt.Fprintf(&b, " Global modules included: %s.", strings.Join(names, ", "))
	}
	if in.ExtractionKind != "" {
		b.WriteString(" The content was extracted automatically; check it for errors.")
	}
	return b.String()
}

func activityDuration(ageBand string) string {
	switch ageBand {
	case "6-7", "7-8":
		return "15 minutes"
	case "10-11":
		return "25 minutes"
	default:
		return "20 minutes"
	}
}

// truncateText cuts s to at most limit runes, preferring a word boundary,
// and marks the cut with "...".
func truncateText(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > limit/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "..."
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\n.?!"); i > 0 {
		return s[:i]
	}
	return s
}

func sanitizeMarkerText(s string) string {
	return strings.NewReplacer("[", "(", "]", ")").Replace(s)
}
