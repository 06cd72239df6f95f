package lessons

import "github.com/asmanlearning/asman/internal/catalog"

// Source is the content a lesson is built from. Exactly one of FreeText,
// CurriculumRef or Extracted.
type Source interface {
	isSource()
}

// FreeText is content pasted or typed by the teacher.
type FreeText struct {
	Text string
}

// CurriculumRef points at a chapter and topic of the curriculum catalog.
type CurriculumRef struct {
	ClassLevel string
	Subject    string
	Chapter    string
	Topic      string
}

// ExtractionKind tags text that came from a file or recording.
type ExtractionKind string

const (
	ExtractionUpload ExtractionKind = "upload"
	ExtractionAudio  ExtractionKind = "audio"
)

// Extracted is text produced by document extraction or transcription.
type Extracted struct {
	Text string
	Kind ExtractionKind
}

func (FreeText) isSource()      {}
func (CurriculumRef) isSource() {}
func (Extracted) isSource()     {}

// Language selects the language mode of the generated pack.
type Language string

const (
	LanguagePrimary   Language = "primary"
	LanguageSecondary Language = "secondary"
	LanguageBilingual Language = "bilingual"
)

// ParseLanguage accepts the mode names plus "english" and "hindi". Unknown
// values are treated as primary.
func ParseLanguage(s string) Language {
	switch s {
	case "secondary", "hindi":
		return LanguageSecondary
	case "bilingual":
		return LanguageBilingual
	default:
		return LanguagePrimary
	}
}

func (l Language) describe() string {
	switch l {
	case LanguageSecondary:
		return "Hindi only"
	case LanguageBilingual:
		return "Bilingual (English + Hindi)"
	default:
		return "English only"
	}
}

// Shape selects the flavor of pack requested.
type Shape string

const (
	ShapeTeacher Shape = "teacher"
	ShapeUpload  Shape = "upload"
)

// LessonRequest is one user action asking for a lesson pack.
type LessonRequest struct {
	Source              Source
	ClassLevel          string
	EnrichmentModuleIDs []string
	PersonaID           string
	Language            Language
	Shape               Shape
}

// NormalizedInput is the canonical form of a LessonRequest. It is built
// once by Normalize and never modified.
type NormalizedInput struct {
	Text              string
	ExtractionKind    ExtractionKind
	ClassLevel        string
	AgeBand           string
	Subject           string
	EnrichmentModules []catalog.Module
	Persona           catalog.Persona
	Language          Language
	Shape             Shape
}

// PackSource records whether a pack came from the backend or the fallback
// synthesizer.
type PackSource string

const (
	SourceAI       PackSource = "ai"
	SourceFallback PackSource = "fallback"
)

// QA kinds.
const (
	KindYesNo          = "yesNo"
	KindMultipleChoice = "multipleChoice"
	KindDrawing        = "drawing"
	KindOpen           = "open"
)

// LessonPack is the structured output of one generation.
type LessonPack struct {
	Title             string             `json:"title"`
	Explanation       string             `json:"explanation"`
	Animation         Animation          `json:"animation"`
	QA                []QA               `json:"qa"`
	Activity          Activity           `json:"activity"`
	EnrichmentResults []EnrichmentResult `json:"enrichmentResults"`
	NarrationScript   string             `json:"narrationScript"`
	FacilitatorNotes  string             `json:"facilitatorNotes"`

	Source         PackSource `json:"source,omitempty"`
	FallbackReason string     `json:"fallbackReason,omitempty"`
}

// Animation describes the whiteboard animation that accompanies a lesson.
type Animation struct {
	Description       string   `json:"description"`
	KeyFrames         []string `json:"keyFrames"`
	InteractionPoints []string `json:"interactionPoints"`
}

// QA is one question with its answer.
type QA struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
}

// Activity is a hands-on classroom activity.
type Activity struct {
	Title     string   `json:"title"`
	Materials []string `json:"materials"`
	Steps     []string `json:"steps"`
	Duration  string   `json:"duration"`
}

// EnrichmentResult is the content produced for one enrichment module.
type EnrichmentResult struct {
	ModuleName   string `json:"moduleName"`
	Activity     string `json:"activity"`
	CulturalNote string `json:"culturalNote"`
}

// IsFallback reports whether the pack was synthesized locally.
func (p LessonPack) IsFallback() bool {
	return p.Source == SourceFallback
}
