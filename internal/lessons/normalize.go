package lessons

import (
	"strings"

	"github.com/asmanlearning/asman/internal/catalog"
)

// Normalize converts a request into its canonical input. It is pure: the
// result depends only on req and the static registries.
func Normalize(req LessonRequest) (NormalizedInput, error) {
	in := NormalizedInput{
		ClassLevel: req.ClassLevel,
		Language:   ParseLanguage(string(req.Language)),
		Shape:      req.Shape,
	}
	if in.Shape == "" {
		in.Shape = ShapeTeacher
	}

	switch src := req.Source.(type) {
	case FreeText:
		in.Text = strings.TrimSpace(src.Text)
	case *FreeText:
		if src != nil {
			in.Text = strings.TrimSpace(src.Text)
		}
	case CurriculumRef:
		in.Text, in.Subject = renderCurriculumRef(src, &in)
	case *CurriculumRef:
		if src != nil {
			in.Text, in.Subject = renderCurriculumRef(*src, &in)
		}
	case Extracted:
		in.Text, in.ExtractionKind = extractedText(src)
	case *Extracted:
		if src != nil {
			in.Text, in.ExtractionKind = extractedText(*src)
		}
	}

	if in.Text == "" {
		return NormalizedInput{}, ErrEmptyContent
	}

	in.AgeBand = catalog.AgeBand(in.ClassLevel)
	in.EnrichmentModules = catalog.ResolveModules(req.EnrichmentModuleIDs)
	in.Persona = catalog.ResolvePersona(req.PersonaID)
	return in, nil
}

// renderCurriculumRef joins the class and subject, then the chapter and
// topic, leaving out empty parts and their separators.
// A request without its own class level inherits the reference's.
func renderCurriculumRef(ref CurriculumRef, in *NormalizedInput) (text, subject string) {
	subject = strings.TrimSpace(ref.Subject)
	chapter := strings.TrimSpace(ref.Chapter)
	topic := strings.TrimSpace(ref.Topic)
	if subject == "" && chapter == "" && topic == "" {
		return "", ""
	}

	class := strings.TrimSpace(ref.ClassLevel)
	if class == "" {
		class = in.ClassLevel
	}
	if in.ClassLevel == "" {
		in.ClassLevel = class
	}

	classPart := ""
	if class != "" {
		classPart = "Class " + class
	}
	head := strings.Join(nonEmpty(classPart, catalog.SubjectLabel(subject)), " ")
	detail := strings.Join(nonEmpty(chapter, topic), ": ")
	return strings.Join(nonEmpty(head, detail), " — "), subject
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractedText passes extracted text through untouched. Whitespace-only
// text counts as empty.
func extractedText(src Extracted) (string, ExtractionKind) {
	kind := src.Kind
	if kind == "" {
		kind = ExtractionUpload
	}
	if strings.TrimSpace(src.Text) == "" {
		return "", kind
	}
	return src.Text, kind
}
