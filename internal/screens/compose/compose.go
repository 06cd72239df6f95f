// Package compose is the lesson request form: content, class, global
// learning modules, persona and language.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/intake"
	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/narration"
	"github.com/asmanlearning/asman/internal/router"
	"github.com/asmanlearning/asman/internal/screen"
	"github.com/asmanlearning/asman/internal/screens/packview"
	"github.com/asmanlearning/asman/internal/ui/components"
	"github.com/asmanlearning/asman/internal/ui/layout"
	"github.com/asmanlearning/asman/internal/ui/theme"
)

// Mode selects where the lesson content comes from.
type Mode int

const (
	ModeText Mode = iota
	ModeCurriculum
	ModeUpload
	ModeAudio
)

// Title returns the screen title for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeCurriculum:
		return "Curriculum Lesson"
	case ModeUpload:
		return "Upload Content"
	case ModeAudio:
		return "Audio Note"
	default:
		return "New Lesson"
	}
}

// Generator produces lesson packs. *lessons.Service satisfies it.
type Generator interface {
	GenerateLessonPack(ctx context.Context, req lessons.LessonRequest) (lessons.LessonPack, error)
	GenerateUploadPack(ctx context.Context, req lessons.LessonRequest) (lessons.LessonPack, error)
}

// Deps are the services the compose and pack screens use.
type Deps struct {
	Lessons      Generator
	Narration    narration.Service
	LanguageCode string
}

type field int

const (
	fieldContent field = iota
	fieldPath
	fieldClass
	fieldSubject
	fieldChapter
	fieldTopic
	fieldModules
	fieldPersona
	fieldLanguage
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ComposeScreen implements screen.Screen for the lesson request form.
type ComposeScreen struct {
	deps Deps
	mode Mode

	content  components.TextInput
	path     components.TextInput
	class    components.Picker
	subject  components.Picker
	chapter  components.Picker
	topic    components.Picker
	modules  components.Checklist
	persona  components.Picker
	language components.Picker

	order []field
	focus int

	generating bool
	frame      int
	errMsg     string
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)

// New creates a ComposeScreen for the given content mode.
func New(deps Deps, mode Mode) *ComposeScreen {
	s := &ComposeScreen{
		deps:     deps,
		mode:     mode,
		content:  components.NewTextInput("Content", "Paste or type the lesson content...", 4000),
		path:     components.NewTextInput("File", pathPlaceholder(mode), 1024),
		class:    components.NewPicker("Class", classOptions(), "3"),
		subject:  components.NewPicker("Subject", nil, ""),
		chapter:  components.NewPicker("Chapter", nil, ""),
		topic:    components.NewPicker("Topic", nil, ""),
		modules:  components.NewChecklist("Modules", moduleOptions()),
		persona:  components.NewPicker("Character", personaOptions(), catalog.DefaultPersonaID),
		language: components.NewPicker("Language", languageOptions(), string(lessons.LanguagePrimary)),
	}

	switch mode {
	case ModeCurriculum:
		s.order = []field{fieldClass, fieldSubject, fieldChapter, fieldTopic}
	case ModeUpload, ModeAudio:
		s.order = []field{fieldPath, fieldClass}
	default:
		s.order = []field{fieldContent, fieldClass}
	}
	s.order = append(s.order, fieldModules, fieldPersona, fieldLanguage)

	s.syncCurriculum()
	return s
}

func (s *ComposeScreen) Init() tea.Cmd {
	return s.setFocus(0)
}

func (s *ComposeScreen) Title() string {
	return s.mode.Title()
}

func (s *ComposeScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	switch s.order[s.focus] {
	case fieldModules:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case fieldContent, fieldPath:
	default:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Generate"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case packReadyMsg:
		return s.handlePackReady(msg)

	case spinnerTickMsg:
		if !s.generating {
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		return s.handleKey(msg)
	}

	// Cursor blink and other input-internal messages.
	return s, s.forward(msg)
}

func (s *ComposeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	current := s.order[s.focus]

	switch msg.String() {
	case "enter":
		return s, s.generate()
	case "tab":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab":
		return s, s.setFocus(s.focus - 1)
	case "down":
		if current != fieldModules || s.modules.AtBottom() {
			return s, s.setFocus(s.focus + 1)
		}
	case "up":
		if current != fieldModules || s.modules.AtTop() {
			return s, s.setFocus(s.focus - 1)
		}
	}

	s.errMsg = ""
	return s, s.forward(msg)
}

// forward sends msg to the focused field.
func (s *ComposeScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.order[s.focus] {
	case fieldContent:
		s.content, cmd = s.content.Update(msg)
	case fieldPath:
		s.path, cmd = s.path.Update(msg)
	case fieldClass:
		s.class, cmd = s.class.Update(msg)
		s.syncCurriculum()
	case fieldSubject:
		s.subject, cmd = s.subject.Update(msg)
		s.syncCurriculum()
	case fieldChapter:
		s.chapter, cmd = s.chapter.Update(msg)
		s.syncCurriculum()
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	case fieldModules:
		s.modules, cmd = s.modules.Update(msg)
	case fieldPersona:
		s.persona, cmd = s.persona.Update(msg)
	case fieldLanguage:
		s.language, cmd = s.language.Update(msg)
	}
	return cmd
}

// setFocus moves focus to order[i], wrapping at both ends.
func (s *ComposeScreen) setFocus(i int) tea.Cmd {
	n := len(s.order)
	s.focus = ((i % n) + n) % n

	s.content.Blur()
	s.path.Blur()
	for _, p := range s.pickers() {
		p.Blur()
	}
	s.modules.Blur()

	switch s.order[s.focus] {
	case fieldContent:
		return s.content.Focus()
	case fieldPath:
		return s.path.Focus()
	case fieldModules:
		s.modules.Focus()
	default:
		s.picker(s.order[s.focus]).Focus()
	}
	return nil
}

func (s *ComposeScreen) pickers() []*components.Picker {
	return []*components.Picker{&s.class, &s.subject, &s.chapter, &s.topic, &s.persona, &s.language}
}

func (s *ComposeScreen) picker(f field) *components.Picker {
	switch f {
	case fieldSubject:
		return &s.subject
	case fieldChapter:
		return &s.chapter
	case fieldTopic:
		return &s.topic
	case fieldPersona:
		return &s.persona
	case fieldLanguage:
		return &s.language
	default:
		return &s.class
	}
}

// syncCurriculum narrows subject, chapter and topic to what the catalog
// has for the selected class.
func (s *ComposeScreen) syncCurriculum() {
	if s.mode != ModeCurriculum {
		return
	}
	var subjects []components.Option
	for _, sub := range catalog.CatalogSubjects(s.class.Value()) {
		subjects = append(subjects, components.Option{Value: sub.Value, Label: sub.Label})
	}
	s.subject.SetOptions(subjects)

	chapters := catalog.Chapters(s.class.Value(), s.subject.Value())
	var chapterOpts []components.Option
	for _, c := range chapters {
		chapterOpts = append(chapterOpts, components.Option{Value: c.Title, Label: c.Chapter + ": " + c.Title})
	}
	s.chapter.SetOptions(chapterOpts)

	var topics []components.Option
	for _, c := range chapters {
		if c.Title == s.chapter.Value() {
			for _, t := range c.Topics {
				topics = append(topics, components.Option{Value: t, Label: t})
			}
		}
	}
	s.topic.SetOptions(topics)
}

// request builds the lesson request from the form. File and audio sources
// are filled in by the generation command after extraction.
func (s *ComposeScreen) request() lessons.LessonRequest {
	req := lessons.LessonRequest{
		ClassLevel:          s.class.Value(),
		EnrichmentModuleIDs: s.modules.Checked(),
		PersonaID:           s.persona.Value(),
		Language:            lessons.ParseLanguage(s.language.Value()),
	}
	switch s.mode {
	case ModeCurriculum:
		req.Source = lessons.CurriculumRef{
			ClassLevel: s.class.Value(),
			Subject:    s.subject.Value(),
			Chapter:    s.chapter.Value(),
			Topic:      s.topic.Value(),
		}
	case ModeText:
		req.Source = lessons.FreeText{Text: s.content.Value()}
	}
	return req
}

func (s *ComposeScreen) generate() tea.Cmd {
	if s.deps.Lessons == nil {
		s.errMsg = "Lesson generation is not available."
		return nil
	}
	if (s.mode == ModeUpload || s.mode == ModeAudio) && strings.TrimSpace(s.path.Value()) == "" {
		s.errMsg = "Enter the path of the file to use."
		return nil
	}

	s.generating = true
	s.errMsg = ""
	s.frame = 0
	return tea.Batch(generateCmd(s.deps.Lessons, s.mode, s.request(), strings.TrimSpace(s.path.Value())), spinnerTick())
}

func generateCmd(gen Generator, mode Mode, req lessons.LessonRequest, path string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		switch mode {
		case ModeUpload:
			text, err := intake.ExtractTextFromDocument(ctx, path)
			if err != nil {
				return packReadyMsg{Err: err}
			}
			req.Source = lessons.Extracted{Text: text, Kind: lessons.ExtractionUpload}
			pack, err := gen.GenerateUploadPack(ctx, req)
			return packReadyMsg{Pack: pack, Err: err}

		case ModeAudio:
			text, err := intake.TranscribeAudio(ctx, path)
			if err != nil {
				return packReadyMsg{Err: err}
			}
			req.Source = lessons.Extracted{Text: text, Kind: lessons.ExtractionAudio}
		}

		pack, err := gen.GenerateLessonPack(ctx, req)
		return packReadyMsg{Pack: pack, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *ComposeScreen) handlePackReady(msg packReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.errMsg = friendlyError(msg.Err)
		return s, nil
	}

	persona := catalog.ResolvePersona(s.persona.Value())
	next := packview.New(msg.Pack, persona, s.deps.Narration, s.deps.LanguageCode)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, lessons.ErrEmptyContent):
		return "Add some lesson content first."
	case errors.Is(err, intake.ErrTooLarge):
		return "That file is too large (25 MB limit)."
	default:
		return err.Error()
	}
}

func (s *ComposeScreen) View(width, height int) string {
	var rows []string
	rows = append(rows, theme.Hint.Render(intro(s.mode)), "")

	for _, f := range s.order {
		rows = append(rows, s.fieldView(f))
	}
	rows = append(rows, "")

	switch {
	case s.generating:
		spin := spinnerFrames[s.frame%len(spinnerFrames)]
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("%s Creating your lesson pack...", spin)))
	case s.errMsg != "":
		rows = append(rows, theme.ErrorText.Render(s.errMsg))
	default:
		rows = append(rows, theme.Hint.Render("Press Enter to generate the lesson pack."))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(strings.Join(rows, "\n"))
}

func (s *ComposeScreen) fieldView(f field) string {
	switch f {
	case fieldContent:
		return s.content.View()
	case fieldPath:
		return s.path.View()
	case fieldModules:
		return s.modules.View()
	default:
		return s.picker(f).View()
	}
}

func intro(m Mode) string {
	switch m {
	case ModeCurriculum:
		return "Pick a chapter and topic from the NCERT catalog."
	case ModeUpload:
		return "Use a text, Markdown or PDF file. Images are accepted and simulated."
	case ModeAudio:
		return "Use a recorded lesson note. Transcription is simulated."
	default:
		return "Type or paste what you want to teach."
	}
}

func pathPlaceholder(m Mode) string {
	if m == ModeAudio {
		return "path/to/recording.mp3"
	}
	return "path/to/notes.pdf"
}

func classOptions() []components.Option {
	var out []components.Option
	for _, c := range catalog.ClassLevels() {
		out = append(out, components.Option{Value: c.Value, Label: c.Label})
	}
	return out
}

func moduleOptions() []components.Option {
	var out []components.Option
	for _, m := range catalog.Modules() {
		out = append(out, components.Option{Value: m.ID, Label: m.Flag + " " + m.Name + ": " + m.Description})
	}
	return out
}

func personaOptions() []components.Option {
	var out []components.Option
	for _, p := range catalog.Personas() {
		out = append(out, components.Option{Value: p.ID, Label: p.Name + " (" + p.Personality + ")"})
	}
	return out
}

func languageOptions() []components.Option {
	return []components.Option{
		{Value: string(lessons.LanguagePrimary), Label: "English"},
		{Value: string(lessons.LanguageSecondary), Label: "Hindi"},
		{Value: string(lessons.LanguageBilingual), Label: "Bilingual (English + Hindi)"},
	}
}
