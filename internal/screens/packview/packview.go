// Package packview shows a generated lesson pack in section tabs and
// narrates sections on request.
package packview

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/narration"
	"github.com/asmanlearning/asman/internal/router"
	"github.com/asmanlearning/asman/internal/screen"
	"github.com/asmanlearning/asman/internal/ui/components"
	"github.com/asmanlearning/asman/internal/ui/layout"
	"github.com/asmanlearning/asman/internal/ui/theme"
)

// PackScreen implements screen.Screen for a finished lesson pack.
type PackScreen struct {
	pack     lessons.LessonPack
	voice    narration.Voice
	narrator narration.Service
	tabs     components.Tabs
	scroll   int
	speaking narration.Handle
	status   string
}

var _ screen.Screen = (*PackScreen)(nil)
var _ screen.KeyHintProvider = (*PackScreen)(nil)
var _ screen.Leaver = (*PackScreen)(nil)

// New creates a PackScreen. narrator may be nil, in which case narration
// keys only report that narration is off.
func New(pack lessons.LessonPack, persona catalog.Persona, narrator narration.Service, languageCode string) *PackScreen {
	return &PackScreen{
		pack:     pack,
		voice:    narration.VoiceFor(persona, languageCode),
		narrator: narrator,
		tabs:     components.NewTabs(tabLabels...),
	}
}

func (s *PackScreen) Init() tea.Cmd {
	return nil
}

func (s *PackScreen) Title() string {
	return "Lesson Pack"
}

func (s *PackScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Section"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.speaking != "" {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Stop"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Narrate"})
	}
	return append(hints,
		layout.KeyHint{Key: "H", Description: "Home"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

// Leave stops any narration still playing.
func (s *PackScreen) Leave() {
	s.stop()
}

func (s *PackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrationDoneMsg:
		return s.handleNarrationDone(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return s, s.narrate()
		case "s":
			s.stop()
			return s, nil
		case "h":
			return s, func() tea.Msg { return router.HomeMsg{} }
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		case "down", "j":
			s.scroll++
			return s, nil
		case "pgup":
			s.scroll = max(0, s.scroll-10)
			return s, nil
		case "pgdown":
			s.scroll += 10
			return s, nil
		}

		before := s.tabs.Active
		s.tabs, _ = s.tabs.Update(msg)
		if s.tabs.Active != before {
			s.scroll = 0
		}
	}
	return s, nil
}

// narrate speaks the active section. The narration tab speaks the script;
// every other tab speaks its own text with visual cues removed.
func (s *PackScreen) narrate() tea.Cmd {
	if s.narrator == nil {
		s.status = "Narration is turned off."
		return nil
	}

	text := sectionText(s.pack, s.tabs.Active)
	h, err := s.narrator.Speak(context.Background(), text, s.voice)
	if err != nil {
		if errors.Is(err, narration.ErrNothingToSay) {
			s.status = "This section has nothing to read aloud."
		} else {
			s.status = "Narration failed: " + err.Error()
		}
		return nil
	}

	s.speaking = h
	s.status = s.voice.Name + " is narrating " + tabLabels[s.tabs.Active] + "..."
	narrator := s.narrator
	return func() tea.Msg {
		return narrationDoneMsg{Handle: h, Err: narrator.Wait(h)}
	}
}

func (s *PackScreen) stop() {
	if s.speaking == "" || s.narrator == nil {
		return
	}
	_ = s.narrator.Cancel(s.speaking)
	s.speaking = ""
	s.status = "Narration stopped."
}

func (s *PackScreen) handleNarrationDone(msg narrationDoneMsg) (screen.Screen, tea.Cmd) {
	// A stopped or superseded narration reports in late; ignore it.
	if msg.Handle != s.speaking {
		return s, nil
	}
	s.speaking = ""
	switch {
	case msg.Err == nil:
		s.status = "Narration finished."
	case errors.Is(msg.Err, context.Canceled):
		s.status = "Narration stopped."
	default:
		s.status = "Narration failed: " + msg.Err.Error()
	}
	return s, nil
}

func (s *PackScreen) View(width, height int) string {
	var top []string
	if s.pack.IsFallback() {
		top = append(top, theme.Notice.Width(width).Render(fallbackNotice(s.pack)))
	}
	top = append(top,
		lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(s.pack.Title),
		s.tabs.View(),
		"",
	)

	status := ""
	if s.status != "" {
		status = theme.Hint.Render(s.status)
	}

	bodyWidth := max(20, width-4)
	lines := strings.Split(s.renderBody(bodyWidth), "\n")

	visible := height - lipgloss.Height(strings.Join(top, "\n")) - 1
	if visible < 1 {
		visible = 1
	}
	start := min(s.scroll, max(0, len(lines)-visible))
	end := min(len(lines), start+visible)

	body := strings.Join(lines[start:end], "\n")
	out := strings.Join(top, "\n") + "\n" +
		lipgloss.NewStyle().PaddingLeft(2).Height(visible).Render(body) + "\n" +
		status
	return out
}

func (s *PackScreen) renderBody(width int) string {
	text := theme.Body.Width(width)

	if s.tabs.Active != tabExplanation {
		return text.Render(sectionText(s.pack, s.tabs.Active))
	}

	var parts []string
	for _, seg := range lessons.SplitVisualCues(s.pack.Explanation) {
		if seg.Kind == lessons.SegmentVisual {
			parts = append(parts, theme.Whiteboard.Width(width-2).Render("🎨 Whiteboard: "+seg.Text))
			continue
		}
		if t := strings.TrimSpace(seg.Text); t != "" {
			parts = append(parts, text.Render(t))
		}
	}
	return strings.Join(parts, "\n\n")
}

func fallbackNotice(p lessons.LessonPack) string {
	return "Offline lesson pack: " + lessons.DescribeFallback(p.FallbackReason) + ". It is complete and ready to teach."
}
