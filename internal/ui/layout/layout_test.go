package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Defaults(t *testing.T) {
	out := Header{Title: "Lesson Pack"}.Render(100)
	assert.Contains(t, out, "ASman Learning")
	assert.Contains(t, out, "Lesson Pack")
	assert.Contains(t, out, "not signed in")
	assert.Contains(t, out, "offline")
}

func TestHeader_UserAndBackend(t *testing.T) {
	out := Header{Title: "Home", User: "Meera", Backend: "gemini-2.0-flash"}.Render(100)
	assert.Contains(t, out, "● Meera")
	assert.Contains(t, out, "gemini-2.0-flash")
	assert.NotContains(t, out, "offline")
}

func TestFooter_DropsHintsThatDoNotFitButKeepsQuit(t *testing.T) {
	hints := []KeyHint{
		{Key: "←→", Description: "Section"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "N", Description: "Narrate"},
		{Key: "H", Description: "Home"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}

	wide := RenderFooter(hints, 120)
	for _, h := range hints {
		assert.Contains(t, wide, h.Description)
	}

	narrow := RenderFooter(hints, 40)
	assert.Contains(t, narrow, "Section")
	assert.Contains(t, narrow, "Quit")
	assert.NotContains(t, narrow, "Back")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := Header{Title: "Home"}.Render(80)
	footer := RenderFooter([]KeyHint{{Key: "Ctrl+C", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Equal(t, 1, strings.Count(frame, "body"))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.Contains(t, RenderMinSizeMessage(60, 20), "It is now 60 x 20")
}
