// Package layout draws the frame around every screen: a header naming the
// app, the screen, the teacher and the lesson backend, and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/ui/theme"
)

// The pack viewer needs this much room for its tabs and whiteboard boxes.
const (
	MinWidth  = 80
	MinHeight = 24
)

type KeyHint struct {
	Key         string
	Description string
}

// Header is the top bar. Empty fields are shown as "not signed in" and
// "offline".
type Header struct {
	Title   string
	User    string
	Backend string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Please make the terminal larger.\n\nLesson packs need at least %d x %d.\nIt is now %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Render lays the header out as brand on the left, the screen title in the
// middle, and the teacher and backend on the right.
func (h Header) Render(width int) string {
	user, backend := h.User, h.Backend
	if user == "" {
		user = "not signed in"
	}
	if backend == "" {
		backend = "offline"
	}

	left := theme.Title.Render(" ASman Learning")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render("● "+user) +
		theme.Hint.Render("  "+backend+" ")

	inner := max(0, width-4)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max(1, (inner-cw)/2-lw)
	gapR := max(1, inner-lw-gapL-cw-rw)

	return bar.Width(width).Render(left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right)
}

// RenderFooter draws as many hints as fit in width. The last hint is
// always kept, since it is the way out of the app.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}

	const sep = "   "
	room := width - 6
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, sep)) > room {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}
	return bar.Width(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, giving the content all
// the height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
