// Package screen holds the contract between the router and the TUI screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/asmanlearning/asman/internal/ui/layout"
)

// Screen is one page of the TUI. The app frame draws the header and footer;
// a screen only fills the content area.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is told when it is dropped from the stack, so it can stop work it
// started, such as a narration still playing.
type Leaver interface {
	Leave()
}
