package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/ui/theme"
)

// Tabs is a horizontal tab bar. Tab and right move forward, shift+tab and
// left move back; both wrap.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles tab switching.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Labels) == 0 {
		return t, nil
	}

	switch kmsg.String() {
	case "tab", "right", "l":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab", "left", "h":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	}
	return t, nil
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(l))
		} else {
			parts = append(parts, theme.TabInactive.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
