package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/ui/theme"
)

// Checklist toggles any number of options. Up and down move the cursor,
// space toggles.
type Checklist struct {
	Label   string
	Options []Option
	Cursor  int
	checked map[string]bool
	focused bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(label string, options []Option) Checklist {
	return Checklist{
		Label:   label,
		Options: options,
		checked: make(map[string]bool),
	}
}

// Checked returns the checked values in option order.
func (c Checklist) Checked() []string {
	var out []string
	for _, o := range c.Options {
		if c.checked[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

// Toggle flips the option with the given value.
func (c *Checklist) Toggle(value string) {
	c.checked[value] = !c.checked[value]
}

func (c *Checklist) Focus()       { c.focused = true }
func (c *Checklist) Blur()        { c.focused = false }
func (c Checklist) Focused() bool { return c.focused }

// AtTop and AtBottom let a form move focus past the list.
func (c Checklist) AtTop() bool    { return c.Cursor == 0 }
func (c Checklist) AtBottom() bool { return c.Cursor >= len(c.Options)-1 }

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Toggle(c.Options[c.Cursor].Value)
	}
	return c, nil
}

// View renders one line per option.
func (c Checklist) View() string {
	var b strings.Builder
	b.WriteString(renderLabel(c.Label, c.focused))
	for i, o := range c.Options {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat(" ", 14))
		}
		box := "[ ]"
		if c.checked[o.Value] {
			box = "[x]"
		}
		line := box + " " + o.Label
		switch {
		case c.focused && i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case c.checked[o.Value]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
	}
	return b.String()
}
