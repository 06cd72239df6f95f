package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/ui/theme"
)

// Option is one choice of a Picker or Checklist.
type Option struct {
	Value string
	Label string
}

// Picker selects exactly one option, cycled with left and right.
type Picker struct {
	Label    string
	Options  []Option
	Selected int
	focused  bool
}

// NewPicker creates a picker with the option whose value equals initial
// selected, or the first option.
func NewPicker(label string, options []Option, initial string) Picker {
	p := Picker{Label: label, Options: options}
	p.Select(initial)
	return p
}

// Select moves the selection to value. Unknown values leave it unchanged.
func (p *Picker) Select(value string) {
	for i, o := range p.Options {
		if o.Value == value {
			p.Selected = i
			return
		}
	}
}

// SetOptions replaces the options, keeping the current value if present.
func (p *Picker) SetOptions(options []Option) {
	current := p.Value()
	p.Options = options
	p.Selected = 0
	p.Select(current)
}

// Value returns the selected option's value, or "" when empty.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected].Value
}

func (p *Picker) Focus()       { p.focused = true }
func (p *Picker) Blur()        { p.focused = false }
func (p Picker) Focused() bool { return p.focused }

// Update handles left/right cycling.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected - 1 + len(p.Options)) % len(p.Options)
	case "right", "l":
		p.Selected = (p.Selected + 1) % len(p.Options)
	}
	return p, nil
}

// View renders the picker on one line.
func (p Picker) View() string {
	label := "(none)"
	if p.Selected >= 0 && p.Selected < len(p.Options) {
		label = p.Options[p.Selected].Label
	}

	value := lipgloss.NewStyle().Foreground(theme.Text).Render(label)
	if p.focused {
		arrow := lipgloss.NewStyle().Foreground(theme.Accent)
		value = arrow.Render("◂ ") + theme.Selected.Render(label) + arrow.Render(" ▸")
	}
	return renderLabel(p.Label, p.focused) + value
}
