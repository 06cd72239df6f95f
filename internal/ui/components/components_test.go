package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

var classOptions = []Option{
	{Value: "1", Label: "Class 1"},
	{Value: "2", Label: "Class 2"},
	{Value: "3", Label: "Class 3"},
}

func TestPicker_CyclesAndWraps(t *testing.T) {
	p := NewPicker("Class", classOptions, "3")
	assert.Equal(t, "3", p.Value())

	p, _ = p.Update(key("right"))
	assert.Equal(t, "1", p.Value())

	p, _ = p.Update(key("left"))
	p, _ = p.Update(key("left"))
	assert.Equal(t, "2", p.Value())
}

func TestPicker_SetOptionsKeepsValue(t *testing.T) {
	p := NewPicker("Class", classOptions, "2")
	p.SetOptions([]Option{{Value: "2", Label: "Two"}, {Value: "5", Label: "Five"}})
	assert.Equal(t, "2", p.Value())

	p.SetOptions([]Option{{Value: "5", Label: "Five"}})
	assert.Equal(t, "5", p.Value())

	p.SetOptions(nil)
	assert.Equal(t, "", p.Value())
	assert.Contains(t, p.View(), "(none)")
}

func TestChecklist_Toggle(t *testing.T) {
	c := NewChecklist("Modules", []Option{
		{Value: "china", Label: "China Focus"},
		{Value: "japan", Label: "Japan Focus"},
		{Value: "usa", Label: "US Focus"},
	})
	c.Focus()

	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("up"))
	c, _ = c.Update(key("up"))
	c, _ = c.Update(key("space"))

	assert.Equal(t, []string{"china", "usa"}, c.Checked())
	assert.True(t, c.AtTop())

	c, _ = c.Update(key("space"))
	assert.Equal(t, []string{"usa"}, c.Checked())
	assert.Contains(t, c.View(), "[x] US Focus")
}

func TestTabs_Wrap(t *testing.T) {
	tabs := NewTabs("A", "B", "C")
	tabs, _ = tabs.Update(key("tab"))
	assert.Equal(t, 1, tabs.Active)

	tabs, _ = tabs.Update(key("left"))
	tabs, _ = tabs.Update(key("left"))
	assert.Equal(t, 2, tabs.Active)
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one"},
		{Label: "two"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("up"))
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("down"))
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_NumberPicksItem(t *testing.T) {
	picked := ""
	pick := func(name string) func() tea.Cmd {
		return func() tea.Cmd { picked = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "Text", Action: pick("text")},
		{Label: "Audio", Action: pick("audio"), Disabled: true},
		{Label: "Upload", Action: pick("upload")},
	})

	m, _ = m.Update(key("3"))
	assert.Equal(t, "upload", picked)
	assert.Equal(t, 2, m.Selected)

	picked = ""
	m, _ = m.Update(key("2"))
	assert.Empty(t, picked, "disabled items cannot be picked")
	m, _ = m.Update(key("9"))
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "upload", picked)
}

func TestMenu_ViewShowsSelectedDescription(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Text", Description: "Paste notes"},
		{Label: "Upload", Description: "A PDF or text file"},
	})
	view := m.View()
	assert.Contains(t, view, "1. Text")
	assert.Contains(t, view, "2. Upload")
	assert.Contains(t, view, "Paste notes")
	assert.NotContains(t, view, "A PDF or text file")
}
