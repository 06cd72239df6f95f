package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/router"
	"github.com/asmanlearning/asman/internal/screen"
	"github.com/asmanlearning/asman/internal/screens/compose"
	"github.com/asmanlearning/asman/internal/ui/components"
	"github.com/asmanlearning/asman/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
	user string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. user is the signed-in teacher's display
// name, empty when nobody is signed in.
func New(deps compose.Deps, user string) *HomeScreen {
	push := func(mode compose.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: compose.New(deps, mode)}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:       "New lesson from text",
			Description: "Paste notes or a paragraph from the textbook.",
			Action:      push(compose.ModeText),
		},
		{
			Label:       "Lesson from the curriculum",
			Description: "Pick a class, subject and chapter.",
			Action:      push(compose.ModeCurriculum),
		},
		{
			Label:       "Upload a document",
			Description: "A PDF or text file from this computer.",
			Action:      push(compose.ModeUpload),
		},
		{
			Label:       "Use an audio note",
			Description: "A recorded explanation of what to teach.",
			Action:      push(compose.ModeAudio),
		},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		user: user,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := "Namaste!"
	if h.user != "" {
		greeting = "Namaste, " + h.user + "!"
	}

	var sections []string
	sections = append(sections,
		theme.Title.Render(greeting),
		theme.Subtitle.Render("Create a complete lesson pack for your class in a minute."),
		"",
		h.menu.View(),
		renderModules(),
	)

	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(strings.Join(sections, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderModules lists the global learning modules a lesson can weave in.
func renderModules() string {
	var parts []string
	for _, m := range catalog.Modules() {
		parts = append(parts, m.Flag+" "+m.Name)
	}
	return theme.Hint.Render("Global modules: " + strings.Join(parts, " · "))
}
