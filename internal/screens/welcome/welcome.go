// Package welcome is the splash screen: a chalkboard drawn line by line,
// then the banner and a tagline naming each global module in turn.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asmanlearning/asman/internal/catalog"
	"github.com/asmanlearning/asman/internal/router"
	"github.com/asmanlearning/asman/internal/screen"
	"github.com/asmanlearning/asman/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// ticksPerModule is how long each module stays in the tagline.
	ticksPerModule = 12
)

var board = []string{
	"╭─────────────────────╮",
	"│  ✎  Today's lesson  │",
	"│     ☁ → ☂ → 🌊      │",
	"│   Q. Where does     │",
	"│      rain go?       │",
	"╰───────┬─────┬───────╯",
	"        │     │",
	"       ═╧═   ═╧═",
}

// bannerAt is the tick on which the banner and tagline appear, a short
// pause after the last board line.
var bannerAt = len(board) + 3

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen stays until a key is pressed, then replaces itself with the
// screen built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	modules []catalog.Module
	ticks   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next, modules: catalog.Modules()}
}

// Title is empty so the header stays quiet on the splash.
func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.ticks++
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

// leave builds the next screen once. Later keys are ignored.
func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// drawn is the number of board lines visible.
func (w *WelcomeScreen) drawn() int {
	return min(w.ticks, len(board))
}

func (w *WelcomeScreen) showBanner() bool {
	return w.ticks >= bannerAt
}

// module is the one named in the tagline right now.
func (w *WelcomeScreen) module() catalog.Module {
	i := (w.ticks - bannerAt) / ticksPerModule
	return w.modules[i%len(w.modules)]
}

func (w *WelcomeScreen) View(width, height int) string {
	chalk := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := make([]string, len(board))
	for i := range board {
		if i < w.drawn() {
			lines[i] = chalk.Render(board[i])
		}
	}
	parts := []string{strings.Join(lines, "\n")}

	if w.showBanner() {
		tagline := "Lesson packs for every classroom"
		if len(w.modules) > 0 {
			m := w.module()
			tagline += ", with a " + m.Flag + " " + m.Name
		}
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to start"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
