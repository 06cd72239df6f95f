// Package router keeps the TUI screen stack: welcome or home at the bottom,
// then the compose form, then the lesson pack.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/asmanlearning/asman/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg goes back one screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen, as welcome does for home.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg drops every screen above the bottom one.
type HomeMsg struct{}

// Router is a stack of screens. Screens that leave the stack are told so
// when they implement screen.Leaver.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop never removes the bottom screen.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.truncate(len(r.stack) - 1)
	}
	return nil
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	top := len(r.stack) - 1
	leave(r.stack[top])
	r.stack[top] = s
	return s.Init()
}

// Home returns to the bottom screen.
func (r *Router) Home() tea.Cmd {
	r.truncate(1)
	return nil
}

// Close tells every screen on the stack that it is leaving. The app calls
// it on quit.
func (r *Router) Close() {
	r.truncate(0)
}

func (r *Router) truncate(n int) {
	for i := len(r.stack) - 1; i >= n; i-- {
		leave(r.stack[i])
		r.stack[i] = nil
	}
	r.stack = r.stack[:n]
}

func leave(s screen.Screen) {
	if l, ok := s.(screen.Leaver); ok {
		l.Leave()
	}
}

// Active is nil only after Close.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case HomeMsg:
		return r.Home()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
