// Package router keeps the screen stack. Navigation in the trainer is
// a short loop: the setup form pushes a game, a finished game replaces
// itself with the results screen, and the results screen pops back to
// setup. Screens drive navigation by emitting the messages below.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/screen"
)

// PushScreenMsg puts a new screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg discards the top screen, returning to the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen in place, so popping from the
// new screen skips the replaced one.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a router with root as the bottom screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push makes s the active screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the active screen. At the bottom of the stack it does
// nothing.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the active screen for s without changing the stack
// depth, and runs s's Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the screen currently shown.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports the stack size.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update intercepts navigation messages; everything else goes to the
// active screen, whose returned value becomes the new stack top.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
