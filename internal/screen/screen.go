// Package screen defines the contract every screen of the trainer
// implements. The app model renders the shared header and footer; a
// screen only draws the content area between them.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/ui/layout"
)

// Screen is one full-content view (setup form, quiz round, report).
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced)
	// screen plus a follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. width and height exclude the
	// header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
