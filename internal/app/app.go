package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/analysis"
	"github.com/abhisek/tabuada/internal/problemgen"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/screens/game"
	"github.com/abhisek/tabuada/internal/screens/results"
	"github.com/abhisek/tabuada/internal/screens/setup"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/layout"
)

// Options wires the application's services into the TUI.
type Options struct {
	// Defaults pre-fills the setup form.
	Defaults quiz.Config

	// Generator produces the questions. Nil means a fresh time-seeded
	// generator.
	Generator *problemgen.Generator

	// Analyzer builds the round report. Required.
	Analyzer *analysis.Service

	// AutoStart skips the setup form and begins a round with Defaults
	// right away. Ignored when Defaults is not runnable, so a bad flag
	// combination lands on the form with its validation message.
	AutoStart bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel showing the setup screen.
func newAppModel(opts Options) AppModel {
	gen := opts.Generator
	if gen == nil {
		gen = problemgen.New(nil)
	}

	resultsFactory := func(sum *sess.Summary) screen.Screen {
		return results.New(sum, opts.Analyzer)
	}
	gameFactory := func(cfg quiz.Config) screen.Screen {
		return game.New(cfg, sess.New(gen), resultsFactory)
	}

	setupScreen := setup.New(opts.Defaults, gameFactory)
	r := router.New(setupScreen)
	if opts.AutoStart && opts.Defaults.Runnable() {
		r.Push(gameFactory(opts.Defaults))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
