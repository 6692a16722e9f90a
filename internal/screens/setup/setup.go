// Package setup implements the quiz configuration screen.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/layout"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowOperations = iota
	rowTables
	rowCount
	rowMode
	rowRepeat
	rowStart
	rowEnd
)

var countChoices = []int{10, 15, 20, 30}

// SetupScreen is the quiz configuration form.
type SetupScreen struct {
	operations components.CheckGroup
	tables     components.CheckGroup
	count      components.CheckGroup
	mode       components.CheckGroup
	repeat     components.CheckGroup
	start      components.Button

	focus       int
	gameFactory func(quiz.Config) screen.Screen
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen pre-filled from defaults. gameFactory
// builds the game screen for the chosen configuration.
func New(defaults quiz.Config, gameFactory func(quiz.Config) screen.Screen) *SetupScreen {
	s := &SetupScreen{gameFactory: gameFactory}

	var opOptions []components.CheckOption
	for _, op := range quiz.AllOperations {
		opOptions = append(opOptions, components.CheckOption{
			Label:   op.Label(),
			Checked: defaults.HasOperation(op),
		})
	}
	s.operations = components.NewCheckGroup("Operations", opOptions, false)

	var tableOptions []components.CheckOption
	for t := 1; t <= 10; t++ {
		tableOptions = append(tableOptions, components.CheckOption{
			Label:   strconv.Itoa(t),
			Checked: defaults.HasTable(t),
		})
	}
	s.tables = components.NewCheckGroup("Tables", tableOptions, false)

	var countOptions []components.CheckOption
	for _, n := range countChoices {
		countOptions = append(countOptions, components.CheckOption{
			Label:   strconv.Itoa(n),
			Checked: n == defaults.TotalQuestions,
		})
	}
	s.count = components.NewCheckGroup("Questions", countOptions, true)

	s.mode = components.NewCheckGroup("Answers", []components.CheckOption{
		{Label: "Type the answer", Checked: defaults.AnswerMode != quiz.ModeMultipleChoice},
		{Label: "Multiple choice", Checked: defaults.AnswerMode == quiz.ModeMultipleChoice},
	}, true)

	s.repeat = components.NewCheckGroup("On a wrong answer", []components.CheckOption{
		{Label: "Ask again until correct", Checked: defaults.RepeatOnError},
		{Label: "Move on", Checked: !defaults.RepeatOnError},
	}, true)

	s.start = components.NewButton("Start practice", nil)

	s.setFocus(rowOperations)
	return s
}

func (s *SetupScreen) Title() string {
	return "New Round"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Option"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

// Config assembles the quiz configuration from the form state.
func (s *SetupScreen) Config() quiz.Config {
	cfg := quiz.Config{
		RepeatOnError: s.repeat.CheckedIndex() == 0,
		AnswerMode:    quiz.ModeFreeEntry,
	}
	if s.mode.CheckedIndex() == 1 {
		cfg.AnswerMode = quiz.ModeMultipleChoice
	}

	for i, op := range quiz.AllOperations {
		if s.operations.Options[i].Checked {
			cfg.Operations = append(cfg.Operations, op)
		}
	}
	for i, o := range s.tables.Options {
		if o.Checked {
			cfg.Tables = append(cfg.Tables, i+1)
		}
	}
	if i := s.count.CheckedIndex(); i >= 0 {
		cfg.TotalQuestions = countChoices[i]
	}
	return cfg
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		if s.focus > 0 {
			s.setFocus(s.focus - 1)
		}
		return s, nil
	case "down", "tab":
		if s.focus < rowEnd-1 {
			s.setFocus(s.focus + 1)
		}
		return s, nil
	case "enter":
		if s.focus == rowStart {
			if cfg := s.Config(); cfg.Runnable() {
				return s, s.startGame(cfg)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case rowOperations:
		s.operations, cmd = s.operations.Update(msg)
	case rowTables:
		s.tables, cmd = s.tables.Update(msg)
	case rowCount:
		s.count, cmd = s.count.Update(msg)
	case rowMode:
		s.mode, cmd = s.mode.Update(msg)
	case rowRepeat:
		s.repeat, cmd = s.repeat.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) startGame(cfg quiz.Config) tea.Cmd {
	game := s.gameFactory(cfg)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: game}
	}
}

func (s *SetupScreen) setFocus(row int) {
	s.focus = row
	s.operations.Blur()
	s.tables.Blur()
	s.count.Blur()
	s.mode.Blur()
	s.repeat.Blur()
	s.start.Active = false

	switch row {
	case rowOperations:
		s.operations.Focus()
	case rowTables:
		s.tables.Focus()
	case rowCount:
		s.count.Focus()
	case rowMode:
		s.mode.Focus()
	case rowRepeat:
		s.repeat.Focus()
	case rowStart:
		s.start.Active = true
	}
}

func (s *SetupScreen) View(width, height int) string {
	cfg := s.Config()
	s.start.Enabled = cfg.Runnable()

	var b strings.Builder
	b.WriteString("\n")

	sections := []string{
		s.operations.View(),
		s.tables.View(),
		s.count.View(),
		s.mode.View(),
		s.repeat.View(),
	}
	for _, sec := range sections {
		b.WriteString(sec)
		b.WriteString("\n\n")
	}

	b.WriteString(s.start.View())
	b.WriteString("\n\n")

	if msg := cfg.ValidationMessage(); msg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(msg))
	} else {
		total := fmt.Sprintf("%d questions, %d tables", cfg.TotalQuestions, len(cfg.Tables))
		b.WriteString(theme.Hint.Render(total))
	}

	card := theme.Card.Width(min(width-6, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
