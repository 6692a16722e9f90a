package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// AnswerInput is the free-entry answer field. It only accepts digits
// and, once the answer is locked in, shows a check or cross after the
// typed value.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewAnswerInput creates an answer field taking up to maxDigits digits.
func NewAnswerInput(maxDigits int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = maxDigits
	ti.Focus()
	return AnswerInput{Model: ti}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages to the inner model. Printable non-digit
// keys are swallowed; a locked-in answer ignores everything.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.submitted {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// NumericValue parses the typed text as an integer.
func (a AnswerInput) NumericValue() (int, error) {
	return strconv.Atoi(a.Model.Value())
}

// Submit locks the field and records whether the answer was right.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
}

func (a AnswerInput) View() string {
	view := a.Model.View()
	if !a.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	if a.correct {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + mark
}
