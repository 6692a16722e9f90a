package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// RoundProgress shows how far through the round the player is, as a
// "Question N of T" label followed by a horizontal bar. The bar fills
// by answered questions; a repeated question does not move it.
type RoundProgress struct {
	Answered int
	Total    int
	Width    int
}

// NewRoundProgress creates a progress indicator for a round of Total
// questions, Answered of which are done.
func NewRoundProgress(answered, total, width int) RoundProgress {
	return RoundProgress{Answered: answered, Total: total, Width: width}
}

// View renders the label and bar on one line.
func (p RoundProgress) View() string {
	if p.Total <= 0 {
		return ""
	}

	current := p.Answered + 1
	if current > p.Total {
		current = p.Total
	}
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Question %d of %d", current, p.Total)) + "  "

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Answered / p.Total
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	return label + bar
}
