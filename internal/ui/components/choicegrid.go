package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// gridColumns is the number of answer cells per row.
const gridColumns = 4

// ChoiceGrid lays the answer alternatives out as a keyboard-navigable
// grid. After Reveal the correct cell is highlighted green and a wrong
// pick red.
type ChoiceGrid struct {
	Choices     []int
	Cursor      int
	Revealed    bool
	ChosenIndex int
	Correct     int
}

// NewChoiceGrid creates a grid over the given alternatives.
func NewChoiceGrid(choices []int, correct int) ChoiceGrid {
	return ChoiceGrid{
		Choices:     choices,
		ChosenIndex: -1,
		Correct:     correct,
	}
}

// Init returns nil.
func (g ChoiceGrid) Init() tea.Cmd {
	return nil
}

// Update handles arrow navigation. Selection itself is driven by the
// owning screen via Selected(), so submission stays in one place.
func (g ChoiceGrid) Update(msg tea.Msg) (ChoiceGrid, tea.Cmd) {
	if g.Revealed {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor%gridColumns > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor%gridColumns < gridColumns-1 && g.Cursor+1 < len(g.Choices) {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-gridColumns >= 0 {
			g.Cursor -= gridColumns
		}
	case "down", "j":
		if g.Cursor+gridColumns < len(g.Choices) {
			g.Cursor += gridColumns
		}
	}

	return g, nil
}

// Selected returns the value under the cursor.
func (g ChoiceGrid) Selected() int {
	if g.Cursor < 0 || g.Cursor >= len(g.Choices) {
		return 0
	}
	return g.Choices[g.Cursor]
}

// Reveal freezes the grid and marks the chosen cell for feedback
// rendering.
func (g *ChoiceGrid) Reveal() {
	g.Revealed = true
	g.ChosenIndex = g.Cursor
}

// View renders the grid.
func (g ChoiceGrid) View() string {
	cellWidth := 0
	for _, c := range g.Choices {
		if w := len(fmt.Sprint(c)); w > cellWidth {
			cellWidth = w
		}
	}

	var rows []string
	for start := 0; start < len(g.Choices); start += gridColumns {
		end := start + gridColumns
		if end > len(g.Choices) {
			end = len(g.Choices)
		}

		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return strings.Join(rows, "\n")
}

func (g ChoiceGrid) renderCell(i, cellWidth int) string {
	label := fmt.Sprintf("%*d", cellWidth, g.Choices[i])

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1)

	switch {
	case g.Revealed && g.Choices[i] == g.Correct:
		style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
	case g.Revealed && i == g.ChosenIndex:
		style = style.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
	case g.Revealed:
		style = style.Foreground(theme.TextDim)
	case i == g.Cursor:
		style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
	}

	return style.Render(label)
}
