package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// CheckOption is a single toggleable entry in a CheckGroup.
type CheckOption struct {
	Label   string
	Checked bool
}

// CheckGroup is a horizontal group of checkboxes. With Single set it
// behaves as a radio group: checking one option unchecks the rest.
type CheckGroup struct {
	Title   string
	Options []CheckOption
	Cursor  int
	Single  bool
	focused bool
}

// NewCheckGroup creates a checkbox group.
func NewCheckGroup(title string, options []CheckOption, single bool) CheckGroup {
	return CheckGroup{
		Title:   title,
		Options: options,
		Single:  single,
	}
}

// Focus marks the group as active for keyboard input and rendering.
func (g *CheckGroup) Focus()       { g.focused = true }
func (g *CheckGroup) Blur()        { g.focused = false }
func (g CheckGroup) Focused() bool { return g.focused }

// Init returns nil.
func (g CheckGroup) Init() tea.Cmd {
	return nil
}

// Update handles left/right navigation and space/enter toggling.
func (g CheckGroup) Update(msg tea.Msg) (CheckGroup, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case " ", "enter":
		g.toggle(g.Cursor)
	}

	return g, nil
}

func (g *CheckGroup) toggle(i int) {
	if i < 0 || i >= len(g.Options) {
		return
	}
	if g.Single {
		for j := range g.Options {
			g.Options[j].Checked = j == i
		}
		return
	}
	g.Options[i].Checked = !g.Options[i].Checked
}

// Checked returns the labels of all checked options in display order.
func (g CheckGroup) Checked() []string {
	var out []string
	for _, o := range g.Options {
		if o.Checked {
			out = append(out, o.Label)
		}
	}
	return out
}

// CheckedIndex returns the index of the first checked option, or -1.
func (g CheckGroup) CheckedIndex() int {
	for i, o := range g.Options {
		if o.Checked {
			return i
		}
	}
	return -1
}

// View renders the group as a titled row of checkboxes.
func (g CheckGroup) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if g.focused {
		titleStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(g.Title))
	b.WriteString("\n  ")

	mark := "[x]"
	if g.Single {
		mark = "(•)"
	}
	unmark := "[ ]"
	if g.Single {
		unmark = "( )"
	}

	for i, o := range g.Options {
		box := unmark
		if o.Checked {
			box = mark
		}
		entry := box + " " + o.Label

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if o.Checked {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if g.focused && i == g.Cursor {
			style = style.Foreground(theme.Primary).Bold(true).Underline(true)
		}

		b.WriteString(style.Render(entry))
		if i < len(g.Options)-1 {
			b.WriteString("   ")
		}
	}

	return b.String()
}
