// Package layout renders the chrome shared by every screen: the header
// bar, the key-hint footer and the frame holding them together.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/ui/theme"
)

// Minimum terminal size the screens are designed for.
const (
	MinWidth  = 72
	MinHeight = 22
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// barStyle is the bordered bar used for both header and footer.
func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the top bar: app name left, screen title centered,
// status right. status may be empty.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Tabuada")
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(status)

	// The border eats two columns on each side.
	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	gapLeft := (inner-lipgloss.Width(center))/2 - lipgloss.Width(brand)
	if gapLeft < 1 {
		gapLeft = 1
	}
	gapRight := inner - lipgloss.Width(brand) - gapLeft - lipgloss.Width(center) - lipgloss.Width(right)
	if gapRight < 1 {
		gapRight = 1
	}

	line := brand + strings.Repeat(" ", gapLeft) + center + strings.Repeat(" ", gapRight) + right
	return barStyle(width).Render(line)
}

// RenderFooter draws the bottom bar listing the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return barStyle(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer into the full frame,
// sizing the content to whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
