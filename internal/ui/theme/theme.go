// Package theme holds the shared palette and the few styles used from
// more than one screen. Screens build their own one-off styles from
// the palette colors.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#38BDF8") // sky blue
	Secondary = lipgloss.Color("#A78BFA") // soft violet
	Accent    = lipgloss.Color("#FBBF24") // amber
	Success   = lipgloss.Color("#4ADE80") // green
	Error     = lipgloss.Color("#FB7185") // coral
	Text      = lipgloss.Color("#F1F5F9") // near white
	TextDim   = lipgloss.Color("#64748B") // slate
	BgDark    = lipgloss.Color("#0C1222") // midnight
	BgCard    = lipgloss.Color("#162036") // dark blue slate
	Border    = lipgloss.Color("#2B3A55") // muted blue
)

// Hint is the style for advisory footer and helper text.
var Hint = lipgloss.NewStyle().
	Foreground(TextDim).
	Italic(true)

// Card frames a block of content, used by the setup form.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)
