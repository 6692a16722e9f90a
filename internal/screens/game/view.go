package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", g.errMsg))
	}
	if g.showingQuit {
		return renderQuitConfirm(width)
	}

	// During feedback the session may already point at the next
	// question; keep showing the one that was answered.
	q := g.session.Current()
	if g.showingFeedback {
		q = &g.lastQuestion
	}
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing questions...")
	}

	var b strings.Builder

	// Status line: progress bar left, correct count and clock right.
	answered := g.session.Index
	total := len(g.session.Questions)
	if g.showingFeedback && g.lastOutcome.Advanced {
		answered--
	}
	bar := components.NewRoundProgress(answered, total, min(width/2, 48))

	correct := 0
	for _, a := range g.session.Attempts {
		if a.Correct {
			correct++
		}
	}
	mins := int(g.elapsed.Minutes())
	secs := int(g.elapsed.Seconds()) % 60
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d   %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			correct, mins, secs,
		))

	statusLine := "  " + bar.View()
	pad := width - lipgloss.Width(statusLine) - lipgloss.Width(right) - 4
	if pad > 0 {
		statusLine += strings.Repeat(" ", pad) + right
	}
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	// The question itself.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Answer area.
	if g.cfg.AnswerMode == quiz.ModeMultipleChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.grid.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + g.input.View()))
	}
	b.WriteString("\n\n")

	if g.showingFeedback {
		b.WriteString(g.renderFeedback(width))
	}

	return b.String()
}

func (g *GameScreen) renderFeedback(width int) string {
	if g.lastOutcome.Correct {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!")
	}

	msg := "Not quite"
	if g.cfg.RepeatOnError {
		msg += " — try this one again"
	} else {
		msg += fmt.Sprintf(" — the answer is %d", g.lastOutcome.CorrectAnswer)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render(msg)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Stop this round?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("The round will be discarded."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
