// Package results implements the end-of-round report screen.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tabuada/internal/analysis"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/layout"
	"github.com/abhisek/tabuada/internal/ui/theme"
)

// narrativeMsg delivers the async analysis narrative.
type narrativeMsg string

// spinnerTickMsg animates the waiting indicator while the narrative is
// being generated.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

// ResultsScreen displays the round summary and narrative report.
type ResultsScreen struct {
	summary      *sess.Summary
	analyzer     *analysis.Service
	narrative    string
	spinnerFrame int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished round.
func New(summary *sess.Summary, analyzer *analysis.Service) *ResultsScreen {
	return &ResultsScreen{summary: summary, analyzer: analyzer}
}

func (r *ResultsScreen) Title() string {
	return "Round Report"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New round"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	analyzer := r.analyzer
	snap := analysis.NewSnapshot(r.summary)
	return tea.Batch(
		func() tea.Msg {
			return narrativeMsg(analyzer.Narrative(context.Background(), snap))
		},
		spinnerTick(),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativeMsg:
		r.narrative = string(msg)
		return r, nil

	case spinnerTickMsg:
		if r.narrative != "" {
			return r, nil
		}
		r.spinnerFrame = (r.spinnerFrame + 1) % len(spinnerFrames)
		return r, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Round complete!"))
	b.WriteString("\n\n")

	// Score, big and colored by tier.
	scoreColor := theme.Success
	if sum.Score < 60 {
		scoreColor = theme.Error
	} else if sum.Score < 80 {
		scoreColor = theme.Accent
	}
	b.WriteString(center.Foreground(scoreColor).Bold(true).Render(fmt.Sprintf("Score: %d%%", sum.Score)))
	b.WriteString("\n\n")

	mins := int(sum.Elapsed.Minutes())
	secs := int(sum.Elapsed.Seconds()) % 60
	statsLine := fmt.Sprintf("Answers: %d      Correct: %d      Wrong: %d      Time: %d:%02d      Avg: %.1fs",
		sum.TotalAttempts, sum.CorrectCount, sum.WrongCount, mins, secs, sum.AverageResponse.Seconds())
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(configLine(sum)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 64)))

	// Missed questions.
	if len(sum.WrongAttempts) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Missed questions"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, a := range sum.WrongAttempts {
			line := fmt.Sprintf("%s   you answered %d, it was %d",
				a.Question.Text, a.Given, a.Question.Answer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Narrative report.
	b.WriteString(center.Foreground(theme.TextDim).Render("Report"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if r.narrative == "" {
		waiting := spinnerFrames[r.spinnerFrame] + " Looking at your round..."
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render(waiting))
	} else {
		report := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(renderMarkdown(r.narrative))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, report))
	}
	b.WriteString("\n")

	return b.String()
}

// configLine echoes the round configuration.
func configLine(sum *sess.Summary) string {
	ops := make([]string, len(sum.Config.Operations))
	for i, op := range sum.Config.Operations {
		ops[i] = op.Symbol()
	}
	tables := make([]string, len(sum.Config.Tables))
	for i, t := range sum.Config.Tables {
		tables[i] = fmt.Sprint(t)
	}

	mode := "typed answers"
	if sum.Config.AnswerMode == quiz.ModeMultipleChoice {
		mode = "multiple choice"
	}
	retry := "move on"
	if sum.Config.RepeatOnError {
		retry = "repeat on error"
	}

	return fmt.Sprintf("%s, tables %s, %s, %s",
		strings.Join(ops, " "), strings.Join(tables, " "), mode, retry)
}

// renderMarkdown flattens the narrative's markdown subset for the
// terminal: headings become bold accent lines, emphasis markers are
// stripped.
func renderMarkdown(md string) string {
	var out []string
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "## ") {
			heading := strings.TrimPrefix(line, "## ")
			out = append(out, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(heading))
			continue
		}
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "*", "")
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
