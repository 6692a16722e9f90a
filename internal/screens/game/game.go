// Package game implements the active quiz screen.
package game

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/problemgen"
	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
	sess "github.com/abhisek/tabuada/internal/session"
	"github.com/abhisek/tabuada/internal/ui/components"
	"github.com/abhisek/tabuada/internal/ui/layout"
)

// feedbackDelay is how long the correct/wrong feedback stays on screen
// before the next question appears.
const feedbackDelay = 1200 * time.Millisecond

// GameScreen drives one quiz round.
type GameScreen struct {
	cfg     quiz.Config
	session *sess.Session

	input components.AnswerInput
	grid  components.ChoiceGrid

	showingFeedback bool
	lastOutcome     sess.Outcome
	lastQuestion    problemgen.Question
	showingQuit     bool

	elapsed time.Duration
	errMsg  string

	resultsFactory func(*sess.Summary) screen.Screen
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a game screen for the given configuration. The session
// is started on Init.
func New(cfg quiz.Config, session *sess.Session, resultsFactory func(*sess.Summary) screen.Screen) *GameScreen {
	return &GameScreen{
		cfg:            cfg,
		session:        session,
		resultsFactory: resultsFactory,
	}
}

func (g *GameScreen) Title() string {
	return "Practice"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case g.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop"},
			{Key: "N", Description: "Keep going"},
		}
	case g.showingFeedback:
		return nil
	case g.cfg.AnswerMode == quiz.ModeMultipleChoice:
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Pick"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Stop"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Stop"},
		}
	}
}

// Init starts the round. Calling it again on a running session is a
// no-op apart from re-arming the input and clock commands.
func (g *GameScreen) Init() tea.Cmd {
	if g.session.Phase() != sess.PhaseInProgress {
		if err := g.session.Start(g.cfg, time.Now()); err != nil {
			g.errMsg = err.Error()
			return nil
		}
		g.setupAnswerInput()
	}
	return tea.Batch(g.input.Init(), clockCmd())
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if g.session.Phase() != sess.PhaseInProgress {
			return g, nil
		}
		g.elapsed = time.Since(g.session.StartedAt)
		return g, clockCmd()

	case feedbackDoneMsg:
		return g.advance()

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.answering() && g.cfg.AnswerMode == quiz.ModeFreeEntry {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}

	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.errMsg != "" {
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if g.showingQuit {
		switch key {
		case "y", "Y":
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			g.showingQuit = false
		}
		return g, nil
	}

	// During feedback all input is ignored; the pause advances on its
	// own. A buffered Enter here cannot double-submit.
	if g.showingFeedback {
		return g, nil
	}

	switch key {
	case "esc":
		g.showingQuit = true
		return g, nil
	case "enter":
		return g.submit()
	}

	if g.cfg.AnswerMode == quiz.ModeMultipleChoice {
		var cmd tea.Cmd
		g.grid, cmd = g.grid.Update(msg)
		return g, cmd
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GameScreen) submit() (screen.Screen, tea.Cmd) {
	now := time.Now()
	if q := g.session.Current(); q != nil {
		g.lastQuestion = *q
	}

	var outcome sess.Outcome
	var ok bool
	if g.cfg.AnswerMode == quiz.ModeMultipleChoice {
		outcome, ok = g.session.Select(g.grid.Selected(), now)
	} else {
		outcome, ok = g.session.Submit(g.input.Value(), now)
	}
	if !ok {
		return g, nil
	}

	g.lastOutcome = outcome
	g.showingFeedback = true
	if g.cfg.AnswerMode == quiz.ModeMultipleChoice {
		g.grid.Reveal()
	} else {
		g.input.Submit(outcome.Correct)
	}

	return g, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// advance ends the feedback pause: next question, or the results
// screen when the round is over.
func (g *GameScreen) advance() (screen.Screen, tea.Cmd) {
	g.showingFeedback = false

	if g.lastOutcome.Finished {
		summary := sess.BuildSummary(g.session)
		results := g.resultsFactory(summary)
		return g, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results}
		}
	}

	g.session.Present(time.Now())
	g.setupAnswerInput()
	return g, g.input.Init()
}

// setupAnswerInput rebuilds the answer widget for the current question.
func (g *GameScreen) setupAnswerInput() {
	q := g.session.Current()
	if q == nil {
		return
	}
	if g.cfg.AnswerMode == quiz.ModeMultipleChoice {
		g.grid = components.NewChoiceGrid(q.Choices, q.Answer)
		return
	}
	g.input = components.NewAnswerInput(4)
}

func (g *GameScreen) answering() bool {
	return g.errMsg == "" && !g.showingQuit && !g.showingFeedback &&
		g.session.Phase() == sess.PhaseInProgress
}

// clockCmd returns a 1-second tick command.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
