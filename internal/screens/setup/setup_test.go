package setup

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/router"
	"github.com/abhisek/tabuada/internal/screen"
)

type stubGame struct {
	cfg quiz.Config
}

func (stubGame) Init() tea.Cmd                             { return nil }
func (s stubGame) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubGame) View(int, int) string                      { return "game" }
func (stubGame) Title() string                             { return "Practice" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDefaults() quiz.Config {
	return quiz.Config{
		Operations:     []quiz.Operation{quiz.OpMultiply},
		Tables:         []int{2, 3, 4, 5, 6, 7, 8, 9},
		TotalQuestions: 10,
		RepeatOnError:  true,
		AnswerMode:     quiz.ModeFreeEntry,
	}
}

func testSetupScreen() *SetupScreen {
	return New(testDefaults(), func(cfg quiz.Config) screen.Screen {
		return stubGame{cfg: cfg}
	})
}

func TestSetupScreen_Title(t *testing.T) {
	s := testSetupScreen()
	if s.Title() != "New Round" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Round")
	}
}

func TestSetupScreen_PrefillsFromDefaults(t *testing.T) {
	s := testSetupScreen()

	cfg := s.Config()
	want := testDefaults()
	if !reflect.DeepEqual(cfg.Operations, want.Operations) {
		t.Errorf("Operations = %v, want %v", cfg.Operations, want.Operations)
	}
	if !reflect.DeepEqual(cfg.Tables, want.Tables) {
		t.Errorf("Tables = %v, want %v", cfg.Tables, want.Tables)
	}
	if cfg.TotalQuestions != want.TotalQuestions {
		t.Errorf("TotalQuestions = %d, want %d", cfg.TotalQuestions, want.TotalQuestions)
	}
	if !cfg.RepeatOnError {
		t.Error("expected RepeatOnError from defaults")
	}
	if cfg.AnswerMode != quiz.ModeFreeEntry {
		t.Errorf("AnswerMode = %q, want free entry", cfg.AnswerMode)
	}
}

func TestSetupScreen_FocusNavigation(t *testing.T) {
	s := testSetupScreen()
	if !s.operations.Focused() {
		t.Fatal("expected the operations row to start focused")
	}

	scr, _ := s.Update(specialKey(tea.KeyDown))
	s = scr.(*SetupScreen)
	if !s.tables.Focused() {
		t.Error("expected down to focus the tables row")
	}

	scr, _ = s.Update(specialKey(tea.KeyUp))
	s = scr.(*SetupScreen)
	if !s.operations.Focused() {
		t.Error("expected up to focus the operations row again")
	}

	// Up at the top row stays put.
	scr, _ = s.Update(specialKey(tea.KeyUp))
	s = scr.(*SetupScreen)
	if !s.operations.Focused() {
		t.Error("expected the top row to keep focus")
	}
}

func TestSetupScreen_ToggleOperation(t *testing.T) {
	s := testSetupScreen()

	// Cursor starts on Addition, which the defaults leave unchecked.
	scr, _ := s.Update(keyPress(' '))
	s = scr.(*SetupScreen)

	cfg := s.Config()
	if !cfg.HasOperation(quiz.OpAdd) {
		t.Error("expected space to check the addition operation")
	}
	if !cfg.HasOperation(quiz.OpMultiply) {
		t.Error("expected multiplication to stay checked")
	}
}

func TestSetupScreen_ModeIsRadio(t *testing.T) {
	s := testSetupScreen()
	s.setFocus(rowMode)

	// Move to "Multiple choice" and pick it.
	scr, _ := s.Update(specialKey(tea.KeyRight))
	s = scr.(*SetupScreen)
	scr, _ = s.Update(keyPress(' '))
	s = scr.(*SetupScreen)

	if got := s.Config().AnswerMode; got != quiz.ModeMultipleChoice {
		t.Errorf("AnswerMode = %q, want multiple choice", got)
	}
	if got := len(s.mode.Checked()); got != 1 {
		t.Errorf("checked mode options = %d, want 1", got)
	}
}

func TestSetupScreen_StartPushesGame(t *testing.T) {
	s := testSetupScreen()
	s.setFocus(rowStart)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command when starting a runnable round")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}

	game, ok := msg.Screen.(stubGame)
	if !ok {
		t.Fatal("expected the game screen from the factory")
	}
	if !reflect.DeepEqual(game.cfg, s.Config()) {
		t.Error("expected the factory to receive the form configuration")
	}
}

func TestSetupScreen_StartBlockedWhenNotRunnable(t *testing.T) {
	s := testSetupScreen()

	// Uncheck the only selected operation.
	scr, _ := s.Update(specialKey(tea.KeyRight))
	s = scr.(*SetupScreen)
	scr, _ = s.Update(specialKey(tea.KeyRight))
	s = scr.(*SetupScreen)
	scr, _ = s.Update(keyPress(' '))
	s = scr.(*SetupScreen)
	if s.Config().Runnable() {
		t.Fatal("expected an unrunnable configuration")
	}

	s.setFocus(rowStart)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for an unrunnable configuration")
	}
}

func TestSetupScreen_View(t *testing.T) {
	s := testSetupScreen()
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected a non-empty view")
	}
}

func TestSetupScreen_ViewShowsValidationMessage(t *testing.T) {
	s := testSetupScreen()
	for i := range s.operations.Options {
		s.operations.Options[i].Checked = false
	}

	view := s.View(120, 40)
	if view == "" {
		t.Fatal("expected a non-empty view")
	}
}

func TestSetupScreen_KeyHints(t *testing.T) {
	s := testSetupScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
