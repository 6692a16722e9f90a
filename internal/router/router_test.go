package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tabuada/internal/screen"
)

// fakeScreen is a minimal screen for testing.
type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func TestPushMakesScreenActive(t *testing.T) {
	r := New(&fakeScreen{name: "setup"})

	game := &fakeScreen{name: "game"}
	r.Push(game)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "game" {
		t.Errorf("active = %q, want game", r.Active().Title())
	}
	if !game.initRan {
		t.Error("Init() did not run on pushed screen")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&fakeScreen{name: "setup"})
	r.Push(&fakeScreen{name: "game"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("active = %q, want setup", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&fakeScreen{name: "setup"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "setup"})
	r.Push(&fakeScreen{name: "game"})

	results := &fakeScreen{name: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "results" {
		t.Errorf("active = %q, want results", r.Active().Title())
	}
	if !results.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "setup"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "game"}})
	if r.Active().Title() != "game" {
		t.Fatalf("after push msg active = %q", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &fakeScreen{name: "results"}})
	if r.Active().Title() != "results" {
		t.Fatalf("after replace msg active = %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "setup" {
		t.Fatalf("after pop msg active = %q", r.Active().Title())
	}
}
