package session

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/tabuada/internal/problemgen"
	"github.com/abhisek/tabuada/internal/quiz"
)

var t0 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func testConfig() quiz.Config {
	return quiz.Config{
		Operations:     []quiz.Operation{quiz.OpAdd, quiz.OpMultiply},
		Tables:         []int{3, 7},
		TotalQuestions: 5,
		AnswerMode:     quiz.ModeFreeEntry,
	}
}

func startedSession(t *testing.T, cfg quiz.Config) *Session {
	t.Helper()
	s := New(problemgen.New(rand.New(rand.NewSource(1))))
	if err := s.Start(cfg, t0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

// answer submits the right or wrong answer for the current question and
// clears the feedback window.
func answer(t *testing.T, s *Session, correct bool, now time.Time) Outcome {
	t.Helper()
	q := s.Current()
	if q == nil {
		t.Fatal("no current question")
	}
	given := q.Answer
	if !correct {
		given = q.Answer + 1
	}
	out, ok := s.Submit(strconv.Itoa(given), now)
	if !ok {
		t.Fatal("Submit rejected a well-formed answer")
	}
	s.Present(now)
	return out
}

func TestStart_GeneratesExactlyN(t *testing.T) {
	s := startedSession(t, testConfig())

	if len(s.Questions) != 5 {
		t.Errorf("generated %d questions, want 5", len(s.Questions))
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want PhaseInProgress", s.Phase())
	}
	if s.ID == "" {
		t.Error("expected session ID to be set")
	}
}

func TestStart_RejectsIncompleteConfig(t *testing.T) {
	s := New(nil)
	err := s.Start(quiz.Config{}, t0)
	if err == nil {
		t.Fatal("expected advisory error for empty config")
	}
	if err.Error() != quiz.MsgMissingBoth {
		t.Errorf("error = %q, want %q", err.Error(), quiz.MsgMissingBoth)
	}
	if s.Phase() != PhaseConfiguring {
		t.Error("failed start must not leave the configuring phase")
	}
}

func TestSubmit_UnparseableInputIsNoOp(t *testing.T) {
	s := startedSession(t, testConfig())

	for _, input := range []string{"", "   ", "abc", "3.5"} {
		if _, ok := s.Submit(input, t0); ok {
			t.Errorf("Submit(%q) accepted, want no-op", input)
		}
	}
	if len(s.Attempts) != 0 {
		t.Errorf("attempt log has %d entries after unparseable input, want 0", len(s.Attempts))
	}
	if s.Index != 0 {
		t.Errorf("index = %d after unparseable input, want 0", s.Index)
	}
}

func TestChallengeMode_EverySubmissionAdvances(t *testing.T) {
	cfg := testConfig()
	cfg.RepeatOnError = false
	s := startedSession(t, cfg)

	for i := 0; i < cfg.TotalQuestions; i++ {
		before := s.Index
		out := answer(t, s, i%2 == 0, t0.Add(time.Duration(i)*time.Second))
		if !out.Advanced {
			t.Fatalf("submission %d did not advance in challenge mode", i)
		}
		if s.Index != before+1 {
			t.Fatalf("index = %d after submission %d, want %d", s.Index, i, before+1)
		}
	}

	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v after last question, want PhaseFinished", s.Phase())
	}
	if len(s.Attempts) != cfg.TotalQuestions {
		t.Errorf("attempt log length = %d, want %d in challenge mode", len(s.Attempts), cfg.TotalQuestions)
	}
}

func TestRepeatOnError_WrongAnswerDoesNotAdvance(t *testing.T) {
	cfg := testConfig()
	cfg.RepeatOnError = true
	s := startedSession(t, cfg)

	firstText := s.Current().Text

	out := answer(t, s, false, t0)
	if out.Advanced {
		t.Error("wrong answer advanced under repeat-on-error")
	}
	if s.Index != 0 {
		t.Errorf("index = %d after wrong answer, want 0", s.Index)
	}
	if s.Current().Text != firstText {
		t.Error("current question changed after wrong answer")
	}
	if len(s.Attempts) != 1 {
		t.Errorf("attempt log length = %d, want 1 (retry still recorded)", len(s.Attempts))
	}

	out = answer(t, s, true, t0)
	if !out.Advanced {
		t.Error("correct answer did not advance")
	}
	if s.Index != 1 {
		t.Errorf("index = %d after correct answer, want 1", s.Index)
	}
	if len(s.Attempts) != 2 {
		t.Errorf("attempt log length = %d, want 2", len(s.Attempts))
	}
}

func TestRepeatOnError_RetryGetsFreshChoices(t *testing.T) {
	cfg := testConfig()
	cfg.RepeatOnError = true
	cfg.AnswerMode = quiz.ModeMultipleChoice
	s := startedSession(t, cfg)

	q := s.Current()
	if len(q.Choices) != problemgen.ChoiceCount {
		t.Fatalf("current question has %d choices, want %d", len(q.Choices), problemgen.ChoiceCount)
	}
	first := make([]int, len(q.Choices))
	copy(first, q.Choices)

	// Pick a wrong candidate.
	wrong := q.Answer + 1
	for _, c := range q.Choices {
		if c != q.Answer {
			wrong = c
			break
		}
	}
	if _, ok := s.Select(wrong, t0); !ok {
		t.Fatal("Select rejected")
	}

	// Before re-presentation the alternatives are cleared.
	if s.Current().Choices != nil {
		t.Error("choices not cleared after wrong answer under repeat-on-error")
	}

	s.Present(t0.Add(2 * time.Second))
	q = s.Current()
	if len(q.Choices) != problemgen.ChoiceCount {
		t.Fatalf("retry has %d choices, want %d", len(q.Choices), problemgen.ChoiceCount)
	}

	same := true
	for i := range q.Choices {
		if q.Choices[i] != first[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("retry reuses the identical alternative ordering")
	}
}

func TestPendingBlocksDoubleSubmit(t *testing.T) {
	s := startedSession(t, testConfig())

	q := s.Current()
	if _, ok := s.Submit(strconv.Itoa(q.Answer), t0); !ok {
		t.Fatal("first Submit rejected")
	}
	if !s.Pending() {
		t.Fatal("expected pending continuation after submission")
	}

	// A second submission during the feedback window must be rejected.
	if _, ok := s.Submit("1", t0); ok {
		t.Error("Submit accepted while a continuation was pending")
	}
	if _, ok := s.Select(1, t0); ok {
		t.Error("Select accepted while a continuation was pending")
	}
	if len(s.Attempts) != 1 {
		t.Errorf("attempt log length = %d, want 1", len(s.Attempts))
	}

	s.Present(t0.Add(time.Second))
	if s.Pending() {
		t.Error("Present did not clear the pending token")
	}
}

func TestSubmit_RecordsLatency(t *testing.T) {
	s := startedSession(t, testConfig())

	q := s.Current()
	out, ok := s.Submit(strconv.Itoa(q.Answer), t0.Add(2500*time.Millisecond))
	if !ok {
		t.Fatal("Submit rejected")
	}
	if !out.Correct {
		t.Error("expected correct outcome")
	}
	if got := s.Attempts[0].Latency; got != 2500*time.Millisecond {
		t.Errorf("latency = %v, want 2.5s", got)
	}
}

func TestFinish_FreezesSession(t *testing.T) {
	cfg := testConfig()
	cfg.TotalQuestions = 2
	s := startedSession(t, cfg)

	answer(t, s, true, t0.Add(time.Second))
	out := answer(t, s, true, t0.Add(2*time.Second))

	if !out.Finished {
		t.Error("last submission did not report Finished")
	}
	if s.EndedAt != t0.Add(2*time.Second) {
		t.Errorf("EndedAt = %v, want %v", s.EndedAt, t0.Add(2*time.Second))
	}
	if _, ok := s.Submit("1", t0); ok {
		t.Error("finished session accepted a submission")
	}
	if s.Current() != nil {
		t.Error("finished session still has a current question")
	}
}

func TestReset_ReturnsToConfiguring(t *testing.T) {
	s := startedSession(t, testConfig())
	answer(t, s, false, t0)

	s.Reset()

	if s.Phase() != PhaseConfiguring {
		t.Errorf("phase = %v after reset, want PhaseConfiguring", s.Phase())
	}
	if len(s.Questions) != 0 || len(s.Attempts) != 0 || s.ErrorCount != 0 {
		t.Error("reset did not discard session state")
	}

	// The same value must be startable again.
	if err := s.Start(testConfig(), t0); err != nil {
		t.Fatalf("Start after reset: %v", err)
	}
}

func TestAttemptLogLength_RepeatMode(t *testing.T) {
	cfg := testConfig()
	cfg.TotalQuestions = 3
	cfg.RepeatOnError = true
	s := startedSession(t, cfg)

	// Miss the first question twice, then answer everything right.
	answer(t, s, false, t0)
	answer(t, s, false, t0)
	for s.Phase() == PhaseInProgress {
		answer(t, s, true, t0)
	}

	if len(s.Attempts) != cfg.TotalQuestions+2 {
		t.Errorf("attempt log length = %d, want %d", len(s.Attempts), cfg.TotalQuestions+2)
	}
	if s.ErrorCount != 2 {
		t.Errorf("error count = %d, want 2", s.ErrorCount)
	}
}

func TestAttemptLogLength_RepeatModeNoErrors(t *testing.T) {
	cfg := testConfig()
	cfg.RepeatOnError = true
	s := startedSession(t, cfg)

	for s.Phase() == PhaseInProgress {
		answer(t, s, true, t0)
	}

	if len(s.Attempts) != cfg.TotalQuestions {
		t.Errorf("attempt log length = %d, want %d with zero errors", len(s.Attempts), cfg.TotalQuestions)
	}
}
