// Package session owns the quiz session state machine: question list,
// current index, attempt log, and the submit/advance cycle.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tabuada/internal/problemgen"
	"github.com/abhisek/tabuada/internal/quiz"
)

// Session drives one quiz from start to finish. It is exclusively
// owned by its creator and mutated only through its methods; all
// transitions are synchronous.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Config is the configuration the session was started with.
	// Read-only for the session's lifetime.
	Config quiz.Config

	// Questions is the full question list, generated up front.
	Questions []problemgen.Question

	// Index is the position of the current question.
	Index int

	// Attempts is the append-only submission log. Under repeat-on-error
	// it can grow past len(Questions).
	Attempts []Attempt

	// ErrorCount is the number of wrong submissions.
	ErrorCount int

	// StartedAt and EndedAt bound the session wall time.
	StartedAt time.Time
	EndedAt   time.Time

	phase   Phase
	pending bool
	shownAt time.Time
	gen     *problemgen.Generator
}

// New creates a Session in the configuring phase.
func New(gen *problemgen.Generator) *Session {
	if gen == nil {
		gen = problemgen.New(nil)
	}
	return &Session{gen: gen}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Pending reports whether a deferred continuation (the feedback window
// between a submission and the next question) is outstanding. While
// pending, Submit and Select are rejected, which guards the
// double-submit race.
func (s *Session) Pending() bool {
	return s.pending
}

// Start validates the configuration, generates the full question list
// and transitions to InProgress. An incomplete configuration yields an
// advisory error carrying the setup-screen message.
func (s *Session) Start(cfg quiz.Config, now time.Time) error {
	if s.phase == PhaseInProgress {
		return errors.New("session already in progress")
	}
	if msg := cfg.ValidationMessage(); msg != "" {
		return errors.New(msg)
	}

	s.ID = uuid.New().String()
	s.Config = cfg
	s.Questions = s.gen.GenerateSet(cfg, cfg.TotalQuestions)
	s.Index = 0
	s.Attempts = nil
	s.ErrorCount = 0
	s.StartedAt = now
	s.EndedAt = time.Time{}
	s.phase = PhaseInProgress
	s.pending = false
	s.Present(now)
	return nil
}

// Current returns the question at the current index, or nil when no
// question is active.
func (s *Session) Current() *problemgen.Question {
	if s.phase != PhaseInProgress || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Present marks the current question as shown: it clears the pending
// token, stamps the latency clock and, in multiple-choice mode, builds
// the alternative set if the question has none. A repeat-on-error
// retry arrives here with its alternatives cleared, so the retry gets
// a fresh set.
func (s *Session) Present(now time.Time) {
	q := s.Current()
	if q == nil {
		return
	}
	s.pending = false
	s.shownAt = now
	if s.Config.AnswerMode == quiz.ModeMultipleChoice && q.Choices == nil {
		q.Choices = s.gen.BuildChoices(q.Answer)
	}
}

// Submit records a free-entry answer. Unparseable input is a no-op:
// nothing is logged and the question stays current and the player must
// correct the entry. The second return value is false for any no-op
// (bad input, wrong phase, or a pending continuation).
func (s *Session) Submit(raw string, now time.Time) (Outcome, bool) {
	if s.phase != PhaseInProgress || s.pending {
		return Outcome{}, false
	}
	n, ok := problemgen.ParseAnswer(raw)
	if !ok {
		return Outcome{}, false
	}
	return s.resolve(n, now), true
}

// Select records a multiple-choice pick. The candidate is the chosen
// answer value, not its position.
func (s *Session) Select(candidate int, now time.Time) (Outcome, bool) {
	if s.phase != PhaseInProgress || s.pending {
		return Outcome{}, false
	}
	return s.resolve(candidate, now), true
}

// resolve applies one submission: append the attempt, then either
// advance (correct answer, or any answer in challenge mode) or keep
// the question current for a retry.
func (s *Session) resolve(given int, now time.Time) Outcome {
	q := s.Questions[s.Index]
	correct := problemgen.CheckAnswer(given, q)

	s.Attempts = append(s.Attempts, Attempt{
		Question: q,
		Given:    given,
		Correct:  correct,
		Latency:  now.Sub(s.shownAt),
	})

	out := Outcome{Correct: correct, CorrectAnswer: q.Answer}

	if !correct {
		s.ErrorCount++
		if s.Config.RepeatOnError {
			// Same question again; drop the alternatives so the retry
			// gets a new set instead of a memorized button position.
			s.Questions[s.Index].Choices = nil
			s.pending = true
			return out
		}
	}

	out.Advanced = true
	s.Index++
	if s.Index == len(s.Questions) {
		s.finish(now)
		out.Finished = true
		return out
	}

	s.pending = true
	return out
}

// finish freezes the session: end timestamp recorded, no further
// mutation accepted.
func (s *Session) finish(now time.Time) {
	s.EndedAt = now
	s.phase = PhaseFinished
	s.pending = false
}

// Reset discards the session entirely and returns to the configuring
// phase. The generator is kept.
func (s *Session) Reset() {
	*s = Session{gen: s.gen}
}
