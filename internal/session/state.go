package session

import (
	"time"

	"github.com/abhisek/tabuada/internal/problemgen"
)

// Phase represents the lifecycle phase of a session.
type Phase int

const (
	PhaseConfiguring Phase = iota // No session running yet
	PhaseInProgress               // Serving questions
	PhaseFinished                 // All questions answered, log frozen
)

// Attempt is one recorded submission against a question instance. An
// Attempt is never mutated after being appended; a retry under
// repeat-on-error produces a new Attempt against the same question.
type Attempt struct {
	// Question is a snapshot of the question as presented.
	Question problemgen.Question

	// Given is the submitted answer.
	Given int

	// Correct reports whether Given matched the question's answer.
	Correct bool

	// Latency is the time from the question being shown to this
	// submission.
	Latency time.Duration
}

// Outcome describes the state change produced by one submission.
type Outcome struct {
	// Correct reports whether the submission was right.
	Correct bool

	// Advanced is true when the current index moved to the next
	// question. Always true in challenge mode; false for a wrong
	// answer under repeat-on-error.
	Advanced bool

	// Finished is true when the submission completed the session.
	Finished bool

	// CorrectAnswer echoes the question's answer for feedback display.
	CorrectAnswer int
}
