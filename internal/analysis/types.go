// Package analysis turns a finished session's analytics into a short
// narrative report, either locally (rules) or via a text-generation
// provider with a mandatory local fallback.
package analysis

import (
	"context"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/session"
)

// Snapshot is the aggregated, anonymized summary of a finished
// session handed to a provider. It carries everything a narrative
// needs and nothing else.
type Snapshot struct {
	Score           int
	CorrectCount    int
	WrongCount      int
	TotalAttempts   int
	Elapsed         time.Duration
	AverageResponse time.Duration

	ErrorsByOperation map[quiz.Operation]int
	ErrorsByTable     map[int]int

	// Echo of the configuration, for context in the delegated prompt.
	Operations []quiz.Operation
	Tables     []int

	// WrongAnswers is the per-answer detail for wrong attempts.
	WrongAnswers []WrongAnswer
}

// WrongAnswer is one missed question in presentable form.
type WrongAnswer struct {
	Question string
	Given    int
	Correct  int
}

// Provider produces a narrative for an analytics snapshot. The
// narrative uses a small markdown subset: headings, bold, italics,
// lists and paragraphs.
type Provider interface {
	Analyze(ctx context.Context, snap Snapshot) (string, error)
}

// NewSnapshot builds a Snapshot from a session summary.
func NewSnapshot(sum *session.Summary) Snapshot {
	snap := Snapshot{
		Score:             sum.Score,
		CorrectCount:      sum.CorrectCount,
		WrongCount:        sum.WrongCount,
		TotalAttempts:     sum.TotalAttempts,
		Elapsed:           sum.Elapsed,
		AverageResponse:   sum.AverageResponse,
		ErrorsByOperation: sum.ErrorsByOperation,
		ErrorsByTable:     sum.ErrorsByTable,
		Operations:        sum.Config.Operations,
		Tables:            sum.Config.Tables,
	}
	for _, a := range sum.WrongAttempts {
		snap.WrongAnswers = append(snap.WrongAnswers, WrongAnswer{
			Question: a.Question.Text,
			Given:    a.Given,
			Correct:  a.Question.Answer,
		})
	}
	return snap
}
