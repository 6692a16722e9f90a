package session

import (
	"math"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// Summary aggregates a finished session for the result screen and the
// analysis providers. It is a pure function of the frozen session.
type Summary struct {
	Config quiz.Config

	// Elapsed is the wall time from start to finish.
	Elapsed time.Duration

	// CorrectCount and WrongCount are counted from the attempt log,
	// which is the source of truth: under repeat-on-error it holds
	// every retry, so TotalAttempts can exceed TotalQuestions.
	CorrectCount  int
	WrongCount    int
	TotalAttempts int

	// Score is round(100 × CorrectCount / TotalAttempts). Retries
	// count against the score even when the final answer was right.
	Score int

	// ErrorsByOperation and ErrorsByTable histogram the wrong attempts
	// by operation and by table base.
	ErrorsByOperation map[quiz.Operation]int
	ErrorsByTable     map[int]int

	// AverageResponse is the mean per-attempt latency.
	AverageResponse time.Duration

	// WrongAttempts lists every incorrect attempt for the result
	// screen's review list.
	WrongAttempts []Attempt
}

// BuildSummary scores a finished session. Deterministic given the
// attempt log; no mutation of the session.
func BuildSummary(s *Session) *Summary {
	sum := &Summary{
		Config:            s.Config,
		Elapsed:           s.EndedAt.Sub(s.StartedAt),
		TotalAttempts:     len(s.Attempts),
		ErrorsByOperation: make(map[quiz.Operation]int),
		ErrorsByTable:     make(map[int]int),
	}

	var totalLatency time.Duration
	for _, a := range s.Attempts {
		totalLatency += a.Latency
		if a.Correct {
			sum.CorrectCount++
			continue
		}
		sum.WrongCount++
		sum.ErrorsByOperation[a.Question.Operation]++
		sum.ErrorsByTable[a.Question.Operand1]++
		sum.WrongAttempts = append(sum.WrongAttempts, a)
	}

	if sum.TotalAttempts > 0 {
		sum.Score = int(math.Round(100 * float64(sum.CorrectCount) / float64(sum.TotalAttempts)))
		sum.AverageResponse = totalLatency / time.Duration(sum.TotalAttempts)
	}

	return sum
}
