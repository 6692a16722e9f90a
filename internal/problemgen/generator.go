// Package problemgen generates arithmetic questions and their
// multiple-choice alternatives.
package problemgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// Generator produces arithmetic questions for a quiz configuration.
// It is a pure function of the configuration and its random source;
// a seeded source gives a reproducible question stream.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces a single question: one operation and one table are
// drawn uniformly from the configuration, the secondary operand
// uniformly from [1,10].
func (g *Generator) Generate(cfg quiz.Config) Question {
	op := cfg.Operations[g.rng.Intn(len(cfg.Operations))]
	table := cfg.Tables[g.rng.Intn(len(cfg.Tables))]
	second := g.intBetween(1, 10)

	q := Question{Operation: op, Operand1: table}

	switch op {
	case quiz.OpAdd:
		q.Operand2 = second
		q.Answer = table + second
		q.Text = fmt.Sprintf("%d + %d = ?", table, second)

	case quiz.OpSubtract:
		// Second operand capped at the table so the result is never
		// negative.
		bound := min(table, 10)
		if bound < 1 {
			bound = 1
		}
		q.Operand2 = g.intBetween(1, bound)
		q.Answer = table - q.Operand2
		q.Text = fmt.Sprintf("%d - %d = ?", table, q.Operand2)

	case quiz.OpMultiply:
		q.Operand2 = second
		q.Answer = table * second
		q.Text = fmt.Sprintf("%d × %d = ?", table, second)

	case quiz.OpDivide:
		// The dividend is a multiple of the table, so the quotient is
		// exact. The player solves for the quotient.
		q.Operand2 = second
		q.Answer = second
		q.Text = fmt.Sprintf("%d ÷ %d = ?", table*second, table)
	}

	return q
}

// GenerateSet produces n questions, suppressing repeats of any of the
// last 7 accepted questions. Suppression is best effort: after 50
// colliding attempts the duplicate is accepted anyway.
func (g *Generator) GenerateSet(cfg quiz.Config, n int) []Question {
	questions := make([]Question, 0, n)
	var recent recentWindow

	for i := 0; i < n; i++ {
		q := g.generateFresh(cfg, &recent)
		questions = append(questions, q)
		recent.push(q.Text)
	}

	return questions
}

// generateFresh retries generation until the candidate misses the
// recent window or the attempt cap is exhausted.
func (g *Generator) generateFresh(cfg quiz.Config, recent *recentWindow) Question {
	var q Question
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		q = g.Generate(cfg)
		if !recent.contains(q.Text) {
			return q
		}
	}
	// Fail open: a duplicate question beats an infinite loop.
	return q
}

// intBetween returns a uniform random integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
