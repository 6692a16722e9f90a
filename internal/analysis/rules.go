package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

// Speed tier boundaries for the average response time.
const (
	fastResponse     = 3 * time.Second
	moderateResponse = 8 * time.Second
)

// RuleBased is the local analysis provider: deterministic thresholds,
// no external calls, never fails.
type RuleBased struct{}

// Analyze builds the narrative from fixed score, weakness and speed
// rules. The error return exists only to satisfy Provider; it is
// always nil.
func (RuleBased) Analyze(_ context.Context, snap Snapshot) (string, error) {
	var b strings.Builder

	b.WriteString("## Performance\n\n")
	b.WriteString(scoreMessage(snap.Score))
	b.WriteString("\n\n")

	if weak := weakSpots(snap); weak != "" {
		b.WriteString("## Where to focus\n\n")
		b.WriteString(weak)
		b.WriteString("\n")
	}

	b.WriteString("## Speed\n\n")
	b.WriteString(speedMessage(snap.AverageResponse))
	b.WriteString("\n")

	if recs := recommendations(snap); len(recs) > 0 {
		b.WriteString("\n## Tips\n\n")
		for _, r := range recs {
			b.WriteString("- " + r + "\n")
		}
	}

	return b.String(), nil
}

func scoreMessage(score int) string {
	switch {
	case score == 100:
		return "**Perfect score!** Every single answer was right — amazing work!"
	case score >= 80:
		return fmt.Sprintf("**Very good!** You scored **%d%%** — just a few slips away from perfect.", score)
	case score >= 60:
		return fmt.Sprintf("**Good job!** You scored **%d%%**. A little more practice and those missed ones will stick.", score)
	default:
		return fmt.Sprintf("You scored **%d%%**. Keep going — every practice round makes the next one easier.", score)
	}
}

// weakSpots lists the top-3 operations and tables by error count,
// descending. Empty string when the session had no errors.
func weakSpots(snap Snapshot) string {
	if snap.WrongCount == 0 {
		return ""
	}

	var b strings.Builder

	if ops := topOperations(snap, 3); len(ops) > 0 {
		labels := make([]string, len(ops))
		for i, op := range ops {
			labels[i] = fmt.Sprintf("*%s* (%d wrong)", op.Label(), snap.ErrorsByOperation[op])
		}
		b.WriteString("Most misses in: " + strings.Join(labels, ", ") + ".\n")
	}

	if tables := topTables(snap, 3); len(tables) > 0 {
		labels := make([]string, len(tables))
		for i, t := range tables {
			labels[i] = fmt.Sprintf("**table of %d** (%d wrong)", t, snap.ErrorsByTable[t])
		}
		b.WriteString("Trickiest tables: " + strings.Join(labels, ", ") + ".\n")
	}

	return b.String()
}

func speedMessage(avg time.Duration) string {
	secs := avg.Seconds()
	switch {
	case avg < fastResponse:
		return fmt.Sprintf("Lightning fast — **%.1fs** per answer on average.", secs)
	case avg < moderateResponse:
		return fmt.Sprintf("Steady pace — **%.1fs** per answer on average.", secs)
	default:
		return fmt.Sprintf("Averaging **%.1fs** per answer. Accuracy first, speed comes with repetition.", secs)
	}
}

func recommendations(snap Snapshot) []string {
	var recs []string
	if snap.WrongCount > 0 {
		recs = append(recs,
			"Replay the same setup with *repeat on error* turned on, so missed questions come back right away.",
			"Shorter, more frequent rounds beat one long one.",
		)
	}
	if snap.AverageResponse >= moderateResponse {
		recs = append(recs, "Try saying the answer out loud before typing it — it builds recall speed.")
	}
	return recs
}

// topOperations returns up to n operations ordered by error count
// descending, ties broken by the configured operation order.
func topOperations(snap Snapshot, n int) []quiz.Operation {
	ranked := make([]quiz.Operation, 0, len(snap.ErrorsByOperation))
	for _, op := range snap.Operations {
		if snap.ErrorsByOperation[op] > 0 {
			ranked = append(ranked, op)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return snap.ErrorsByOperation[ranked[i]] > snap.ErrorsByOperation[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func topTables(snap Snapshot, n int) []int {
	ranked := make([]int, 0, len(snap.ErrorsByTable))
	for _, t := range snap.Tables {
		if snap.ErrorsByTable[t] > 0 {
			ranked = append(ranked, t)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return snap.ErrorsByTable[ranked[i]] > snap.ErrorsByTable[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
