package analysis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/tabuada/internal/quiz"
)

func perfectSnapshot() Snapshot {
	return Snapshot{
		Score:           100,
		CorrectCount:    10,
		TotalAttempts:   10,
		Elapsed:         40 * time.Second,
		AverageResponse: 4 * time.Second,
		Operations:      []quiz.Operation{quiz.OpMultiply},
		Tables:          []int{7},
	}
}

func TestRuleBasedNeverFails(t *testing.T) {
	text, err := RuleBased{}.Analyze(context.Background(), Snapshot{})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		t.Fatal("Analyze returned empty narrative")
	}
}

func TestScoreTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Perfect score"},
		{85, "Very good"},
		{80, "Very good"},
		{65, "Good job"},
		{40, "Keep going"},
	}
	for _, tt := range tests {
		got := scoreMessage(tt.score)
		if !strings.Contains(got, tt.want) {
			t.Errorf("scoreMessage(%d) = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}

func TestPerfectScoreSkipsWeakSpots(t *testing.T) {
	text, _ := RuleBased{}.Analyze(context.Background(), perfectSnapshot())
	if strings.Contains(text, "Where to focus") {
		t.Error("perfect session should have no weak-spot section")
	}
	if !strings.Contains(text, "Perfect score") {
		t.Error("missing perfect-score message")
	}
}

func TestWeakSpotsTopThreeDescending(t *testing.T) {
	snap := Snapshot{
		Score:         50,
		CorrectCount:  6,
		WrongCount:    6,
		TotalAttempts: 12,
		Operations:    []quiz.Operation{quiz.OpAdd, quiz.OpSubtract, quiz.OpMultiply, quiz.OpDivide},
		Tables:        []int{2, 3, 4, 5},
		ErrorsByOperation: map[quiz.Operation]int{
			quiz.OpAdd:      1,
			quiz.OpSubtract: 3,
			quiz.OpMultiply: 2,
			quiz.OpDivide:   4,
		},
		ErrorsByTable: map[int]int{2: 1, 3: 4, 4: 2, 5: 3},
	}

	ops := topOperations(snap, 3)
	want := []quiz.Operation{quiz.OpDivide, quiz.OpSubtract, quiz.OpMultiply}
	if len(ops) != len(want) {
		t.Fatalf("topOperations returned %d ops, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("topOperations[%d] = %s, want %s", i, ops[i], want[i])
		}
	}

	tables := topTables(snap, 3)
	wantTables := []int{3, 5, 4}
	for i := range wantTables {
		if tables[i] != wantTables[i] {
			t.Errorf("topTables[%d] = %d, want %d", i, tables[i], wantTables[i])
		}
	}
}

func TestWeakSpotsTieKeepsConfiguredOrder(t *testing.T) {
	snap := Snapshot{
		WrongCount: 2,
		Operations: []quiz.Operation{quiz.OpAdd, quiz.OpMultiply},
		ErrorsByOperation: map[quiz.Operation]int{
			quiz.OpAdd:      1,
			quiz.OpMultiply: 1,
		},
	}
	ops := topOperations(snap, 3)
	if len(ops) != 2 || ops[0] != quiz.OpAdd || ops[1] != quiz.OpMultiply {
		t.Errorf("tied errors should keep configured order, got %v", ops)
	}
}

func TestSpeedMessageTiers(t *testing.T) {
	tests := []struct {
		avg  time.Duration
		want string
	}{
		{2 * time.Second, "Lightning fast"},
		{5 * time.Second, "Steady pace"},
		{10 * time.Second, "Accuracy first"},
	}
	for _, tt := range tests {
		got := speedMessage(tt.avg)
		if !strings.Contains(got, tt.want) {
			t.Errorf("speedMessage(%v) = %q, want substring %q", tt.avg, got, tt.want)
		}
	}
}

func TestRecommendationsGating(t *testing.T) {
	if recs := recommendations(perfectSnapshot()); len(recs) != 0 {
		t.Errorf("fast perfect session should have no tips, got %v", recs)
	}

	slow := perfectSnapshot()
	slow.AverageResponse = 9 * time.Second
	if recs := recommendations(slow); len(recs) != 1 {
		t.Errorf("slow perfect session should get the recall tip only, got %v", recs)
	}

	wrong := perfectSnapshot()
	wrong.WrongCount = 2
	if recs := recommendations(wrong); len(recs) != 2 {
		t.Errorf("session with errors should get both replay tips, got %v", recs)
	}
}
