package problemgen

import (
	"math/rand"
	"testing"

	"github.com/abhisek/tabuada/internal/quiz"
)

func seededGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func allOpsConfig() quiz.Config {
	return quiz.Config{
		Operations:     quiz.AllOperations,
		Tables:         []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		TotalQuestions: 20,
	}
}

func TestGenerate_ArithmeticInvariants(t *testing.T) {
	g := seededGenerator(1)
	cfg := allOpsConfig()

	for i := 0; i < 500; i++ {
		q := g.Generate(cfg)

		if !cfg.HasOperation(q.Operation) {
			t.Fatalf("question %d uses operation %q not in config", i, q.Operation)
		}
		if !cfg.HasTable(q.Operand1) {
			t.Fatalf("question %d uses table %d not in config", i, q.Operand1)
		}
		if q.Operand2 < 1 || q.Operand2 > 10 {
			t.Fatalf("question %d has secondary operand %d outside [1,10]", i, q.Operand2)
		}

		switch q.Operation {
		case quiz.OpAdd:
			if q.Answer != q.Operand1+q.Operand2 {
				t.Fatalf("add: answer %d != %d + %d", q.Answer, q.Operand1, q.Operand2)
			}
		case quiz.OpSubtract:
			if q.Answer != q.Operand1-q.Operand2 {
				t.Fatalf("subtract: answer %d != %d - %d", q.Answer, q.Operand1, q.Operand2)
			}
			if q.Answer < 0 {
				t.Fatalf("subtract: negative answer %d for %q", q.Answer, q.Text)
			}
		case quiz.OpMultiply:
			if q.Answer != q.Operand1*q.Operand2 {
				t.Fatalf("multiply: answer %d != %d × %d", q.Answer, q.Operand1, q.Operand2)
			}
		case quiz.OpDivide:
			dividend := q.Operand1 * q.Operand2
			if dividend%q.Operand1 != 0 {
				t.Fatalf("divide: dividend %d not a multiple of %d", dividend, q.Operand1)
			}
			if q.Answer != q.Operand2 {
				t.Fatalf("divide: answer %d, want quotient %d", q.Answer, q.Operand2)
			}
		}
	}
}

func TestGenerate_DivisionDisplaysDividend(t *testing.T) {
	g := seededGenerator(2)
	cfg := quiz.Config{
		Operations:     []quiz.Operation{quiz.OpDivide},
		Tables:         []int{7},
		TotalQuestions: 1,
	}

	q := g.Generate(cfg)
	want := "÷ 7 = ?"
	if len(q.Text) < len(want) || q.Text[len(q.Text)-len(want):] != want {
		t.Errorf("division text %q does not end with %q", q.Text, want)
	}
}

func TestGenerateSet_Length(t *testing.T) {
	g := seededGenerator(3)
	cfg := allOpsConfig()

	for _, n := range []int{1, 10, 30} {
		qs := g.GenerateSet(cfg, n)
		if len(qs) != n {
			t.Errorf("GenerateSet(%d) returned %d questions", n, len(qs))
		}
	}
}

func TestGenerateSet_NoRepeatsWithinWindow(t *testing.T) {
	g := seededGenerator(4)
	// A large question space: suppression should never need the cap.
	cfg := allOpsConfig()

	qs := g.GenerateSet(cfg, 50)
	for i := range qs {
		for j := i + 1; j < len(qs) && j <= i+recentWindowSize; j++ {
			if qs[i].Text == qs[j].Text {
				t.Errorf("questions %d and %d repeat %q within the window", i, j, qs[i].Text)
			}
		}
	}
}

func TestGenerateSet_FailOpenOnExhaustedSpace(t *testing.T) {
	g := seededGenerator(5)
	// Degenerate config: only 10 possible questions, so a 30-question
	// session must accept duplicates once the retry cap is exhausted.
	cfg := quiz.Config{
		Operations:     []quiz.Operation{quiz.OpMultiply},
		Tables:         []int{7},
		TotalQuestions: 30,
	}

	qs := g.GenerateSet(cfg, 30)
	if len(qs) != 30 {
		t.Fatalf("GenerateSet returned %d questions, want 30 (fail-open)", len(qs))
	}

	seen := map[string]bool{}
	for _, q := range qs {
		seen[q.Text] = true
	}
	if len(seen) > 10 {
		t.Errorf("found %d distinct questions, at most 10 possible", len(seen))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := allOpsConfig()
	a := seededGenerator(42).GenerateSet(cfg, 10)
	b := seededGenerator(42).GenerateSet(cfg, 10)

	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("question %d differs between identically seeded generators: %q vs %q", i, a[i].Text, b[i].Text)
		}
	}
}
