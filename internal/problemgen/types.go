package problemgen

import "github.com/abhisek/tabuada/internal/quiz"

// Question represents one generated arithmetic question ready for display.
type Question struct {
	// Operation is the arithmetic operation of this question.
	Operation quiz.Operation

	// Operand1 is always the practiced table base.
	Operand1 int

	// Operand2 is the secondary operand. For division it is the hidden
	// quotient the player must find.
	Operand2 int

	// Answer is the correct integer answer.
	Answer int

	// Text is the rendering-ready prompt, e.g. "7 × 4 = ?".
	// For division the dividend is shown: "28 ÷ 7 = ?".
	Text string

	// Choices holds the 12 multiple-choice alternatives (including
	// Answer) in shuffled order. Nil until built; built lazily on first
	// display and rebuilt on every repeat-on-error retry.
	Choices []int
}

// Invariants:
//   - subtract: Operand1 - Operand2 >= 0
//   - divide: the displayed dividend is Operand1 × Operand2, so the
//     division is always exact
