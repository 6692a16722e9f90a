// Package quiz defines the quiz configuration value type and its validation.
package quiz

// Operation is one of the four arithmetic operations a quiz can practice.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// AllOperations lists the operations in display order.
var AllOperations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "?"
}

// Label returns the human-readable name for the operation.
func (o Operation) Label() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSubtract:
		return "Subtraction"
	case OpMultiply:
		return "Multiplication"
	case OpDivide:
		return "Division"
	}
	return string(o)
}

// ParseOperation maps a string to an Operation. Returns false for
// unknown values.
func ParseOperation(s string) (Operation, bool) {
	switch Operation(s) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return Operation(s), true
	}
	return "", false
}

// AnswerMode describes how the player answers a question.
type AnswerMode string

const (
	// ModeFreeEntry means the player types a numeric answer.
	ModeFreeEntry AnswerMode = "free-entry"

	// ModeMultipleChoice means the player picks from 12 alternatives.
	ModeMultipleChoice AnswerMode = "multiple-choice"
)

// Config describes one quiz. It is assembled by the setup screen (or the
// play command flags) and is read-only once a session starts.
type Config struct {
	// Operations is the set of operations questions can use. Must be
	// non-empty to start.
	Operations []Operation

	// Tables is the set of practiced table bases. Must be non-empty to
	// start.
	Tables []int

	// TotalQuestions is the session length. Must be positive to start.
	TotalQuestions int

	// RepeatOnError keeps a missed question current instead of advancing.
	RepeatOnError bool

	// AnswerMode selects free entry or multiple choice.
	AnswerMode AnswerMode
}

// Validation messages shown on the setup screen. These are advisory:
// they block the start action but are never errors.
const (
	MsgMissingBoth       = "Pick at least one operation and one table to start!"
	MsgMissingOperations = "Pick at least one operation!"
	MsgMissingTables     = "Pick at least one table!"
	MsgMissingCount      = "Pick how many questions to play!"
)

// ValidationMessage returns the advisory message for an incomplete
// configuration, or "" when the configuration is runnable.
func (c Config) ValidationMessage() string {
	switch {
	case len(c.Operations) == 0 && len(c.Tables) == 0:
		return MsgMissingBoth
	case len(c.Operations) == 0:
		return MsgMissingOperations
	case len(c.Tables) == 0:
		return MsgMissingTables
	case c.TotalQuestions <= 0:
		return MsgMissingCount
	}
	return ""
}

// Runnable reports whether a session can start with this configuration.
func (c Config) Runnable() bool {
	return len(c.Operations) > 0 && len(c.Tables) > 0 && c.TotalQuestions > 0
}

// HasOperation reports whether op is enabled in this configuration.
func (c Config) HasOperation(op Operation) bool {
	for _, o := range c.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// HasTable reports whether table is enabled in this configuration.
func (c Config) HasTable(table int) bool {
	for _, t := range c.Tables {
		if t == table {
			return true
		}
	}
	return false
}
