package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer parses free-entry input into an integer. Returns false
// for anything unparseable; the caller treats that as a no-op, not as
// a wrong answer.
func ParseAnswer(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckAnswer reports whether the given answer matches the question's
// correct answer exactly.
func CheckAnswer(given int, q Question) bool {
	return given == q.Answer
}
