package problemgen

import "testing"

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"28", 28, true},
		{"  28  ", 28, true},
		{"-3", -3, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"2.5", 0, false},
		{"1e3", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAnswer(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAnswer(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	q := Question{Answer: 28}
	if !CheckAnswer(28, q) {
		t.Error("CheckAnswer(28) = false, want true")
	}
	if CheckAnswer(27, q) {
		t.Error("CheckAnswer(27) = true, want false")
	}
}
