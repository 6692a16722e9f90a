package game

import "time"

// clockTickMsg is sent every second to refresh the elapsed-time display.
type clockTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback pause ends.
type feedbackDoneMsg struct{}
