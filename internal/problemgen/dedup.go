package problemgen

const (
	// recentWindowSize is how many accepted questions are remembered
	// for duplicate suppression.
	recentWindowSize = 7

	// maxGenerateAttempts caps retries when every candidate collides
	// with the recent window. Exceeding it accepts the duplicate;
	// repetition is a quality-of-life concern, never an error.
	maxGenerateAttempts = 50
)

// recentWindow is a FIFO of the display texts of the most recently
// accepted questions, oldest evicted first.
type recentWindow struct {
	texts []string
}

func (w *recentWindow) contains(text string) bool {
	for _, t := range w.texts {
		if t == text {
			return true
		}
	}
	return false
}

func (w *recentWindow) push(text string) {
	w.texts = append(w.texts, text)
	if len(w.texts) > recentWindowSize {
		w.texts = w.texts[1:]
	}
}
