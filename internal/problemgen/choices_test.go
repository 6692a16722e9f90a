package problemgen

import "testing"

func TestBuildChoices_SizeAndUniqueness(t *testing.T) {
	g := seededGenerator(10)

	for _, correct := range []int{1, 2, 7, 28, 100} {
		choices := g.BuildChoices(correct)

		if len(choices) != ChoiceCount {
			t.Fatalf("BuildChoices(%d) returned %d choices, want %d", correct, len(choices), ChoiceCount)
		}

		seen := map[int]bool{}
		hasCorrect := false
		for _, c := range choices {
			if c <= 0 {
				t.Errorf("BuildChoices(%d) produced non-positive choice %d", correct, c)
			}
			if seen[c] {
				t.Errorf("BuildChoices(%d) produced duplicate choice %d", correct, c)
			}
			seen[c] = true
			if c == correct {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			t.Errorf("BuildChoices(%d) does not include the correct answer", correct)
		}
	}
}

func TestBuildChoices_CorrectPositionVaries(t *testing.T) {
	g := seededGenerator(11)

	positions := map[int]bool{}
	for i := 0; i < 200; i++ {
		choices := g.BuildChoices(28)
		for pos, c := range choices {
			if c == 28 {
				positions[pos] = true
			}
		}
	}

	// With a uniform shuffle the correct answer should land on many
	// different positions across 200 builds.
	if len(positions) < ChoiceCount/2 {
		t.Errorf("correct answer appeared in only %d positions, suggests biased shuffle", len(positions))
	}
}

func TestBuildChoices_SmallCorrectStaysPositive(t *testing.T) {
	g := seededGenerator(12)

	// correct = 1 pressures every strategy toward zero and negatives.
	for i := 0; i < 50; i++ {
		for _, c := range g.BuildChoices(1) {
			if c <= 0 {
				t.Fatalf("BuildChoices(1) produced %d", c)
			}
		}
	}
}
