package problemgen

// ChoiceCount is the number of alternatives shown in multiple-choice
// mode, correct answer included.
const ChoiceCount = 12

// BuildChoices returns ChoiceCount unique positive integers including
// correct, in uniformly shuffled order.
//
// Each candidate comes from one of three perturbation strategies,
// drawn independently per iteration:
//   - 40%: correct ± uniform[1,10]
//   - 30%: correct × k or correct ÷ k (floor) for k in [2,4]
//   - 30%: uniform in [max(1, correct-30), correct+30]
//
// Non-positive or already-present candidates are discarded and
// generation continues until the set is full.
func (g *Generator) BuildChoices(correct int) []int {
	choices := []int{correct}
	seen := map[int]bool{correct: true}

	for len(choices) < ChoiceCount {
		candidate := g.nextCandidate(correct)
		if candidate <= 0 || seen[candidate] {
			continue
		}
		seen[candidate] = true
		choices = append(choices, candidate)
	}

	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return choices
}

func (g *Generator) nextCandidate(correct int) int {
	switch r := g.rng.Float64(); {
	case r < 0.4:
		delta := g.intBetween(1, 10)
		if g.rng.Intn(2) == 0 {
			return correct + delta
		}
		return correct - delta

	case r < 0.7:
		k := g.intBetween(2, 4)
		if g.rng.Intn(2) == 0 {
			return correct * k
		}
		return correct / k

	default:
		lo := correct - 30
		if lo < 1 {
			lo = 1
		}
		return g.intBetween(lo, correct+30)
	}
}
