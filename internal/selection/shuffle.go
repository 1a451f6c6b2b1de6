package selection

import "math/rand"

// ShuffleSolutions returns an unbiased Fisher-Yates permutation of the
// solutions together with the recomputed index of the correct option.
// The input slice is not modified and the original index is never reused
// after shuffling.
func ShuffleSolutions(r *rand.Rand, solutions []string, correctIndex int) ([]string, int) {
	shuffled := make([]string, len(solutions))
	copy(shuffled, solutions)

	correct := ""
	if correctIndex >= 0 && correctIndex < len(solutions) {
		correct = solutions[correctIndex]
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	newIndex := correctIndex
	for i, s := range shuffled {
		if s == correct {
			newIndex = i
			break
		}
	}
	return shuffled, newIndex
}
