package selection

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleSolutionsTracksCorrectText(t *testing.T) {
	solutions := []string{"Salute", "Ignore it", "File a report", "Escalate"}

	for seed := int64(0); seed < 50; seed++ {
		r := rand.New(rand.NewSource(seed))
		shuffled, newIndex := ShuffleSolutions(r, solutions, 2)

		if newIndex < 0 || newIndex >= len(shuffled) {
			t.Fatalf("Seed %d: index %d out of range", seed, newIndex)
		}
		if shuffled[newIndex] != "File a report" {
			t.Errorf("Seed %d: expected correct text at index %d, got %q", seed, newIndex, shuffled[newIndex])
		}
	}
}

func TestShuffleSolutionsIsPermutation(t *testing.T) {
	solutions := []string{"a", "b", "c", "d", "e"}
	r := rand.New(rand.NewSource(7))
	shuffled, _ := ShuffleSolutions(r, solutions, 0)

	if len(shuffled) != len(solutions) {
		t.Fatalf("Expected %d solutions, got %d", len(solutions), len(shuffled))
	}

	sortedOriginal := append([]string(nil), solutions...)
	sortedShuffled := append([]string(nil), shuffled...)
	sort.Strings(sortedOriginal)
	sort.Strings(sortedShuffled)
	for i := range sortedOriginal {
		if sortedOriginal[i] != sortedShuffled[i] {
			t.Fatalf("Shuffle is not a permutation: %v vs %v", solutions, shuffled)
		}
	}
}

func TestShuffleSolutionsDoesNotMutateInput(t *testing.T) {
	solutions := []string{"first", "second", "third"}
	r := rand.New(rand.NewSource(3))

	ShuffleSolutions(r, solutions, 1)

	if solutions[0] != "first" || solutions[1] != "second" || solutions[2] != "third" {
		t.Errorf("Input slice was modified: %v", solutions)
	}
}

func TestShuffleSolutionsReachesEveryPosition(t *testing.T) {
	solutions := []string{"x", "y", "z"}
	seen := map[int]bool{}

	for seed := int64(0); seed < 100; seed++ {
		r := rand.New(rand.NewSource(seed))
		_, newIndex := ShuffleSolutions(r, solutions, 0)
		seen[newIndex] = true
	}

	for i := range solutions {
		if !seen[i] {
			t.Errorf("Correct answer never landed at position %d across 100 seeds", i)
		}
	}
}
