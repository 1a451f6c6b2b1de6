package selection

import (
	"math/rand"
	"strings"
	"testing"

	"deskduty-service/internal/models"
)

func poolScenario(id, difficulty string) models.Scenario {
	return models.Scenario{
		ID:                   id,
		Situation:            "The colonel wants the report by noon. What should you do?",
		Solutions:            []string{"Delegate it", "Write it now", "Lose it"},
		CorrectSolutionIndex: 1,
		Difficulty:           difficulty,
	}
}

func TestPickFiltersByDifficulty(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(1))
	pool := []models.Scenario{
		poolScenario("a", "Lieutenant"),
		poolScenario("b", "Captain"),
		poolScenario("c", "Lieutenant"),
	}

	for i := 0; i < 20; i++ {
		picked := selector.Pick(pool, &Criteria{Difficulty: "Captain"})
		if picked == nil {
			t.Fatal("Expected a scenario, got nil")
		}
		if picked.ID != "b" {
			t.Fatalf("Expected only the Captain scenario, got %s", picked.ID)
		}
	}
}

func TestPickSkipsExcludedIDs(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(1))
	pool := []models.Scenario{
		poolScenario("a", "Lieutenant"),
		poolScenario("b", "Lieutenant"),
		poolScenario("c", "Lieutenant"),
	}
	criteria := &Criteria{
		Difficulty: "Lieutenant",
		ExcludeIDs: []string{"a", "c"},
	}

	for i := 0; i < 20; i++ {
		picked := selector.Pick(pool, criteria)
		if picked == nil || picked.ID != "b" {
			t.Fatalf("Expected scenario b, got %v", picked)
		}
	}
}

func TestPickSkipsInvalidScenarios(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(1))
	broken := poolScenario("broken", "Lieutenant")
	broken.CorrectSolutionIndex = 7
	single := poolScenario("single", "Lieutenant")
	single.Solutions = []string{"Only option"}
	single.CorrectSolutionIndex = 0

	pool := []models.Scenario{broken, single, poolScenario("ok", "Lieutenant")}

	for i := 0; i < 20; i++ {
		picked := selector.Pick(pool, &Criteria{Difficulty: "Lieutenant"})
		if picked == nil || picked.ID != "ok" {
			t.Fatalf("Expected only the valid scenario, got %v", picked)
		}
	}
}

func TestPickReturnsNilWhenExhausted(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(1))
	pool := []models.Scenario{poolScenario("a", "Lieutenant")}

	if picked := selector.Pick(pool, &Criteria{Difficulty: "General"}); picked != nil {
		t.Errorf("Expected nil for empty difficulty bucket, got %v", picked)
	}
	if picked := selector.Pick(nil, &Criteria{Difficulty: "Lieutenant"}); picked != nil {
		t.Errorf("Expected nil for empty pool, got %v", picked)
	}
	if picked := selector.Pick(pool, &Criteria{Difficulty: "Lieutenant", ExcludeIDs: []string{"a"}}); picked != nil {
		t.Errorf("Expected nil when every candidate is excluded, got %v", picked)
	}
}

func TestPickCoversAllCandidates(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(42))
	pool := []models.Scenario{
		poolScenario("a", "Lieutenant"),
		poolScenario("b", "Lieutenant"),
		poolScenario("c", "Lieutenant"),
	}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		picked := selector.Pick(pool, &Criteria{Difficulty: "Lieutenant"})
		seen[picked.ID] = true
	}

	for _, id := range []string{"a", "b", "c"} {
		if !seen[id] {
			t.Errorf("Scenario %s was never selected across 200 picks", id)
		}
	}
}

func TestPrepareShufflesWithoutMutatingOriginal(t *testing.T) {
	selector := NewSelectorWithSource(rand.NewSource(9))
	original := poolScenario("a", "Lieutenant")
	correctText := original.Solutions[original.CorrectSolutionIndex]

	prepared := selector.Prepare(&original)

	if prepared.Solutions[prepared.CorrectSolutionIndex] != correctText {
		t.Errorf("Expected correct text %q at index %d, got %q",
			correctText, prepared.CorrectSolutionIndex, prepared.Solutions[prepared.CorrectSolutionIndex])
	}
	if original.Solutions[original.CorrectSolutionIndex] != correctText {
		t.Error("Prepare must not mutate the pool copy")
	}
	if prepared.ID != original.ID || prepared.Difficulty != original.Difficulty {
		t.Error("Prepare must preserve everything except solution order")
	}
}

func TestFallbackScenario(t *testing.T) {
	scenario := FallbackScenario("Colonel")

	if !strings.HasPrefix(scenario.ID, "fallback-") {
		t.Errorf("Expected fallback id prefix, got %s", scenario.ID)
	}
	if scenario.Difficulty != "Colonel" {
		t.Errorf("Expected difficulty Colonel, got %s", scenario.Difficulty)
	}
	if !scenario.Valid() {
		t.Error("Fallback scenario must always be valid")
	}
	if scenario.SanityLoss <= 0 {
		t.Errorf("Expected a default sanity loss, got %d", scenario.SanityLoss)
	}

	other := FallbackScenario("Colonel")
	if other.ID == scenario.ID {
		t.Error("Fallback ids must be unique per call")
	}
}
