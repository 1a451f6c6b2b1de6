package selection

import (
	"math/rand"
	"time"

	"deskduty-service/internal/models"
)

// Selector handles uniform random selection of scenarios
type Selector struct {
	rand *rand.Rand
}

// NewSelector creates a new selector
func NewSelector() *Selector {
	return &Selector{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSelectorWithSource creates a selector with a fixed source, used by
// tests that need a deterministic permutation.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rand: rand.New(src)}
}

// Pick filters the candidates by difficulty and exclusion list and picks
// one uniformly at random. Returns nil when no candidate remains.
func (s *Selector) Pick(scenarios []models.Scenario, criteria *Criteria) *models.Scenario {
	eligible := make([]models.Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		if criteria.Difficulty != "" && sc.Difficulty != criteria.Difficulty {
			continue
		}
		if s.isExcluded(sc.ID, criteria.ExcludeIDs) {
			continue
		}
		if !sc.Valid() {
			continue
		}
		eligible = append(eligible, sc)
	}

	if len(eligible) == 0 {
		return nil
	}
	chosen := eligible[s.rand.Intn(len(eligible))]
	return &chosen
}

// Prepare returns a presentation copy of the scenario with its solutions
// shuffled and the correct index recomputed to track the correct text.
func (s *Selector) Prepare(scenario *models.Scenario) *models.Scenario {
	prepared := *scenario
	prepared.Solutions, prepared.CorrectSolutionIndex = ShuffleSolutions(
		s.rand,
		scenario.Solutions,
		scenario.CorrectSolutionIndex,
	)
	return &prepared
}

func (s *Selector) isExcluded(id string, excludeIDs []string) bool {
	for _, excludeID := range excludeIDs {
		if id == excludeID {
			return true
		}
	}
	return false
}
