package selection

import (
	"context"
	"log"

	"deskduty-service/internal/repository"
)

// PoolManager pairs the scenario repository with the selector and supplies
// the fallback when the pool cannot serve a candidate.
type PoolManager struct {
	scenarioRepo *repository.ScenarioRepository
	selector     *Selector
}

// NewPoolManager creates a new pool manager
func NewPoolManager(scenarioRepo *repository.ScenarioRepository) *PoolManager {
	return &PoolManager{
		scenarioRepo: scenarioRepo,
		selector:     NewSelector(),
	}
}

// SelectNext fetches candidates matching the criteria and picks one
// uniformly at random, solutions already shuffled and reindexed. A fetch
// failure or an empty pool yields the fixed fallback scenario for the
// requested difficulty instead of an error.
func (pm *PoolManager) SelectNext(ctx context.Context, criteria *Criteria) *Result {
	scenarios, err := pm.scenarioRepo.FindByDifficulty(ctx, criteria.Difficulty, criteria.ExcludeIDs, int64(criteria.BatchSize))
	if err != nil {
		log.Printf("Warning: scenario fetch failed for difficulty %q: %v", criteria.Difficulty, err)
		scenarios = nil
	}

	chosen := pm.selector.Pick(scenarios, criteria)
	if chosen == nil {
		return &Result{
			Scenario:     pm.selector.Prepare(FallbackScenario(criteria.Difficulty)),
			UsedFallback: true,
		}
	}

	return &Result{
		Scenario:        pm.selector.Prepare(chosen),
		TotalCandidates: len(scenarios),
	}
}
