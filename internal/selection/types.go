package selection

import "deskduty-service/internal/models"

// Criteria narrows the candidate pool for the next scenario.
type Criteria struct {
	// Difficulty must equal the session's current rank label.
	Difficulty string `json:"difficulty"`
	// ExcludeIDs lists scenarios already answered in the current level.
	ExcludeIDs []string `json:"exclude_ids"`
	// BatchSize caps how many candidates are fetched per selection.
	BatchSize int `json:"batch_size"`
}

// Result reports which scenario was chosen and how.
type Result struct {
	Scenario        *models.Scenario `json:"scenario"`
	TotalCandidates int              `json:"total_candidates"`
	UsedFallback    bool             `json:"used_fallback"`
}
