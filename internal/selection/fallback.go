package selection

import (
	"github.com/google/uuid"

	"deskduty-service/internal/models"
)

// FallbackScenario builds the fixed stand-in scenario for a rank, used
// when the pool for the current level is exhausted or the source is
// unavailable so the game never blocks waiting on content.
func FallbackScenario(difficulty string) *models.Scenario {
	scenario := &models.Scenario{
		ID:        "fallback-" + uuid.NewString(),
		Situation: "A junior officer spilled chai on the commander's uniform during review. What should you do?",
		Solutions: []string{
			"Make him rewrite \"Yes Sir\" 1000 times \U0001F4DD",
			"Praise his dedication to chai culture ☕",
			"Assign him janitorial duties for a month \U0001F9F9",
		},
		CorrectSolutionIndex: 1,
		Difficulty:           difficulty,
	}
	scenario.EnsureSanityLoss()
	return scenario
}
