package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"deskduty-service/internal/engine"
	"deskduty-service/internal/models"
	"deskduty-service/internal/repository"
)

type ScenarioService struct {
	Repo *repository.ScenarioRepository
}

func NewScenarioService(repo *repository.ScenarioRepository) *ScenarioService {
	return &ScenarioService{Repo: repo}
}

func (s *ScenarioService) ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ScenarioService) GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ScenarioService) CreateScenario(ctx context.Context, scenario *models.Scenario) error {
	if err := validateScenario(scenario); err != nil {
		return err
	}
	if scenario.ID == "" {
		scenario.ID = uuid.NewString()
	}
	scenario.EnsureSanityLoss()
	return s.Repo.Create(ctx, scenario)
}

// BulkCreate imports a batch of scenarios, as produced by the question
// formatting pipeline. Invalid rows are skipped and counted rather than
// failing the whole batch.
func (s *ScenarioService) BulkCreate(ctx context.Context, scenarios []models.Scenario) (created, skipped int, err error) {
	valid := make([]models.Scenario, 0, len(scenarios))
	for i := range scenarios {
		scenario := scenarios[i]
		if validateScenario(&scenario) != nil {
			skipped++
			continue
		}
		if scenario.ID == "" {
			scenario.ID = uuid.NewString()
		}
		scenario.EnsureSanityLoss()
		valid = append(valid, scenario)
	}
	if len(valid) == 0 {
		return 0, skipped, nil
	}
	if err := s.Repo.CreateMany(ctx, valid); err != nil {
		return 0, skipped, err
	}
	return len(valid), skipped, nil
}

func (s *ScenarioService) UpdateScenario(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *ScenarioService) DeleteScenario(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validateScenario(scenario *models.Scenario) error {
	if scenario.Situation == "" {
		return fmt.Errorf("scenario situation is required")
	}
	if !scenario.Valid() {
		return fmt.Errorf("scenario needs at least 2 solutions and a correct index pointing at one of them")
	}
	if engine.RankIndex(scenario.Difficulty) < 0 {
		return fmt.Errorf("unknown difficulty %q", scenario.Difficulty)
	}
	return nil
}
