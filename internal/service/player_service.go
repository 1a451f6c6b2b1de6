package service

import (
	"context"

	"deskduty-service/internal/models"
	"deskduty-service/internal/repository"
)

type PlayerService struct {
	Repo         *repository.PlayerRepository
	ProgressRepo *repository.ProgressRepository
}

func NewPlayerService(repo *repository.PlayerRepository, progressRepo *repository.ProgressRepository) *PlayerService {
	return &PlayerService{Repo: repo, ProgressRepo: progressRepo}
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *PlayerService) GetPlayerProgress(ctx context.Context, playerID string) ([]models.PlayerProgress, error) {
	return s.ProgressRepo.FindByPlayer(ctx, playerID)
}
