package service

import (
	"context"
	"log"

	"deskduty-service/internal/cache"
	"deskduty-service/internal/models"
	"deskduty-service/internal/repository"
)

const leaderboardSize = 10

type LeaderboardService struct {
	Repo  *repository.LeaderboardRepository
	Cache *cache.LeaderboardCache
}

func NewLeaderboardService(repo *repository.LeaderboardRepository, boardCache *cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{Repo: repo, Cache: boardCache}
}

// TopScores returns the top 10 scores, served from Redis when the cached
// board is still fresh.
func (s *LeaderboardService) TopScores(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if s.Cache != nil {
		if entries, err := s.Cache.GetTop(ctx); err == nil {
			return entries, nil
		}
	}

	entries, err := s.Repo.TopScores(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetTop(ctx, entries); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	return entries, nil
}

// Append records a finished session's score and drops the cached board.
func (s *LeaderboardService) Append(ctx context.Context, entry *models.LeaderboardEntry) error {
	if err := s.Repo.Create(ctx, entry); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			log.Printf("Warning: failed to invalidate leaderboard cache: %v", err)
		}
	}
	return nil
}
