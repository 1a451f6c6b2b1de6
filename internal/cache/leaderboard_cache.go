package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"

	"deskduty-service/internal/models"
)

const (
	topScoresKey = "deskduty:leaderboard:top"
	topScoresTTL = 30 * time.Second
)

// LeaderboardCache keeps the top-10 board in Redis so the append-heavy
// leaderboard collection is not scanned on every page load.
type LeaderboardCache struct {
	client *redis_v9.Client
}

func NewLeaderboardCache(client *redis_v9.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

func (c *LeaderboardCache) GetTop(ctx context.Context) ([]models.LeaderboardEntry, error) {
	raw, err := c.client.Get(ctx, topScoresKey).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting leaderboard from cache: %w", err)
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("error decoding cached leaderboard: %w", err)
	}
	return entries, nil
}

func (c *LeaderboardCache) SetTop(ctx context.Context, entries []models.LeaderboardEntry) error {
	val, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error encoding leaderboard for cache: %w", err)
	}
	if err := c.client.Set(ctx, topScoresKey, val, topScoresTTL).Err(); err != nil {
		return fmt.Errorf("error saving leaderboard to cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached board after a new entry is appended.
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, topScoresKey).Err()
}
