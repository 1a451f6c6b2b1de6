package repository

import (
	"context"

	"deskduty-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LeaderboardRepository struct {
	Col *mongo.Collection
}

func NewLeaderboardRepository(db *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{Col: db.Collection("leaderboard")}
}

func (r *LeaderboardRepository) Create(ctx context.Context, entry *models.LeaderboardEntry) error {
	_, err := r.Col.InsertOne(ctx, entry)
	return err
}

// TopScores returns the highest scores in descending order.
func (r *LeaderboardRepository) TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().SetSort(bson.M{"score": -1}).SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.LeaderboardEntry
	for cur.Next(ctx) {
		var e models.LeaderboardEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
