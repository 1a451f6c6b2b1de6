package repository

import (
	"context"

	"deskduty-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("player_progress")}
}

func (r *ProgressRepository) Create(ctx context.Context, progress *models.PlayerProgress) error {
	_, err := r.Col.InsertOne(ctx, progress)
	return err
}

func (r *ProgressRepository) FindByPlayer(ctx context.Context, playerID string) ([]models.PlayerProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"player_id": playerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.PlayerProgress
	for cur.Next(ctx) {
		var p models.PlayerProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}
