package repository

import (
	"context"

	"deskduty-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PlayerRepository struct {
	Col *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	return &PlayerRepository{Col: db.Collection("players")}
}

func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	_, err := r.Col.InsertOne(ctx, player)
	return err
}

func (r *PlayerRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}
