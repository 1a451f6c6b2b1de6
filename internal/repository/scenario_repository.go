package repository

import (
	"context"

	"deskduty-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScenarioRepository struct {
	Col *mongo.Collection
}

func NewScenarioRepository(db *mongo.Database) *ScenarioRepository {
	return &ScenarioRepository{Col: db.Collection("scenarios")}
}

func (r *ScenarioRepository) FindAll(ctx context.Context) ([]models.Scenario, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var scenarios []models.Scenario
	for cur.Next(ctx) {
		var s models.Scenario
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (r *ScenarioRepository) FindByID(ctx context.Context, id string) (*models.Scenario, error) {
	var scenario models.Scenario
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&scenario)
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

// FindByDifficulty returns up to limit scenarios of the given difficulty
// whose id is not in the exclusion list.
func (r *ScenarioRepository) FindByDifficulty(ctx context.Context, difficulty string, excludeIDs []string, limit int64) ([]models.Scenario, error) {
	filter := bson.M{"difficulty": difficulty}
	if len(excludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": excludeIDs}
	}
	cur, err := r.Col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var scenarios []models.Scenario
	for cur.Next(ctx) {
		var s models.Scenario
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (r *ScenarioRepository) Create(ctx context.Context, scenario *models.Scenario) error {
	_, err := r.Col.InsertOne(ctx, scenario)
	return err
}

func (r *ScenarioRepository) CreateMany(ctx context.Context, scenarios []models.Scenario) error {
	docs := make([]interface{}, len(scenarios))
	for i := range scenarios {
		docs[i] = scenarios[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *ScenarioRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ScenarioRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
