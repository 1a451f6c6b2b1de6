package models

import "time"

// PlayerProgress is an append-only record of one answered scenario.
type PlayerProgress struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	PlayerID     string    `bson:"player_id" json:"player_id"`
	ScenarioID   string    `bson:"scenario_id" json:"scenario_id"`
	Success      bool      `bson:"success" json:"success"`
	SanityChange int       `bson:"sanity_change" json:"sanity_change"`
	AnsweredAt   time.Time `bson:"answered_at" json:"answered_at"`
}
