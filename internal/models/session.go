package models

import "time"

// GameSession is the persisted snapshot of an in-memory play-through.
// The engine's session object is authoritative; this document is written
// best-effort so a crashed service loses at most the current session.
type GameSession struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	PlayerID           string    `bson:"player_id" json:"player_id"`
	IsGuest            bool      `bson:"is_guest" json:"is_guest"`
	StartTime          time.Time `bson:"start_time" json:"start_time"`
	EndTime            time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
	SanityPoints       int       `bson:"sanity_points" json:"sanity_points"`
	ChaiLevel          int       `bson:"chai_level" json:"chai_level"`
	CurrentRank        string    `bson:"current_rank" json:"current_rank"`
	CurrentLevel       int       `bson:"current_level" json:"current_level"`
	Medals             int       `bson:"medals" json:"medals"`
	PaperworkCompleted int       `bson:"paperwork_completed" json:"paperwork_completed"`
	CorrectAnswers     int       `bson:"correct_answers" json:"correct_answers"`
	WrongAnswers       int       `bson:"wrong_answers" json:"wrong_answers"`
	AnsweredScenarios  []string  `bson:"answered_scenarios" json:"answered_scenarios"`
	Status             string    `bson:"status" json:"status"`
	GameOverReason     string    `bson:"game_over_reason,omitempty" json:"game_over_reason,omitempty"`
	FinalScore         int       `bson:"final_score" json:"final_score"`
}
