package models

import "time"

// LeaderboardEntry is an append-only record written once per finished
// session. Username is denormalized at insert time so the leaderboard
// can be served without a join.
type LeaderboardEntry struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	PlayerID     string    `bson:"player_id" json:"player_id"`
	Username     string    `bson:"username" json:"username"`
	Score        int       `bson:"score" json:"score"`
	RankAchieved string    `bson:"rank_achieved" json:"rank_achieved"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
