package models

type Player struct {
	ID                 string `bson:"_id,omitempty" json:"id"`
	Username           string `bson:"username" json:"username"`
	CurrentRank        string `bson:"current_rank" json:"current_rank"`
	SanityPoints       int    `bson:"sanity_points" json:"sanity_points"`
	PaperworkCompleted int    `bson:"paperwork_completed" json:"paperwork_completed"`
	MedalsEarned       int    `bson:"medals_earned" json:"medals_earned"`
}
