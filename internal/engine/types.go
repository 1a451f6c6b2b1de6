package engine

import "time"

// Ranks is the fixed 9-tier promotion ladder. Level is the 1-based index
// into this list; the rank is the display label at that index.
var Ranks = []string{
	"Lieutenant",
	"Captain",
	"Major",
	"Lieutenant Colonel",
	"Colonel",
	"Brigadier",
	"Major General",
	"Lieutenant General",
	"General",
}

// RankIndex returns the 0-based position of a rank label, or -1 when the
// label is not on the ladder.
func RankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

type GameOverReason string

const (
	ReasonSanityDepleted GameOverReason = "sanity_depleted"
	ReasonTooManyWrong   GameOverReason = "too_many_wrong"
	ReasonCompleted      GameOverReason = "completed"
	ReasonResigned       GameOverReason = "resigned"
)

// PlayerSession is the mutable state of one play-through. It is mutated
// exclusively by Manager in response to answer/drink/resign actions.
type PlayerSession struct {
	ID                  string              `json:"id"`
	PlayerID            string              `json:"player_id"`
	IsGuest             bool                `json:"is_guest"`
	SanityPoints        int                 `json:"sanity_points"`
	ChaiLevel           int                 `json:"chai_level"`
	CurrentRank         string              `json:"current_rank"`
	CurrentLevel        int                 `json:"current_level"`
	Medals              int                 `json:"medals"`
	PaperworkCompleted  int                 `json:"paperwork_completed"`
	CorrectAnswers      int                 `json:"correct_answers"`
	WrongAnswers        int                 `json:"wrong_answers"`
	AnsweredScenarioIDs map[string]struct{} `json:"-"`
	StartTime           time.Time           `json:"start_time"`
	IsOver              bool                `json:"is_over"`
	GameOverReason      GameOverReason      `json:"game_over_reason,omitempty"`
	FinalScore          int                 `json:"final_score"`
}

// AnsweredIDs returns the answered scenario ids as a slice for query
// exclusion lists and session snapshots.
func (s *PlayerSession) AnsweredIDs() []string {
	ids := make([]string, 0, len(s.AnsweredScenarioIDs))
	for id := range s.AnsweredScenarioIDs {
		ids = append(ids, id)
	}
	return ids
}

// AnswerOutcome reports what a single submission did to the session.
// The caller uses it purely for display and persistence side effects.
type AnswerOutcome struct {
	IsCorrect     bool           `json:"is_correct"`
	SanityPenalty int            `json:"sanity_penalty"`
	Promoted      bool           `json:"promoted"`
	NewRank       string         `json:"new_rank,omitempty"`
	NewLevel      int            `json:"new_level,omitempty"`
	IsOver        bool           `json:"is_over"`
	Reason        GameOverReason `json:"reason,omitempty"`
	FinalScore    int            `json:"final_score,omitempty"`
}

// Config holds the progression constants.
type Config struct {
	TotalQuestionsPerLevel  int     `json:"total_questions_per_level"`
	QuestionsToLevelUp      int     `json:"questions_to_level_up"`
	SanityLossPerLevel      int     `json:"sanity_loss_per_level"`
	SanityPenaltyMultiplier float64 `json:"sanity_penalty_multiplier"`
	MaxSanity               int     `json:"max_sanity"`
	MaxChai                 int     `json:"max_chai"`
	ChaiCostPerAnswer       int     `json:"chai_cost_per_answer"`
	ChaiPerCup              int     `json:"chai_per_cup"`
	MedalScore              int     `json:"medal_score"`
	CorrectAnswerScore      int     `json:"correct_answer_score"`
}

// MaxWrongAllowed is the number of wrong answers a level's question budget
// can absorb while still reaching the promotion threshold.
func (c *Config) MaxWrongAllowed() int {
	return c.TotalQuestionsPerLevel - c.QuestionsToLevelUp
}

// Default configuration based on requirements
func DefaultConfig() *Config {
	return &Config{
		TotalQuestionsPerLevel:  11,
		QuestionsToLevelUp:      8,
		SanityLossPerLevel:      10,
		SanityPenaltyMultiplier: 1.5,
		MaxSanity:               100,
		MaxChai:                 100,
		ChaiCostPerAnswer:       10,
		ChaiPerCup:              30,
		MedalScore:              100,
		CorrectAnswerScore:      50,
	}
}
