package models

type Scenario struct {
	ID                   string   `bson:"_id,omitempty" json:"id"`
	Situation            string   `bson:"situation" json:"situation"`
	Solutions            []string `bson:"solutions" json:"solutions"`
	CorrectSolutionIndex int      `bson:"correct_solution_index" json:"correct_solution_index"`
	SanityLoss           int      `bson:"sanity_loss" json:"sanity_loss"`
	Difficulty           string   `bson:"difficulty" json:"difficulty"`
}

// DefaultSanityLoss maps each rank to the advertised sanity loss for its
// scenarios. Informational only: the actual penalty is computed from the
// session level, not from this field.
var DefaultSanityLoss = map[string]int{
	"Lieutenant":         10,
	"Captain":            12,
	"Major":              15,
	"Lieutenant Colonel": 18,
	"Colonel":            20,
	"Brigadier":          22,
	"Major General":      25,
	"Lieutenant General": 27,
	"General":            30,
}

// EnsureSanityLoss fills in the advertised sanity loss from the
// difficulty mapping when an imported scenario omits it.
func (s *Scenario) EnsureSanityLoss() {
	if s.SanityLoss != 0 {
		return
	}
	if loss, exists := DefaultSanityLoss[s.Difficulty]; exists {
		s.SanityLoss = loss
	} else {
		s.SanityLoss = 10 // Default fallback
	}
}

// Valid reports whether the scenario can be presented: at least two
// solutions and a correct index that points at a real option.
func (s *Scenario) Valid() bool {
	if len(s.Solutions) < 2 {
		return false
	}
	return s.CorrectSolutionIndex >= 0 && s.CorrectSolutionIndex < len(s.Solutions)
}
