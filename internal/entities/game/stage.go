package game

import (
	"github.com/berkingurcan/siglife-api/internal/errors"
)

// StageID identifies one of the eight fixed career stages
type StageID string

// Stage identifiers, ordered by index
const (
	StageStudent      StageID = "student"
	StageIntern       StageID = "intern"
	StageEmployee     StageID = "employee"
	StageSideHustler  StageID = "side_hustler"
	StageEntrepreneur StageID = "entrepreneur"
	StageCEO          StageID = "ceo"
	StageInvestor     StageID = "investor"
	StageSigmaElite   StageID = "sigma_elite"
)

// StageCount is the number of stages on the ladder
const StageCount = 8

// StageRequirements holds the minimum stat thresholds to enter a stage.
// A zero field means the stat is unconstrained.
type StageRequirements struct {
	Money        int `json:"money,omitempty"`
	Fitness      int `json:"fitness,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
	Charisma     int `json:"charisma,omitempty"`
	Discipline   int `json:"discipline,omitempty"`
	Investments  int `json:"investments,omitempty"`
}

// Stage is an immutable entry on the career ladder
type Stage struct {
	ID           StageID           `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Index        int               `json:"index"`
	Requirements StageRequirements `json:"requirements"`
}

// Stages is the fixed career ladder, totally ordered by Index.
// Requirements for stage N+1 are always evaluated against current stats only.
var Stages = []Stage{
	{
		ID:          StageStudent,
		Name:        "Student",
		Description: "Just starting your journey. Time to grind.",
		Index:       0,
	},
	{
		ID:          StageIntern,
		Name:        "Intern",
		Description: "First taste of the corporate world.",
		Index:       1,
		Requirements: StageRequirements{
			Intelligence: 30,
			Discipline:   25,
		},
	},
	{
		ID:          StageEmployee,
		Name:        "Employee",
		Description: "Climbing the corporate ladder.",
		Index:       2,
		Requirements: StageRequirements{
			Money:        20,
			Intelligence: 40,
			Discipline:   35,
			Charisma:     25,
		},
	},
	{
		ID:          StageSideHustler,
		Name:        "Side Hustler",
		Description: "Building something on the side.",
		Index:       3,
		Requirements: StageRequirements{
			Money:        35,
			Intelligence: 50,
			Discipline:   45,
			Charisma:     35,
		},
	},
	{
		ID:          StageEntrepreneur,
		Name:        "Entrepreneur",
		Description: "Taking the leap into full-time founder mode.",
		Index:       4,
		Requirements: StageRequirements{
			Money:        50,
			Intelligence: 60,
			Discipline:   55,
			Charisma:     50,
			Investments:  20,
		},
	},
	{
		ID:          StageCEO,
		Name:        "CEO",
		Description: "Leading your empire.",
		Index:       5,
		Requirements: StageRequirements{
			Money:        65,
			Intelligence: 70,
			Discipline:   65,
			Charisma:     65,
			Investments:  40,
		},
	},
	{
		ID:          StageInvestor,
		Name:        "Investor",
		Description: "Your money works harder than you.",
		Index:       6,
		Requirements: StageRequirements{
			Money:        80,
			Intelligence: 75,
			Discipline:   70,
			Investments:  60,
		},
	},
	{
		ID:          StageSigmaElite,
		Name:        "Sigma Elite",
		Description: "Peak performance. Ultimate grindset achieved.",
		Index:       7,
		Requirements: StageRequirements{
			Money:        90,
			Fitness:      70,
			Intelligence: 85,
			Charisma:     80,
			Discipline:   85,
			Investments:  80,
		},
	},
}

// StageByID looks up a stage by identifier.
// Returns errors.NotFound for an unknown id.
func StageByID(id StageID) (*Stage, error) {
	for i := range Stages {
		if Stages[i].ID == id {
			return &Stages[i], nil
		}
	}
	return nil, errors.NotFoundf("stage %q not found", id)
}

// NextStage returns the stage following currentID on the ladder, or nil
// when currentID is the terminal stage. The terminal stage is absorbing.
// Returns errors.NotFound for an unknown id.
func NextStage(currentID StageID) (*Stage, error) {
	current, err := StageByID(currentID)
	if err != nil {
		return nil, err
	}

	nextIndex := current.Index + 1
	for i := range Stages {
		if Stages[i].Index == nextIndex {
			return &Stages[i], nil
		}
	}
	return nil, nil
}

// Meets reports whether stats satisfy every threshold in the stage's
// requirements. The comparison is inclusive: a stat exactly at its
// threshold passes. A stage with empty requirements is trivially satisfied.
func (s Stats) Meets(stage *Stage) bool {
	req := stage.Requirements
	return s.Money >= req.Money &&
		s.Fitness >= req.Fitness &&
		s.Intelligence >= req.Intelligence &&
		s.Charisma >= req.Charisma &&
		s.Discipline >= req.Discipline &&
		s.Investments >= req.Investments
}

// CanAdvance reports whether stats meet the requirements of the stage
// following currentID. False at the terminal stage and for unknown ids.
func CanAdvance(stats Stats, currentID StageID) bool {
	next, err := NextStage(currentID)
	if err != nil || next == nil {
		return false
	}
	return stats.Meets(next)
}
