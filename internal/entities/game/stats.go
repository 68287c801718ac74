package game

// Stat bounds. Every stat value stays inside [StatMin, StatMax] at all times.
const (
	StatMin = 0
	StatMax = 100
)

// StatID identifies one of the six player attributes
type StatID string

// Stat identifiers
const (
	StatMoney        StatID = "money"
	StatFitness      StatID = "fitness"
	StatIntelligence StatID = "intelligence"
	StatCharisma     StatID = "charisma"
	StatDiscipline   StatID = "discipline"
	StatInvestments  StatID = "investments"
)

// StatIDs lists all stats in display order
var StatIDs = []StatID{
	StatMoney,
	StatFitness,
	StatIntelligence,
	StatCharisma,
	StatDiscipline,
	StatInvestments,
}

// Stats holds the six bounded player attributes
type Stats struct {
	Money        int `json:"money"`
	Fitness      int `json:"fitness"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
	Discipline   int `json:"discipline"`
	Investments  int `json:"investments"`
}

// StatDeltas is a signed adjustment to Stats. Zero fields mean no change,
// so a partial delta is just a struct literal with the affected stats set.
// Using the same fixed shape as Stats makes unknown stat keys unrepresentable.
type StatDeltas struct {
	Money        int `json:"money,omitempty"`
	Fitness      int `json:"fitness,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
	Charisma     int `json:"charisma,omitempty"`
	Discipline   int `json:"discipline,omitempty"`
	Investments  int `json:"investments,omitempty"`
}

// InitialStats is the fixed starting distribution for a new game
var InitialStats = Stats{
	Money:        10,
	Fitness:      20,
	Intelligence: 15,
	Charisma:     15,
	Discipline:   10,
	Investments:  0,
}

// ClampStat clamps a stat value into [StatMin, StatMax]
func ClampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// Apply returns a new Stats with the deltas applied and every value
// clamped. The receiver is not mutated.
func (s Stats) Apply(d StatDeltas) Stats {
	return Stats{
		Money:        ClampStat(s.Money + d.Money),
		Fitness:      ClampStat(s.Fitness + d.Fitness),
		Intelligence: ClampStat(s.Intelligence + d.Intelligence),
		Charisma:     ClampStat(s.Charisma + d.Charisma),
		Discipline:   ClampStat(s.Discipline + d.Discipline),
		Investments:  ClampStat(s.Investments + d.Investments),
	}
}

// Get returns the value of a single stat, or 0 for an unknown id
func (s Stats) Get(id StatID) int {
	switch id {
	case StatMoney:
		return s.Money
	case StatFitness:
		return s.Fitness
	case StatIntelligence:
		return s.Intelligence
	case StatCharisma:
		return s.Charisma
	case StatDiscipline:
		return s.Discipline
	case StatInvestments:
		return s.Investments
	default:
		return 0
	}
}

// IsZero reports whether the delta changes nothing
func (d StatDeltas) IsZero() bool {
	return d == StatDeltas{}
}
