package engine

type Stat string

const (
	StatStrength     Stat = "strength"
	StatVitality     Stat = "vitality"
	StatAgility      Stat = "agility"
	StatIntelligence Stat = "intelligence"
	StatMana         Stat = "mana"
)

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatVitality, StatAgility, StatIntelligence, StatMana:
		return true
	default:
		return false
	}
}

// DefaultStat is used when a stored stat key is missing/invalid.
const DefaultStat Stat = StatVitality

type Priority string

const (
	PriorityE Priority = "E"
	PriorityD Priority = "D"
	PriorityC Priority = "C"
	PriorityB Priority = "B"
	PriorityA Priority = "A"
	PriorityS Priority = "S"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityE, PriorityD, PriorityC, PriorityB, PriorityA, PriorityS:
		return true
	default:
		return false
	}
}

var priorityLabels = map[Priority]string{
	PriorityE: "Basic",
	PriorityD: "Common",
	PriorityC: "Important",
	PriorityB: "Urgent",
	PriorityA: "Critical",
	PriorityS: "Top priority",
}

func (p Priority) Label() string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return string(p)
}

type GoalType string

const (
	GoalShort  GoalType = "short"
	GoalMedium GoalType = "medium"
	GoalLong   GoalType = "long"
)

func (t GoalType) IsValid() bool {
	switch t {
	case GoalShort, GoalMedium, GoalLong:
		return true
	default:
		return false
	}
}

type GoalStatus string

const (
	GoalInProgress GoalStatus = "progress"
	GoalCompleted  GoalStatus = "completed"
	GoalAbandoned  GoalStatus = "abandoned"
)

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalInProgress, GoalCompleted, GoalAbandoned:
		return true
	default:
		return false
	}
}
