package model

// NPC scout bounds.
const (
	MinNPCQuality = 1
	MaxNPCQuality = 5
	MinMorale     = 1
	MaxMorale     = 10
)

// NPCScout is an autonomously simulated scout employed by the player at
// higher tiers.
type NPCScout struct {
	ID               string
	Name             string
	Quality          int // 1–5
	Specialization   Specialization
	Salary           int // weekly
	Fatigue          float64
	Morale           int // 1–10
	ReportsSubmitted int
	TerritoryID      string // mirror of Territory.AssignedScoutIDs; empty when unassigned
}

// Territory is a country-scoped grouping of leagues.
type Territory struct {
	ID               string
	Name             string
	Country          string
	LeagueIDs        []string
	Capacity         int
	AssignedScoutIDs []string
}

// Clone returns a deep copy of t.
func (t Territory) Clone() Territory {
	t.LeagueIDs = append([]string(nil), t.LeagueIDs...)
	t.AssignedScoutIDs = append([]string(nil), t.AssignedScoutIDs...)
	return t
}

// OverCapacity reports whether more scouts are assigned than the soft capacity.
func (t Territory) OverCapacity() bool { return len(t.AssignedScoutIDs) > t.Capacity }

// AttributeReading is one noisy observation of a player attribute.
type AttributeReading struct {
	Attribute string
	Value     int // 1–20
	TrueValue int
}

// NPCScoutReport is the simplified report an NPC scout files.
type NPCScoutReport struct {
	ID             string
	NPCScoutID     string
	PlayerID       string
	Season         int
	Week           int
	Quality        int // 1–100
	Readings       []AttributeReading
	Confidence     float64 // 0.1–0.9
	Recommendation Recommendation
	Summary        string
}
