package model

// ManagerRelationship is the trust/influence state between a tier 4+ scout
// and the employing club's manager.
type ManagerRelationship struct {
	ManagerID          string
	Trust              float64 // 0–100
	Influence          float64 // 0–100
	Preference         ScoutingStyle
	MeetingsThisSeason int
}

// ManagerDirective is a short-term request issued in a meeting.
type ManagerDirective struct {
	ID           string
	Type         ManagerDirectiveType
	Description  string
	Urgency      int // 1–3
	IssuedWeek   int
	DeadlineWeek int
	Fulfilled    bool
}

// BoardDirective is a season-scoped mandate for tier 5 scouts.
type BoardDirective struct {
	ID             string
	Type           BoardDirectiveType
	Description    string
	Target         int
	Progress       int
	DeadlineSeason int
	Completed      bool
	Reward         float64
	Penalty        float64
}
