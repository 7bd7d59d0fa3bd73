package npc

import "github.com/okian/touchline/internal/domain/model"

// Evaluation grades an NPC report.
type Evaluation struct {
	Tier   model.NPCReportTier
	Useful bool
}

// EvaluateReport classifies a report's quality. Decent or better is useful.
func EvaluateReport(r model.NPCScoutReport) Evaluation {
	var tier model.NPCReportTier
	switch {
	case r.Quality >= 80:
		tier = model.NPCReportExcellent
	case r.Quality >= 60:
		tier = model.NPCReportGood
	case r.Quality >= 30:
		tier = model.NPCReportDecent
	default:
		tier = model.NPCReportPoor
	}
	return Evaluation{Tier: tier, Useful: tier != model.NPCReportPoor}
}
