// Package analytics keeps the per-season career history of a scout.
package analytics

import (
	"slices"

	"github.com/okian/touchline/internal/domain/model"
)

// SeasonSnapshot is the end-of-season record of a scout.
type SeasonSnapshot struct {
	Season     int                 `json:"season"`
	Tier       int                 `json:"tier"`
	Reputation float64             `json:"reputation"`
	Score      float64             `json:"score"`
	Outcome    model.ReviewOutcome `json:"outcome"`
	Reports    int                 `json:"reports"`
	Signings   int                 `json:"signings"`
	NPCReports int                 `json:"npcReports"`
	BoardSwing float64             `json:"boardSwing"`
	Balance    int                 `json:"balance"`
	EmployerID string              `json:"employerId,omitempty"`
}

// History is a season-ordered list of snapshots.
type History []SeasonSnapshot

// AddSeasonSnapshot records snap, replacing any snapshot already held for
// the same season.
func AddSeasonSnapshot(h History, snap SeasonSnapshot) History {
	out := slices.Clone(h)
	i, found := slices.BinarySearchFunc(out, snap.Season, func(s SeasonSnapshot, season int) int {
		return s.Season - season
	})
	if found {
		out[i] = snap
		return out
	}
	return slices.Insert(out, i, snap)
}

// CareerSummary condenses a history.
type CareerSummary struct {
	Seasons        int     `json:"seasons"`
	PeakReputation float64 `json:"peakReputation"`
	PeakTier       int     `json:"peakTier"`
	BestScore      float64 `json:"bestScore"`
	Promotions     int     `json:"promotions"`
	Firings        int     `json:"firings"`
	TotalReports   int     `json:"totalReports"`
	TotalSignings  int     `json:"totalSignings"`
}

// Summarize folds a history into a CareerSummary.
func Summarize(h History) CareerSummary {
	var s CareerSummary
	for _, snap := range h {
		s.Seasons++
		s.PeakReputation = max(s.PeakReputation, snap.Reputation)
		s.PeakTier = max(s.PeakTier, snap.Tier)
		s.BestScore = max(s.BestScore, snap.Score)
		s.TotalReports += snap.Reports
		s.TotalSignings += snap.Signings
		switch snap.Outcome {
		case model.OutcomePromoted:
			s.Promotions++
		case model.OutcomeFired:
			s.Firings++
		case model.OutcomeRetained, model.OutcomeWarning:
		}
	}
	return s
}
