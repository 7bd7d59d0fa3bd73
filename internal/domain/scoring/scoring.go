// Package scoring computes end-of-season performance reviews from report
// volume and quality, signing success, and tier-specific bonuses.
package scoring

import (
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/reputation"
)

// Base score components and their targets.
const (
	maxReportScore  = 25.0
	targetReports   = 10.0
	maxQualityScore = 40.0
	targetQuality   = 75.0
	maxSigningScore = 25.0
	targetSignings  = 3.0
	tablePoundBonus = 10.0
	maxScoreValue   = 100.0
	promotedScore   = 85.0
	retainedScore   = 55.0
	warningScore    = 30.0
)

// TierContext carries the optional inputs for tier 3+ bonuses. A nil context
// skips every tier bonus.
type TierContext struct {
	// HomeCountry is the scout's base country.
	HomeCountry string
	// PlayerCountries maps player ids to the country they were scouted in.
	PlayerCountries map[string]string

	// NPCScouts is the department roster (tier 4+).
	NPCScouts []model.NPCScout
	// NPCReports are the department's reports for the season (tier 4+).
	NPCReports []model.NPCScoutReport
	// Manager is the relationship with the club manager, when employed.
	Manager *model.ManagerRelationship
	// ManagerDirectives issued during the season.
	ManagerDirectives []model.ManagerDirective

	// BoardDirectives due this season (tier 5).
	BoardDirectives []model.BoardDirective
}

// CalculatePerformanceReview scores a scout's season. Reports belonging to
// other scouts or seasons are ignored.
func CalculatePerformanceReview(scout model.Scout, reports []model.Report, season int, tc *TierContext) model.PerformanceReview {
	review := model.PerformanceReview{ScoutID: scout.ID, Season: season}

	var qualitySum int
	for _, r := range reports {
		if r.ScoutID != scout.ID || r.Season != season {
			continue
		}
		review.ReportsSubmitted++
		qualitySum += r.Quality
		if r.SuccessfulSigning() {
			review.SuccessfulSignings++
		}
		if r.TablePound() {
			review.TablePoundsUsed++
			if r.SuccessfulSigning() {
				review.TablePoundHits++
			}
		}
	}
	if review.ReportsSubmitted > 0 {
		review.AverageQuality = float64(qualitySum) / float64(review.ReportsSubmitted)
	}

	b := model.ScoreBreakdown{
		Reports:  min(maxReportScore, float64(review.ReportsSubmitted)/targetReports*maxReportScore),
		Quality:  min(maxQualityScore, review.AverageQuality/targetQuality*maxQualityScore),
		Signings: min(maxSigningScore, float64(review.SuccessfulSignings)/targetSignings*maxSigningScore),
	}
	if review.TablePoundHits > 0 {
		b.TablePound = tablePoundBonus
	}

	if tc != nil {
		if scout.Tier >= 3 {
			b.TierThree = TierThreeBonus(reports, scout.ID, season, tc)
		}
		if scout.Tier >= 4 {
			b.TierFour = TierFourBonus(tc)
		}
		if scout.Tier >= 5 {
			b.TierFive = TierFiveBonus(tc)
		}
	}

	b.Unclamped = b.Reports + b.Quality + b.Signings + b.TablePound + b.TierThree + b.TierFour + b.TierFive
	review.Breakdown = b
	review.Score = max(0, min(maxScoreValue, b.Unclamped))
	review.Outcome = OutcomeForScore(review.Score)
	review.ReputationDelta = reputation.Delta(reputation.SeasonEnd{Outcome: review.Outcome})
	return review
}

// OutcomeForScore maps a composite score to the review verdict.
func OutcomeForScore(score float64) model.ReviewOutcome {
	switch {
	case score >= promotedScore:
		return model.OutcomePromoted
	case score >= retainedScore:
		return model.OutcomeRetained
	case score >= warningScore:
		return model.OutcomeWarning
	default:
		return model.OutcomeFired
	}
}
