// Package relations models the tier 4+ relationships a senior scout has to
// manage: the first-team manager and, at tier 5, the board.
package relations

import (
	"fmt"
	"slices"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
)

// Satisfaction weights.
const (
	maxTrustPts         = 30.0
	maxQualityPts       = 40.0
	maxDirectivePts     = 30.0
	neutralDirectivePts = 15.0
	dataHeavyPoints     = 5
)

// Meeting tuning.
const (
	startingTrust     = 50.0
	startingInfluence = 20.0
	meetingNoise      = 8.0
	positiveTrust     = 65.0
	neutralTrust      = 40.0
)

type toneEffect struct {
	trust     float64
	influence float64
	directive float64
}

var toneEffects = map[model.MeetingTone]toneEffect{
	model.TonePositive: {trust: 8, influence: 3, directive: 0.6},
	model.ToneNeutral:  {trust: 0, influence: 0, directive: 0.3},
	model.ToneNegative: {trust: -6, influence: -2, directive: 0},
}

var managerDirectiveWeights = map[model.ScoutingStyle][]rng.Weighted[model.ManagerDirectiveType]{
	model.StyleDataHeavy: {
		{Value: model.ManagerDeliverDataPack, Weight: 4},
		{Value: model.ManagerScoutOpponent, Weight: 3},
		{Value: model.ManagerFindPositionTarget, Weight: 2},
		{Value: model.ManagerAssessLoanee, Weight: 1},
		{Value: model.ManagerTrackRivalTarget, Weight: 1},
	},
	model.StyleBoldConviction: {
		{Value: model.ManagerFindPositionTarget, Weight: 4},
		{Value: model.ManagerTrackRivalTarget, Weight: 3},
		{Value: model.ManagerScoutOpponent, Weight: 1},
		{Value: model.ManagerAssessLoanee, Weight: 1},
		{Value: model.ManagerDeliverDataPack, Weight: 1},
	},
	model.StyleOutcomeFocused: {
		{Value: model.ManagerScoutOpponent, Weight: 3},
		{Value: model.ManagerFindPositionTarget, Weight: 3},
		{Value: model.ManagerAssessLoanee, Weight: 2},
		{Value: model.ManagerTrackRivalTarget, Weight: 2},
		{Value: model.ManagerDeliverDataPack, Weight: 1},
	},
}

var managerDirectiveText = map[model.ManagerDirectiveType]string{
	model.ManagerFindPositionTarget: "Find me a player who can start in a problem position",
	model.ManagerScoutOpponent:      "Give me a full report on our next opponent",
	model.ManagerAssessLoanee:       "Assess how our loaned-out players are developing",
	model.ManagerTrackRivalTarget:   "Find out who our rivals are chasing",
	model.ManagerDeliverDataPack:    "Put together a data pack on transfer targets",
}

// NewManagerRelationship opens a relationship with a manager whose scouting
// preference is drawn from the stream.
func NewManagerRelationship(src rng.Source, managerID string) model.ManagerRelationship {
	return model.ManagerRelationship{
		ManagerID:  managerID,
		Trust:      startingTrust,
		Influence:  startingInfluence,
		Preference: rng.Pick(src, model.ScoutingStyles),
	}
}

// StyleShare is the fraction of reports that suit the manager's preference.
func StyleShare(style model.ScoutingStyle, reports []model.Report) float64 {
	if len(reports) == 0 {
		return 0
	}
	var n int
	for _, r := range reports {
		switch style {
		case model.StyleDataHeavy:
			if r.DataPoints >= dataHeavyPoints {
				n++
			}
		case model.StyleBoldConviction:
			if r.Conviction == model.ConvictionStrongRecommend || r.Conviction == model.ConvictionTablePound {
				n++
			}
		case model.StyleOutcomeFocused:
			if r.ClubResponse.Actioned() {
				n++
			}
		}
	}
	return float64(n) / float64(len(reports))
}

// CalculateManagerSatisfaction scores how happy the manager is, 0–100.
func CalculateManagerSatisfaction(rel model.ManagerRelationship, reports []model.Report, directives []model.ManagerDirective) float64 {
	trustPts := clamp(rel.Trust, 0, 100) / 100 * maxTrustPts

	var qualityPts float64
	if len(reports) > 0 {
		var sum int
		for _, r := range reports {
			sum += r.Quality
		}
		avg := float64(sum) / float64(len(reports))
		multiplier := 0.8 + 0.4*StyleShare(rel.Preference, reports)
		qualityPts = min(maxQualityPts, avg/100*maxQualityPts*multiplier)
	}

	directivePts := neutralDirectivePts
	if len(directives) > 0 {
		var total, done float64
		for _, d := range directives {
			u := float64(max(1, d.Urgency))
			total += u
			if d.Fulfilled {
				done += u
			}
		}
		directivePts = maxDirectivePts * done / total
	}

	return clamp(trustPts+qualityPts+directivePts, 0, 100)
}

// MeetingOutcome is the result of a periodic manager meeting.
type MeetingOutcome struct {
	Relationship   model.ManagerRelationship
	Tone           model.MeetingTone
	TrustDelta     float64
	InfluenceDelta float64
	Directive      *model.ManagerDirective
}

// MeetingSkillBonus converts the scout's people skills into effective trust.
func MeetingSkillBonus(s model.Skills) float64 {
	return float64(s.Networking+s.Persuasion) / 4
}

// ToneFor maps effective trust to a meeting tone.
func ToneFor(effectiveTrust float64) model.MeetingTone {
	switch {
	case effectiveTrust >= positiveTrust:
		return model.TonePositive
	case effectiveTrust >= neutralTrust:
		return model.ToneNeutral
	default:
		return model.ToneNegative
	}
}

// ResolveManagerMeeting plays out a meeting in the given week.
func ResolveManagerMeeting(src rng.Source, rel model.ManagerRelationship, scout model.Scout, week int) MeetingOutcome {
	effective := rel.Trust + MeetingSkillBonus(scout.Skills) + src.Gaussian(0, meetingNoise)
	tone := ToneFor(effective)
	fx := toneEffects[tone]

	out := rel
	out.Trust = clamp(rel.Trust+fx.trust, 0, 100)
	out.Influence = clamp(rel.Influence+fx.influence, 0, 100)
	out.MeetingsThisSeason++

	res := MeetingOutcome{
		Relationship:   out,
		Tone:           tone,
		TrustDelta:     out.Trust - rel.Trust,
		InfluenceDelta: out.Influence - rel.Influence,
	}
	if src.Chance(fx.directive) {
		d := newManagerDirective(src, rel.Preference, week)
		res.Directive = &d
	}
	return res
}

func newManagerDirective(src rng.Source, style model.ScoutingStyle, week int) model.ManagerDirective {
	weights, ok := managerDirectiveWeights[style]
	if !ok {
		weights = managerDirectiveWeights[model.StyleOutcomeFocused]
	}
	kind := rng.WeightedPick(src, weights)
	urgency := src.IntRange(1, 3)
	return model.ManagerDirective{
		ID:           rng.NewID(src),
		Type:         kind,
		Description:  fmt.Sprintf("%s (urgency %d)", managerDirectiveText[kind], urgency),
		Urgency:      urgency,
		IssuedWeek:   week,
		DeadlineWeek: week + src.IntRange(2, 6),
	}
}

// Satisfies reports whether a report answers a manager directive.
func Satisfies(d model.ManagerDirective, r model.Report) bool {
	if d.Fulfilled || r.Week > d.DeadlineWeek {
		return false
	}
	switch d.Type {
	case model.ManagerDeliverDataPack:
		return r.DataPoints >= dataHeavyPoints
	case model.ManagerFindPositionTarget:
		return r.Conviction == model.ConvictionStrongRecommend || r.Conviction == model.ConvictionTablePound
	case model.ManagerTrackRivalTarget:
		return r.Conviction != model.ConvictionNote
	default:
		return true
	}
}

// FulfillDirective marks the oldest open directive the report satisfies as
// fulfilled. It returns the updated directives and whether one matched.
func FulfillDirective(directives []model.ManagerDirective, r model.Report) ([]model.ManagerDirective, bool) {
	for i, d := range directives {
		if Satisfies(d, r) {
			out := slices.Clone(directives)
			out[i].Fulfilled = true
			return out, true
		}
	}
	return directives, false
}

// StartSeason clears the meeting counter.
func StartSeason(rel model.ManagerRelationship) model.ManagerRelationship {
	rel.MeetingsThisSeason = 0
	return rel
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
