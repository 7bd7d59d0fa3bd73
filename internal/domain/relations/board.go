package relations

import (
	"fmt"
	"math"
	"slices"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
)

// Board tuning.
const (
	affinityMultiplier = 1.2
	maxBoardSwing      = 30.0
	affinityWeight     = 5.0
	otherWeight        = 1.0
)

type directiveSpec struct {
	rewardLo, rewardHi   int
	penaltyLo, penaltyHi int
	target               int
	text                 string
}

var directiveSpecs = map[model.BoardDirectiveType]directiveSpec{
	model.BoardFindWonderkid:        {10, 15, 5, 10, 1, "Discover %d wonderkid-grade prospect(s)"},
	model.BoardBuildPipeline:        {8, 12, 4, 8, 3, "Bring %d young players into the academy"},
	model.BoardSignFirstTeamTarget:  {8, 14, 5, 10, 1, "Land %d first-team signing(s) from your reports"},
	model.BoardExpandNetwork:        {6, 10, 3, 6, 4, "Scout players in %d different countries"},
	model.BoardImproveReportQuality: {6, 10, 3, 7, 70, "Raise average report quality to %d"},
	model.BoardModernizeAnalytics:   {6, 10, 3, 6, 10, "File %d data-backed reports"},
}

var specializationAffinity = map[model.Specialization][]model.BoardDirectiveType{
	model.SpecYouth:     {model.BoardFindWonderkid, model.BoardBuildPipeline},
	model.SpecFirstTeam: {model.BoardSignFirstTeamTarget, model.BoardImproveReportQuality},
	model.SpecRegional:  {model.BoardExpandNetwork, model.BoardBuildPipeline},
	model.SpecData:      {model.BoardModernizeAnalytics, model.BoardImproveReportQuality},
}

// HasAffinity reports whether a directive type plays to a specialization.
func HasAffinity(spec model.Specialization, t model.BoardDirectiveType) bool {
	return slices.Contains(specializationAffinity[spec], t)
}

// scoutAffinity reports whether a directive type plays to either of the
// scout's specializations.
func scoutAffinity(scout model.Scout, t model.BoardDirectiveType) bool {
	for _, spec := range scout.Specializations() {
		if HasAffinity(spec, t) {
			return true
		}
	}
	return false
}

// DirectiveCount is how many mandates a board sets for a scout of the given
// reputation.
func DirectiveCount(reputation float64) int {
	switch {
	case reputation >= 80:
		return 3
	case reputation >= 50:
		return 2
	default:
		return 1
	}
}

// GenerateBoardDirectives draws the season's board mandates. Types never
// repeat within a season and lean toward the scout's specializations.
func GenerateBoardDirectives(src rng.Source, scout model.Scout, season int) []model.BoardDirective {
	pool := make([]rng.Weighted[model.BoardDirectiveType], 0, len(model.BoardDirectiveTypes))
	for _, t := range model.BoardDirectiveTypes {
		w := otherWeight
		if scoutAffinity(scout, t) {
			w = affinityWeight
		}
		pool = append(pool, rng.Weighted[model.BoardDirectiveType]{Value: t, Weight: w})
	}

	n := min(DirectiveCount(scout.Reputation), len(pool))
	out := make([]model.BoardDirective, 0, n)
	for i := 0; i < n; i++ {
		idx := rng.WeightedIndex(src, pool)
		kind := pool[idx].Value
		pool = slices.Delete(pool, idx, idx+1)

		spec := directiveSpecs[kind]
		out = append(out, model.BoardDirective{
			ID:             rng.NewID(src),
			Type:           kind,
			Description:    fmt.Sprintf(spec.text, spec.target),
			Target:         spec.target,
			DeadlineSeason: season,
			Reward:         float64(src.IntRange(spec.rewardLo, spec.rewardHi)),
			Penalty:        float64(src.IntRange(spec.penaltyLo, spec.penaltyHi)),
		})
	}
	return out
}

// SeasonStats are the season figures board directives are measured against.
type SeasonStats struct {
	WonderkidsFound      int
	YouthSignings        int
	FirstTeamSignings    int
	CountriesScouted     int
	AverageReportQuality float64
	DataReports          int
}

// UpdateBoardProgress records progress against each directive and marks
// those whose target has been reached as completed.
func UpdateBoardProgress(directives []model.BoardDirective, stats SeasonStats) []model.BoardDirective {
	out := slices.Clone(directives)
	for i, d := range out {
		var progress int
		switch d.Type {
		case model.BoardFindWonderkid:
			progress = stats.WonderkidsFound
		case model.BoardBuildPipeline:
			progress = stats.YouthSignings
		case model.BoardSignFirstTeamTarget:
			progress = stats.FirstTeamSignings
		case model.BoardExpandNetwork:
			progress = stats.CountriesScouted
		case model.BoardImproveReportQuality:
			progress = int(math.Floor(stats.AverageReportQuality))
		case model.BoardModernizeAnalytics:
			progress = stats.DataReports
		}
		out[i].Progress = progress
		if d.Target > 0 && progress >= d.Target {
			out[i].Completed = true
		}
	}
	return out
}

// BoardEvaluation is the verdict on directives due by a season.
type BoardEvaluation struct {
	Completed        []model.BoardDirective
	Failed           []model.BoardDirective
	Pending          []model.BoardDirective
	ReputationChange float64 // within [-30, 30]
}

// EvaluateBoardDirectives partitions directives due by currentSeason into
// completed and failed and nets their reputation stakes. Directives due
// later are pending and carry no stake yet.
func EvaluateBoardDirectives(directives []model.BoardDirective, scout model.Scout, currentSeason int) BoardEvaluation {
	var ev BoardEvaluation
	var net float64
	for _, d := range directives {
		switch {
		case d.DeadlineSeason > currentSeason:
			ev.Pending = append(ev.Pending, d)
		case d.Completed:
			ev.Completed = append(ev.Completed, d)
			reward := d.Reward
			if scoutAffinity(scout, d.Type) {
				reward *= affinityMultiplier
			}
			net += reward
		default:
			ev.Failed = append(ev.Failed, d)
			net -= d.Penalty
		}
	}
	ev.ReputationChange = clamp(net, -maxBoardSwing, maxBoardSwing)
	return ev
}
