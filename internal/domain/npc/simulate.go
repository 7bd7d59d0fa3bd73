package npc

import (
	"fmt"
	"math"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
)

// Observation and fatigue tuning.
const (
	minObservations     = 2
	maxObservations     = 5
	qualityPerLevel     = 20
	specializationBonus = 10
	tiredPenalty        = 15
	tiredThreshold      = 70.0
	qualityNoise        = 10.0
	noisyThreshold      = 60.0
	weeklyFatigue       = 8.0
	moraleDropThreshold = 80.0
	minReadings         = 3
	maxReadings         = 6
	minConfidence       = 0.1
	maxConfidence       = 0.9
	maxAttribute        = 20
	youthAge            = 21
	firstTeamAbility    = 130
	dataAbility         = 100
	pursueBlend         = 70.0
	shortlistBlend      = 50.0
)

// Week identifies the tick being simulated.
type Week struct {
	Season int
	Number int
}

// WeekResult is the roster after a week of work and the reports it filed.
type WeekResult struct {
	Scouts  []model.NPCScout
	Reports []model.NPCScoutReport
}

// SimulateWeek runs one week of autonomous scouting. Only scouts assigned to
// a known territory work; everyone else is returned unchanged. Inputs are
// not modified.
func SimulateWeek(src rng.Source, scouts []model.NPCScout, territories []model.Territory, world model.World, week Week) WeekResult {
	byID := make(map[string]model.Territory, len(territories))
	for _, t := range territories {
		byID[t.ID] = t
	}

	res := WeekResult{Scouts: make([]model.NPCScout, len(scouts))}
	for i, s := range scouts {
		t, ok := byID[s.TerritoryID]
		if s.TerritoryID == "" || !ok {
			res.Scouts[i] = s
			continue
		}

		pool := territoryPlayerPool(t, world)
		n := src.IntRange(minObservations, maxObservations)
		for _, p := range rng.Sample(src, pool, n) {
			res.Reports = append(res.Reports, observe(src, s, p, week))
		}
		s.ReportsSubmitted += min(n, len(pool))
		res.Scouts[i] = tire(s)
	}
	return res
}

// territoryPlayerPool resolves the players a territory covers.
//
// TODO: thread club->league linkage into the world snapshot contract and
// filter players by the territory's LeagueIDs. Until then every territory
// scouts the full player pool.
func territoryPlayerPool(_ model.Territory, world model.World) []model.Player {
	return world.Players
}

func tire(s model.NPCScout) model.NPCScout {
	before := s.Fatigue
	s.Fatigue = min(100, s.Fatigue+weeklyFatigue)
	if before <= moraleDropThreshold && s.Fatigue > moraleDropThreshold {
		s.Morale = max(model.MinMorale, s.Morale-1)
	}
	return s
}

// MatchesSpecialization reports whether a player fits the scout's focus.
func MatchesSpecialization(spec model.Specialization, p model.Player) bool {
	switch spec {
	case model.SpecYouth:
		return p.Age < youthAge
	case model.SpecFirstTeam:
		return p.CurrentAbility >= firstTeamAbility
	case model.SpecRegional:
		return true
	case model.SpecData:
		return p.CurrentAbility >= dataAbility
	}
	return false
}

// CalculateNPCReportQuality is the noiseless report quality an NPC scout
// would produce on a player, in [1, 100].
func CalculateNPCReportQuality(s model.NPCScout, p model.Player) int {
	q := s.Quality * qualityPerLevel
	if MatchesSpecialization(s.Specialization, p) {
		q += specializationBonus
	}
	if s.Fatigue > tiredThreshold {
		q -= tiredPenalty
	}
	return clampInt(q, 1, 100)
}

func observe(src rng.Source, s model.NPCScout, p model.Player, week Week) model.NPCScoutReport {
	base := CalculateNPCReportQuality(s, p)
	quality := clampInt(int(math.Round(float64(base)+src.Gaussian(0, qualityNoise))), 1, 100)
	tired := s.Fatigue > noisyThreshold

	readings := readAttributes(src, p, quality, tired)

	confidence := float64(quality) / 100
	if tired {
		confidence -= 0.1
	}
	confidence = max(minConfidence, min(maxConfidence, confidence))

	rec := Recommend(quality, p.CurrentAbility)
	return model.NPCScoutReport{
		ID:             rng.NewID(src),
		NPCScoutID:     s.ID,
		PlayerID:       p.ID,
		Season:         week.Season,
		Week:           week.Number,
		Quality:        quality,
		Readings:       readings,
		Confidence:     confidence,
		Recommendation: rec,
		Summary:        summarize(p, quality, rec),
	}
}

// ReadingCount is the number of attributes a report of this quality covers.
func ReadingCount(quality int) int {
	return clampInt(minReadings+quality*3/100, minReadings, maxReadings)
}

func readAttributes(src rng.Source, p model.Player, quality int, tired bool) []model.AttributeReading {
	sigma := 1 + float64(100-quality)/25
	if tired {
		sigma *= 1.5
	}
	names := rng.Sample(src, p.SortedAttributeNames(), ReadingCount(quality))
	out := make([]model.AttributeReading, 0, len(names))
	for _, name := range names {
		truth := p.Attributes[name]
		v := int(math.Round(float64(truth) + src.Gaussian(0, sigma)))
		out = append(out, model.AttributeReading{
			Attribute: name,
			Value:     clampInt(v, 1, maxAttribute),
			TrueValue: truth,
		})
	}
	return out
}

// Recommend blends report quality (70%) with the player's ability scaled to
// 0–100 (30%).
func Recommend(quality, ability int) model.Recommendation {
	blend := 0.7*float64(quality) + 0.3*float64(clampInt(ability, 0, 200))/2
	switch {
	case blend >= pursueBlend:
		return model.RecommendPursue
	case blend >= shortlistBlend:
		return model.RecommendShortlist
	default:
		return model.RecommendMonitor
	}
}

func summarize(p model.Player, quality int, rec model.Recommendation) string {
	var read string
	switch {
	case quality >= 80:
		read = "a thorough read"
	case quality >= 60:
		read = "a solid read"
	case quality >= 30:
		read = "a partial read"
	default:
		read = "only a glimpse"
	}
	return fmt.Sprintf("%s (%d): %s. Verdict: %s.", p.Name, p.Age, read, rec)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
