// Package npc simulates the autonomous scouts a senior scout manages:
// hiring, territory coverage, weekly observation, and rest.
package npc

import (
	"fmt"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
)

const (
	startingMorale = 7
	restFatigue    = 25.0
)

type band struct{ lo, hi int }

// Hire quality unlocked by the employing scout's tier.
var qualityByTier = [model.MaxTier + 1]band{
	{},
	{1, 2},
	{1, 3},
	{2, 3},
	{2, 4},
	{3, 5},
}

// Weekly salary by NPC quality.
var salaryByQuality = [model.MaxNPCQuality + 1]band{
	{},
	{300, 500},
	{500, 800},
	{800, 1_200},
	{1_200, 1_800},
	{1_800, 2_600},
}

var firstNames = []string{
	"Alex", "Bruno", "Carla", "Dario", "Elena", "Femi", "Gustavo", "Hana",
	"Ivan", "Joao", "Kasia", "Luca", "Mateo", "Nadia", "Oskar", "Priya",
}

var lastNames = []string{
	"Almeida", "Berg", "Costa", "Duarte", "Eriksen", "Fischer", "Garcia",
	"Hughes", "Ito", "Jovanovic", "Kowalski", "Lindqvist", "Moreau", "Novak",
}

// QualityBand returns the hireable quality range for a scout tier.
func QualityBand(tier int) (lo, hi int) {
	tier = max(model.MinTier, min(model.MaxTier, tier))
	b := qualityByTier[tier]
	return b.lo, b.hi
}

// SalaryBand returns the weekly salary range for an NPC quality.
func SalaryBand(quality int) (lo, hi int) {
	quality = max(model.MinNPCQuality, min(model.MaxNPCQuality, quality))
	b := salaryByQuality[quality]
	return b.lo, b.hi
}

// GenerateNPCScouts draws count new hires for a scout at the given tier.
func GenerateNPCScouts(src rng.Source, count, scoutTier int) []model.NPCScout {
	if count <= 0 {
		return nil
	}
	qLo, qHi := QualityBand(scoutTier)
	out := make([]model.NPCScout, 0, count)
	for i := 0; i < count; i++ {
		quality := src.IntRange(qLo, qHi)
		sLo, sHi := SalaryBand(quality)
		out = append(out, model.NPCScout{
			ID:             rng.NewID(src),
			Name:           fmt.Sprintf("%s %s", rng.Pick(src, firstNames), rng.Pick(src, lastNames)),
			Quality:        quality,
			Specialization: rng.Pick(src, model.Specializations),
			Salary:         src.IntRange(sLo, sHi),
			Morale:         startingMorale,
		})
	}
	return out
}

// Rest recovers fatigue and lifts morale.
func Rest(s model.NPCScout) model.NPCScout {
	s.Fatigue = max(0, s.Fatigue-restFatigue)
	s.Morale = min(model.MaxMorale, s.Morale+1)
	return s
}

// WeeklyWageBill sums the roster's weekly salaries.
func WeeklyWageBill(scouts []model.NPCScout) int {
	var total int
	for _, s := range scouts {
		total += s.Salary
	}
	return total
}
