// Package market simulates the scouting job market: which clubs come
// calling at season end and on what terms.
package market

import (
	"math"
	"sort"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
)

// DefaultWeeksPerSeason is used when a season length is not supplied.
const DefaultWeeksPerSeason = 38

const (
	expiryWindowWeeks = 3
	minContract       = 1
	maxContract       = 3
	premiumShare      = 0.2
	lowerTierWidth    = 20.0
	upperTierWidth    = 30.0
	repPerExtraOffer  = 30.0
	maxLowTierOffers  = 3
)

// tierMinReputation is the reputation a scout needs before clubs of a tier
// will approach them.
var tierMinReputation = [model.MaxTier + 1]float64{0, 0, 25, 50, 70, 90}

// windowMin anchors each tier's club reputation window.
var windowMin = [model.MaxTier + 1]float64{0, 0, 20, 40, 55, 70}

type band struct{ lo, hi int }

var salaryBands = [model.MaxTier + 1]band{
	{},
	{8_000, 15_000},
	{15_000, 30_000},
	{30_000, 60_000},
	{60_000, 120_000},
	{120_000, 250_000},
}

var roles = [model.MaxTier + 1]string{
	"",
	"Part-time Scout",
	"Full-time Scout",
	"Senior Scout",
	"Chief Scout",
	"Director of Football",
}

var affinity = map[model.Specialization]model.ClubPhilosophy{
	model.SpecYouth:     model.PhilosophyYouthDevelopment,
	model.SpecFirstTeam: model.PhilosophyWinNow,
	model.SpecRegional:  model.PhilosophyLocalFocus,
	model.SpecData:      model.PhilosophyDataDriven,
}

// Season identifies the season offers are generated for.
type Season struct {
	Number int
	Weeks  int
}

// MinReputation returns the reputation needed to be offered a job at tier.
func MinReputation(tier int) float64 {
	if tier < model.MinTier || tier > model.MaxTier {
		return math.Inf(1)
	}
	return tierMinReputation[tier]
}

// ReputationWindow returns the inclusive club reputation range that hires at
// tier.
func ReputationWindow(tier int) (lo, hi float64) {
	tier = max(model.MinTier, min(model.MaxTier, tier))
	width := lowerTierWidth
	if tier >= 4 {
		width = upperTierWidth
	}
	lo = windowMin[tier]
	return lo, min(100, lo+width)
}

// Matches reports whether a club's philosophy suits a specialization.
// Balanced clubs suit everyone.
func Matches(spec model.Specialization, p model.ClubPhilosophy) bool {
	return p == model.PhilosophyBalanced || affinity[spec] == p
}

// suits reports whether a club's philosophy fits any of the scout's
// specializations.
func suits(scout model.Scout, p model.ClubPhilosophy) bool {
	for _, spec := range scout.Specializations() {
		if Matches(spec, p) {
			return true
		}
	}
	return false
}

// Candidates returns the clubs eligible to hire a scout at the target tier,
// in club id order. The affinity filter is dropped for tier 3+ when it
// leaves nobody.
func Candidates(scout model.Scout, clubs []model.Club, target int) []model.Club {
	lo, hi := ReputationWindow(target)
	var inWindow []model.Club
	for _, c := range clubs {
		if c.Reputation >= lo && c.Reputation <= hi {
			inWindow = append(inWindow, c)
		}
	}
	sort.Slice(inWindow, func(i, j int) bool { return inWindow[i].ID < inWindow[j].ID })

	var matched []model.Club
	for _, c := range inWindow {
		if suits(scout, c.Philosophy) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 && target >= 3 {
		return inWindow
	}
	return matched
}

// GenerateJobOffers proposes zero or more jobs one tier above the scout's
// current tier. An unqualified scout or an empty candidate pool yields no
// offers.
func GenerateJobOffers(src rng.Source, scout model.Scout, clubs []model.Club, season Season) []model.JobOffer {
	target := scout.Tier + 1
	if target > model.MaxTier || scout.Reputation < MinReputation(target) {
		return nil
	}

	candidates := Candidates(scout, clubs, target)
	if len(candidates) == 0 {
		return nil
	}

	count := offerCount(src, scout.Reputation, target)
	picked := rng.Sample(src, candidates, count)

	weeks := season.Weeks
	if weeks <= 0 {
		weeks = DefaultWeeksPerSeason
	}

	offers := make([]model.JobOffer, 0, len(picked))
	for _, club := range picked {
		offers = append(offers, model.JobOffer{
			ID:             rng.NewID(src),
			ClubID:         club.ID,
			ClubName:       club.Name,
			Tier:           target,
			Role:           roles[target],
			Salary:         salary(src, target, scout.Reputation),
			ContractLength: src.IntRange(minContract, maxContract),
			Season:         season.Number,
			ExpiresWeek:    src.IntRange(max(1, weeks-expiryWindowWeeks), weeks),
		})
	}
	return offers
}

func offerCount(src rng.Source, reputation float64, target int) int {
	switch {
	case target >= 4:
		return 1
	case target == 3:
		return src.IntRange(1, 2)
	default:
		ceiling := int(math.Ceil(reputation / repPerExtraOffer))
		ceiling = max(1, min(maxLowTierOffers, ceiling))
		return src.IntRange(1, ceiling)
	}
}

func salary(src rng.Source, tier int, reputation float64) int {
	b := salaryBands[tier]
	base := src.IntRange(b.lo, b.hi)
	premium := math.Round(premiumShare * float64(b.hi-b.lo) * max(0, min(100, reputation)) / 100)
	return base + int(premium)
}

// SalaryBand returns the base salary range for tier and the maximum
// reputation premium on top of it.
func SalaryBand(tier int) (lo, hi, maxPremium int) {
	tier = max(model.MinTier, min(model.MaxTier, tier))
	b := salaryBands[tier]
	return b.lo, b.hi, int(math.Round(premiumShare * float64(b.hi-b.lo)))
}
