package scoring

import (
	"github.com/okian/touchline/internal/domain/model"
)

// Tier 3: international coverage.
const (
	perForeignCountry    = 2.0
	maxForeignBonus      = 10.0
	singleCountryPenalty = -5.0
	homeOnlyPenalty      = -10.0
	minTierThree         = -10.0
	maxTierThree         = 10.0
)

// Tier 4: department and manager management.
const (
	maxMoralePts        = 4.0
	targetMorale        = 10.0
	maxVolumePts        = 4.0
	targetNPCReports    = 5.0
	maxTrustPts         = 4.0
	targetTrust         = 100.0
	maxDirectivePts     = 3.0
	neutralDirectivePts = 1.5
	maxTierFour         = 15.0
)

// Tier 5: board and department outcomes.
const (
	maxBoardPts       = 12.0
	boardPenaltyScale = 0.5
	maxBoardPenalty   = 10.0
	maxDeptVolumePts  = 4.0
	maxDeptQualityPts = 4.0
	targetDeptQuality = 70.0
	minTierFive       = -10.0
	maxTierFive       = 20.0
)

// TierThreeBonus rewards scouting beyond the home country and penalizes
// tunnel vision. Reports whose player has no known country are ignored.
func TierThreeBonus(reports []model.Report, scoutID string, season int, tc *TierContext) float64 {
	countries := make(map[string]struct{})
	for _, r := range reports {
		if r.ScoutID != scoutID || r.Season != season {
			continue
		}
		if c, ok := tc.PlayerCountries[r.PlayerID]; ok && c != "" {
			countries[c] = struct{}{}
		}
	}
	if len(countries) == 0 {
		return 0
	}

	var foreign int
	for c := range countries {
		if c != tc.HomeCountry {
			foreign++
		}
	}
	bonus := min(maxForeignBonus, float64(foreign)*perForeignCountry)

	if len(countries) == 1 {
		if _, home := countries[tc.HomeCountry]; home {
			bonus += homeOnlyPenalty
		} else {
			bonus += singleCountryPenalty
		}
	}
	return max(minTierThree, min(maxTierThree, bonus))
}

// TierFourBonus rewards keeping the NPC department productive and happy and
// the manager onside.
func TierFourBonus(tc *TierContext) float64 {
	var bonus float64

	if n := len(tc.NPCScouts); n > 0 {
		var morale int
		for _, s := range tc.NPCScouts {
			morale += s.Morale
		}
		avgMorale := float64(morale) / float64(n)
		bonus += min(maxMoralePts, avgMorale/targetMorale*maxMoralePts)

		avgReports := float64(len(tc.NPCReports)) / float64(n)
		bonus += min(maxVolumePts, avgReports/targetNPCReports*maxVolumePts)
	}

	if tc.Manager != nil {
		bonus += min(maxTrustPts, tc.Manager.Trust/targetTrust*maxTrustPts)
	}

	if len(tc.ManagerDirectives) == 0 {
		bonus += neutralDirectivePts
	} else {
		var done int
		for _, d := range tc.ManagerDirectives {
			if d.Fulfilled {
				done++
			}
		}
		bonus += maxDirectivePts * float64(done) / float64(len(tc.ManagerDirectives))
	}

	return max(0, min(maxTierFour, bonus))
}

// TierFiveBonus rewards completing board directives and running a productive
// department.
func TierFiveBonus(tc *TierContext) float64 {
	var bonus float64

	if n := len(tc.BoardDirectives); n > 0 {
		var done int
		var penalty float64
		for _, d := range tc.BoardDirectives {
			if d.Completed {
				done++
			} else {
				penalty += d.Penalty
			}
		}
		bonus += maxBoardPts * float64(done) / float64(n)
		bonus -= min(maxBoardPenalty, penalty*boardPenaltyScale)
	}

	if n := len(tc.NPCScouts); n > 0 && len(tc.NPCReports) > 0 {
		avgReports := float64(len(tc.NPCReports)) / float64(n)
		bonus += min(maxDeptVolumePts, avgReports/targetNPCReports*maxDeptVolumePts)

		var quality int
		for _, r := range tc.NPCReports {
			quality += r.Quality
		}
		avgQuality := float64(quality) / float64(len(tc.NPCReports))
		bonus += min(maxDeptQualityPts, avgQuality/targetDeptQuality*maxDeptQualityPts)
	}

	return max(minTierFive, min(maxTierFive, bonus))
}
