package analytics

import (
	"errors"
	"fmt"
)

// LegacyVersion is the current legacy profile layout.
const LegacyVersion = 1

// Legacy tuning.
const (
	maxStartingBonus = 10.0
	pointsPerBonus   = 50.0
	pointsPerTier    = 10
	pointsPerPromo   = 5
	pointsPerSeason  = 1
	pointsPerSigning = 2
)

// ErrUnsupportedVersion is returned for profiles written by a newer build.
var ErrUnsupportedVersion = errors.New("unsupported legacy profile version")

// LegacyProfile is the cross-playthrough snapshot. It is passed in and out
// explicitly at session boundaries.
type LegacyProfile struct {
	Version      int `json:"version"`
	Playthroughs int `json:"playthroughs"`
	BestTier     int `json:"bestTier"`
	TotalSeasons int `json:"totalSeasons"`
	LegacyPoints int `json:"legacyPoints"`
}

// CarryOver folds a finished career into the profile.
func CarryOver(p LegacyProfile, s CareerSummary) LegacyProfile {
	p.Version = LegacyVersion
	p.Playthroughs++
	p.BestTier = max(p.BestTier, s.PeakTier)
	p.TotalSeasons += s.Seasons
	p.LegacyPoints += s.PeakTier*pointsPerTier +
		s.Promotions*pointsPerPromo +
		s.Seasons*pointsPerSeason +
		s.TotalSignings*pointsPerSigning
	return p
}

// StartingReputationBonus is the head start a new career gets from the
// profile, never above 10.
func StartingReputationBonus(p LegacyProfile) float64 {
	if p.LegacyPoints <= 0 {
		return 0
	}
	return min(maxStartingBonus, float64(p.LegacyPoints)/pointsPerBonus)
}

// Migrate upgrades a profile to LegacyVersion.
func Migrate(p LegacyProfile) (LegacyProfile, error) {
	switch {
	case p.Version < 0 || p.Version > LegacyVersion:
		return p, fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	case p.Version == 0:
		// v0 profiles counted playthroughs only; points start from zero.
		p.Version = 1
		p.LegacyPoints = max(0, p.LegacyPoints)
		if p.BestTier == 0 && p.Playthroughs > 0 {
			p.BestTier = 1
		}
	}
	return p, nil
}
