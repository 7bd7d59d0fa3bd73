package main

import (
	"context"
	"errors"
	"fmt"

	service "github.com/okian/touchline/internal/app"
	"github.com/okian/touchline/internal/config"
	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"
)

// Autopilot tuning.
const (
	baseQuality      = 35
	qualityPerTier   = 5
	qualitySpread    = 30
	signingChance    = 0.3
	signingMinimum   = 65
	discoveryMaxAge  = 21
	pathChoiceSeason = 1
)

// newSession builds the career session described by cfg.
func newSession(cfg *config.Config, world model.World, log logger.Logger, m *metrics.Manager) *service.Session {
	return service.New(
		service.WithSeed(cfg.Seed),
		service.WithWorld(world),
		service.WithScout(scoutFromConfig(cfg)),
		service.WithWeeksPerSeason(cfg.WeeksPerSeason),
		service.WithNPCRosterSize(cfg.NPCRosterSize),
		service.WithMeetingInterval(cfg.MeetingIntervalWeeks),
		service.WithNPCRestThreshold(cfg.NPCRestThreshold),
		service.WithLogger(log.Named("career")),
		service.WithMetrics(m),
	)
}

// run plays a full career on autopilot: one report a week on a random
// player, the best-paid offer accepted each summer.
func run(ctx context.Context, sess *service.Session, cfg *config.Config, world model.World, log logger.Logger) (analytics.LegacyProfile, error) {
	if err := sess.Start(ctx); err != nil {
		return analytics.LegacyProfile{}, err
	}

	// Autopilot decisions draw from their own stream so the career's stream
	// only sees engine draws.
	pilot := rng.NewSeeded(cfg.Seed + 1)
	credited := make(map[string]bool)

	for season := 1; season <= cfg.Seasons; season++ {
		for {
			if err := ctx.Err(); err != nil {
				return analytics.LegacyProfile{}, err
			}
			week, err := sess.AdvanceWeek(ctx)
			if errors.Is(err, service.ErrSeasonOver) {
				break
			}
			if err != nil {
				return analytics.LegacyProfile{}, err
			}
			if len(world.Players) == 0 {
				continue
			}
			scout := sess.Scout()
			p := rng.Pick(pilot, world.Players)
			if _, err := sess.SubmitReport(ctx, draftReport(pilot, scout, p, week)); err != nil {
				return analytics.LegacyProfile{}, err
			}
			if tier, ok := discoveryTier(p); ok && !credited[p.ID] {
				credited[p.ID] = true
				if err := sess.RecordDiscovery(ctx, tier); err != nil {
					return analytics.LegacyProfile{}, err
				}
			}
		}

		res, err := sess.EndSeason(ctx)
		if err != nil {
			return analytics.LegacyProfile{}, err
		}
		log.Info(ctx, "season closed",
			logger.Int("season", res.Snapshot.Season),
			logger.String("outcome", string(res.Review.Outcome)),
			logger.Float64("score", res.Review.Score),
			logger.Float64("reputation", res.Snapshot.Reputation),
			logger.Int("offers", len(res.Offers)),
		)

		if season == pathChoiceSeason && sess.Scout().Path == model.PathUndecided {
			if _, err := sess.ChooseCareerPath(ctx, model.PathClub); err != nil {
				return analytics.LegacyProfile{}, err
			}
		}
		if best, ok := bestOffer(res.Offers); ok {
			if err := sess.AcceptOffer(ctx, best.ID); err != nil {
				return analytics.LegacyProfile{}, err
			}
		}
	}

	summary := sess.Summary()
	log.Info(ctx, "career summary",
		logger.Int("seasons", summary.Seasons),
		logger.Int("peakTier", summary.PeakTier),
		logger.Float64("peakReputation", summary.PeakReputation),
		logger.Int("promotions", summary.Promotions),
		logger.Int("firings", summary.Firings),
		logger.Int("reports", summary.TotalReports),
		logger.Int("signings", summary.TotalSignings),
	)
	return sess.Finish(ctx)
}

func scoutFromConfig(cfg *config.Config) model.Scout {
	return model.Scout{
		Name:           cfg.ScoutName,
		Tier:           cfg.ScoutTier,
		Reputation:     cfg.ScoutReputation,
		Path:           model.PathUndecided,
		Specialization: model.Specialization(cfg.ScoutSpecialization),
		HomeCountry:    cfg.ScoutHomeCountry,
		Balance:        cfg.ScoutBalance,
		ClubTrust:      model.NeutralTrust,
		Skills: model.Skills{
			Judgement:    8,
			Networking:   8,
			Persuasion:   8,
			DataLiteracy: 8,
			Potential:    12,
		},
	}
}

// draftReport writes the week's report. Conviction follows the player's
// potential; employed scouts sometimes see their strong calls signed.
func draftReport(src rng.Source, scout model.Scout, p model.Player, week service.WeekResult) model.Report {
	quality := min(100, baseQuality+scout.Tier*qualityPerTier+src.IntRange(0, qualitySpread))

	var conviction model.ConvictionLevel
	switch {
	case p.PotentialAbility >= 170:
		conviction = model.ConvictionTablePound
	case p.PotentialAbility >= 150:
		conviction = model.ConvictionStrongRecommend
	case p.PotentialAbility >= 120:
		conviction = model.ConvictionRecommend
	default:
		conviction = model.ConvictionNote
	}

	response := model.ResponsePending
	if scout.Employed() && quality >= signingMinimum && conviction != model.ConvictionNote && src.Chance(signingChance) {
		response = model.ResponseSigned
	}

	return model.Report{
		ID:           fmt.Sprintf("s%d-w%d-%s", week.Season, week.Week, p.ID),
		PlayerID:     p.ID,
		Season:       week.Season,
		Week:         week.Week,
		Quality:      quality,
		Conviction:   conviction,
		ClubResponse: response,
		DataPoints:   src.IntRange(0, 8),
	}
}

// discoveryTier grades a young player by potential.
func discoveryTier(p model.Player) (model.WonderkidTier, bool) {
	if p.Age >= discoveryMaxAge {
		return "", false
	}
	switch {
	case p.PotentialAbility >= 190:
		return model.WonderkidGenerational, true
	case p.PotentialAbility >= 180:
		return model.WonderkidWonderkid, true
	case p.PotentialAbility >= 170:
		return model.WonderkidTalented, true
	case p.PotentialAbility >= 160:
		return model.WonderkidPromising, true
	}
	return "", false
}

// bestOffer picks the highest-paid offer, earliest on ties.
func bestOffer(offers []model.JobOffer) (model.JobOffer, bool) {
	if len(offers) == 0 {
		return model.JobOffer{}, false
	}
	best := offers[0]
	for _, o := range offers[1:] {
		if o.Salary > best.Salary {
			best = o
		}
	}
	return best, true
}
