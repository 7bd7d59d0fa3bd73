package main

import (
	"context"
	"testing"

	"github.com/okian/touchline/internal/adapters/http/api"
	service "github.com/okian/touchline/internal/app"
	"github.com/okian/touchline/internal/config"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

var _ api.CareerReader = (*service.Session)(nil)

func testManager() *metrics.Manager {
	return metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
}

func TestRun(t *testing.T) {
	convey.Convey("Given the default configuration and the demo world", t, func() {
		ctx := context.Background()
		cfg := config.New(ctx)
		cfg.Seasons = 3
		cfg.WeeksPerSeason = 10
		world, err := config.LoadWorld(ctx, "")
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When the autopilot plays a career", func() {
			profile, err := run(ctx, newSession(cfg, world, logger.Nop(), testManager()), cfg, world, logger.Nop())

			convey.Convey("Then a legacy profile should come back", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(profile.Playthroughs, convey.ShouldEqual, 1)
				convey.So(profile.TotalSeasons, convey.ShouldEqual, 3)
				convey.So(profile.BestTier, convey.ShouldBeGreaterThanOrEqualTo, 1)
			})

			convey.Convey("And the same seed should replay the same career", func() {
				again, err := run(ctx, newSession(cfg, world, logger.Nop(), testManager()), cfg, world, logger.Nop())
				convey.So(err, convey.ShouldBeNil)
				convey.So(again, convey.ShouldResemble, profile)
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := run(cctx, newSession(cfg, world, logger.Nop(), testManager()), cfg, world, logger.Nop())

			convey.Convey("Then the run should stop with the context error", func() {
				convey.So(err, convey.ShouldEqual, context.Canceled)
			})
		})
	})
}

func TestAutopilotHelpers(t *testing.T) {
	convey.Convey("Given autopilot helpers", t, func() {
		convey.Convey("When picking the best offer", func() {
			offers := []model.JobOffer{
				{ID: "a", Salary: 20_000},
				{ID: "b", Salary: 25_000},
				{ID: "c", Salary: 25_000},
			}

			convey.Convey("Then the highest salary should win, earliest on ties", func() {
				best, ok := bestOffer(offers)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(best.ID, convey.ShouldEqual, "b")
				_, ok = bestOffer(nil)
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When grading discoveries", func() {
			convey.So(func() model.WonderkidTier {
				tier, _ := discoveryTier(model.Player{Age: 17, PotentialAbility: 195})
				return tier
			}(), convey.ShouldEqual, model.WonderkidGenerational)

			_, ok := discoveryTier(model.Player{Age: 25, PotentialAbility: 195})
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = discoveryTier(model.Player{Age: 18, PotentialAbility: 120})
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("When drafting reports", func() {
			src := rng.NewSeeded(7)
			scout := model.Scout{Tier: 1}
			week := service.WeekResult{Season: 2, Week: 5}

			convey.Convey("Then an unemployed scout's reports should stay pending and valid", func() {
				for i := 0; i < 50; i++ {
					r := draftReport(src, scout, model.Player{ID: "p1", PotentialAbility: 175}, week)
					convey.So(r.Quality, convey.ShouldBeBetweenOrEqual, 1, 100)
					convey.So(r.Conviction, convey.ShouldEqual, model.ConvictionTablePound)
					convey.So(r.ClubResponse, convey.ShouldEqual, model.ResponsePending)
					convey.So(r.ID, convey.ShouldEqual, "s2-w5-p1")
				}
			})
		})

		convey.Convey("When building the scout from config", func() {
			cfg := config.New(context.Background())
			scout := scoutFromConfig(cfg)

			convey.So(scout.Name, convey.ShouldEqual, cfg.ScoutName)
			convey.So(scout.Specialization, convey.ShouldEqual, model.SpecYouth)
			convey.So(scout.Path, convey.ShouldEqual, model.PathUndecided)
			convey.So(scout.Balance, convey.ShouldEqual, cfg.ScoutBalance)
		})
	})
}
