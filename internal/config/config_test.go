package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/touchline/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Seed, convey.ShouldEqual, 1)
			convey.So(cfg.WeeksPerSeason, convey.ShouldEqual, 38)
			convey.So(cfg.ScoutTier, convey.ShouldEqual, 1)
			convey.So(cfg.ScoutSpecialization, convey.ShouldEqual, "youth")
			convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a valid config", t, func() {
		ctx := context.Background()
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"unknown log level", func(c *config.Config) { c.LogLevel = "chatty" }},
			{"zero seasons", func(c *config.Config) { c.Seasons = 0 }},
			{"short season", func(c *config.Config) { c.WeeksPerSeason = 2 }},
			{"negative roster", func(c *config.Config) { c.NPCRosterSize = -1 }},
			{"zero meeting interval", func(c *config.Config) { c.MeetingIntervalWeeks = 0 }},
			{"rest threshold > 100", func(c *config.Config) { c.NPCRestThreshold = 101 }},
			{"tier 6", func(c *config.Config) { c.ScoutTier = 6 }},
			{"reputation < 0", func(c *config.Config) { c.ScoutReputation = -1 }},
			{"bad specialization", func(c *config.Config) { c.ScoutSpecialization = "goalkeepers" }},
			{"empty name", func(c *config.Config) { c.ScoutName = "" }},
			{"negative balance", func(c *config.Config) { c.ScoutBalance = -5 }},
		}

		for _, tc := range cases {
			convey.Convey("When it has "+tc.name, func() {
				cfg := config.New(ctx)
				tc.mutate(cfg)

				convey.Convey("Then validation should fail with ErrInvalidConfig", func() {
					err := cfg.Validate()
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}
	})
}
