package analytics_test

import (
	"errors"
	"testing"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAddSeasonSnapshot(t *testing.T) {
	Convey("Given an empty history", t, func() {
		var h analytics.History

		Convey("When snapshots arrive out of order", func() {
			h = analytics.AddSeasonSnapshot(h, analytics.SeasonSnapshot{Season: 2, Score: 40})
			h = analytics.AddSeasonSnapshot(h, analytics.SeasonSnapshot{Season: 1, Score: 60})
			h = analytics.AddSeasonSnapshot(h, analytics.SeasonSnapshot{Season: 3, Score: 70})

			Convey("Then they should be kept in season order", func() {
				So(h, ShouldHaveLength, 3)
				So(h[0].Season, ShouldEqual, 1)
				So(h[1].Season, ShouldEqual, 2)
				So(h[2].Season, ShouldEqual, 3)
			})

			Convey("And adding the same season twice should replace it", func() {
				again := analytics.AddSeasonSnapshot(h, analytics.SeasonSnapshot{Season: 2, Score: 90})
				So(again, ShouldHaveLength, 3)
				So(again[1].Score, ShouldEqual, 90)
				So(h[1].Score, ShouldEqual, 40)
				So(analytics.AddSeasonSnapshot(again, again[1]), ShouldResemble, again)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a four season career", t, func() {
		h := analytics.History{
			{Season: 1, Tier: 1, Reputation: 20, Score: 60, Outcome: model.OutcomeRetained, Reports: 10, Signings: 1},
			{Season: 2, Tier: 1, Reputation: 35, Score: 88, Outcome: model.OutcomePromoted, Reports: 12, Signings: 2},
			{Season: 3, Tier: 2, Reputation: 30, Score: 20, Outcome: model.OutcomeFired, Reports: 4},
			{Season: 4, Tier: 2, Reputation: 33, Score: 50, Outcome: model.OutcomeWarning, Reports: 8, Signings: 1},
		}

		Convey("When summarized", func() {
			s := analytics.Summarize(h)

			Convey("Then peaks and counts should be reported", func() {
				So(s.Seasons, ShouldEqual, 4)
				So(s.PeakReputation, ShouldEqual, 35)
				So(s.PeakTier, ShouldEqual, 2)
				So(s.BestScore, ShouldEqual, 88)
				So(s.Promotions, ShouldEqual, 1)
				So(s.Firings, ShouldEqual, 1)
				So(s.TotalReports, ShouldEqual, 34)
				So(s.TotalSignings, ShouldEqual, 4)
			})
		})
	})
}

func TestLegacy(t *testing.T) {
	Convey("Given a fresh legacy profile", t, func() {
		var p analytics.LegacyProfile

		So(analytics.StartingReputationBonus(p), ShouldEqual, 0)

		Convey("When a career is carried over", func() {
			p = analytics.CarryOver(p, analytics.CareerSummary{Seasons: 5, PeakTier: 3, Promotions: 2, TotalSignings: 5})

			Convey("Then the profile should accumulate points", func() {
				So(p.Version, ShouldEqual, analytics.LegacyVersion)
				So(p.Playthroughs, ShouldEqual, 1)
				So(p.BestTier, ShouldEqual, 3)
				So(p.TotalSeasons, ShouldEqual, 5)
				So(p.LegacyPoints, ShouldEqual, 30+10+5+10)
				So(analytics.StartingReputationBonus(p), ShouldAlmostEqual, 1.1)
			})
		})

		Convey("When many careers are carried over", func() {
			for i := 0; i < 50; i++ {
				p = analytics.CarryOver(p, analytics.CareerSummary{Seasons: 20, PeakTier: 5, Promotions: 4, TotalSignings: 30})
			}

			Convey("Then the starting bonus should be capped at 10", func() {
				So(analytics.StartingReputationBonus(p), ShouldEqual, 10)
			})
		})
	})

	Convey("Given profiles of different versions", t, func() {
		Convey("When a version 0 profile is migrated", func() {
			p, err := analytics.Migrate(analytics.LegacyProfile{Playthroughs: 2})

			So(err, ShouldBeNil)
			So(p.Version, ShouldEqual, 1)
			So(p.BestTier, ShouldEqual, 1)
		})

		Convey("When a current profile is migrated", func() {
			in := analytics.LegacyProfile{Version: 1, Playthroughs: 3, BestTier: 4, LegacyPoints: 120}
			p, err := analytics.Migrate(in)

			So(err, ShouldBeNil)
			So(p, ShouldResemble, in)
		})

		Convey("When a newer profile is migrated", func() {
			_, err := analytics.Migrate(analytics.LegacyProfile{Version: 2})

			So(errors.Is(err, analytics.ErrUnsupportedVersion), ShouldBeTrue)
		})
	})
}
