package reputation_test

import (
	"testing"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/reputation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUpdate(t *testing.T) {
	Convey("Given a scout with reputation 50", t, func() {
		scout := model.Scout{ID: "s1", Reputation: 50}

		Convey("When a report is submitted", func() {
			low := reputation.Update(scout, reputation.ReportSubmitted{Quality: 0})
			high := reputation.Update(scout, reputation.ReportSubmitted{Quality: 100})

			Convey("Then the gain should scale from 0.5 to 2", func() {
				So(low.Reputation, ShouldAlmostEqual, 50.5)
				So(high.Reputation, ShouldAlmostEqual, 52)
			})

			Convey("And the original scout should be untouched", func() {
				So(scout.Reputation, ShouldEqual, 50)
			})
		})

		Convey("When a signing succeeds", func() {
			poor := reputation.Update(scout, reputation.SuccessfulSigning{Conviction: model.ConvictionTablePound, Performance: 0})
			great := reputation.Update(scout, reputation.SuccessfulSigning{Conviction: model.ConvictionTablePound, Performance: 1})

			Convey("Then the base should be scaled by ±25% of performance", func() {
				So(poor.Reputation, ShouldAlmostEqual, 57.5)
				So(great.Reputation, ShouldAlmostEqual, 62.5)
			})

			Convey("And the find should be counted", func() {
				So(great.SuccessfulFinds, ShouldEqual, 1)
			})
		})

		Convey("When a discovery is credited", func() {
			Convey("Then the delta should follow the wonderkid tier", func() {
				So(reputation.Delta(reputation.DiscoveryCredit{Tier: model.WonderkidNotable}), ShouldEqual, 2)
				So(reputation.Delta(reputation.DiscoveryCredit{Tier: model.WonderkidGenerational}), ShouldEqual, 30)
			})
		})

		Convey("When a table pound resolves", func() {
			Convey("Then success and failure should be +5 and -10", func() {
				So(reputation.Update(scout, reputation.TablePoundSuccess{}).Reputation, ShouldEqual, 55)
				So(reputation.Update(scout, reputation.TablePoundFailure{}).Reputation, ShouldEqual, 40)
			})
		})

		Convey("When the season ends", func() {
			Convey("Then the delta should follow the review outcome", func() {
				So(reputation.Delta(reputation.SeasonEnd{Outcome: model.OutcomePromoted}), ShouldEqual, 5)
				So(reputation.Delta(reputation.SeasonEnd{Outcome: model.OutcomeRetained}), ShouldEqual, 2)
				So(reputation.Delta(reputation.SeasonEnd{Outcome: model.OutcomeWarning}), ShouldEqual, 0)
				So(reputation.Delta(reputation.SeasonEnd{Outcome: model.OutcomeFired}), ShouldEqual, -5)
			})
		})
	})

	Convey("Given any starting reputation and any event", t, func() {
		events := []reputation.Event{
			reputation.ReportSubmitted{Quality: 100},
			reputation.SuccessfulSigning{Conviction: model.ConvictionTablePound, Performance: 5},
			reputation.FailedSigning{Conviction: model.ConvictionTablePound},
			reputation.DiscoveryCredit{Tier: model.WonderkidGenerational},
			reputation.TablePoundSuccess{},
			reputation.TablePoundFailure{},
			reputation.SeasonEnd{Outcome: model.OutcomeFired},
			reputation.BoardVerdict{Delta: 30},
			reputation.BoardVerdict{Delta: -30},
		}

		Convey("Then the result should stay within [0, 100]", func() {
			for rep := 0.0; rep <= 100; rep += 2.5 {
				for _, e := range events {
					got := reputation.Update(model.Scout{Reputation: rep}, e).Reputation
					So(got, ShouldBeBetweenOrEqual, 0, 100)
				}
			}
		})
	})
}
