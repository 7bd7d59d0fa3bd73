package market_test

import (
	"fmt"
	"testing"

	"github.com/okian/touchline/internal/domain/market"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func clubsAcrossPrestige(p model.ClubPhilosophy) []model.Club {
	var clubs []model.Club
	for rep := 0; rep <= 100; rep += 5 {
		clubs = append(clubs, model.Club{
			ID:         fmt.Sprintf("club-%03d", rep),
			Name:       fmt.Sprintf("Club %d", rep),
			Reputation: float64(rep),
			Philosophy: p,
		})
	}
	return clubs
}

func TestGenerateJobOffers(t *testing.T) {
	season := market.Season{Number: 1, Weeks: 38}

	Convey("Given a tier 1 scout below the tier 2 threshold", t, func() {
		scout := model.Scout{Tier: 1, Reputation: 20, Specialization: model.SpecYouth}

		Convey("Then no offers should be generated", func() {
			offers := market.GenerateJobOffers(rng.NewSeeded(1), scout, clubsAcrossPrestige(model.PhilosophyBalanced), season)
			So(offers, ShouldBeEmpty)
		})
	})

	Convey("Given a scout already at tier 5", t, func() {
		scout := model.Scout{Tier: 5, Reputation: 100, Specialization: model.SpecData}

		Convey("Then there is nowhere to go", func() {
			So(market.GenerateJobOffers(rng.NewSeeded(1), scout, clubsAcrossPrestige(model.PhilosophyBalanced), season), ShouldBeEmpty)
		})
	})

	Convey("Given qualified scouts across every tier and many seeds", t, func() {
		clubs := append(clubsAcrossPrestige(model.PhilosophyBalanced), clubsAcrossPrestige(model.PhilosophyWinNow)...)
		for i := range clubs[len(clubs)/2:] {
			clubs[len(clubs)/2+i].ID += "-w"
		}

		Convey("Then every offer should come from the target tier's window with sane terms", func() {
			for tier := 1; tier <= 4; tier++ {
				for seed := int64(0); seed < 40; seed++ {
					scout := model.Scout{Tier: tier, Reputation: market.MinReputation(tier + 1), Specialization: model.SpecFirstTeam}
					offers := market.GenerateJobOffers(rng.NewSeeded(seed), scout, clubs, season)
					So(offers, ShouldNotBeEmpty)

					lo, hi := market.ReputationWindow(tier + 1)
					sLo, sHi, premium := market.SalaryBand(tier + 1)
					seen := map[string]bool{}
					for _, o := range offers {
						club, ok := model.World{Clubs: clubs}.ClubByID(o.ClubID)
						So(ok, ShouldBeTrue)
						So(club.Reputation, ShouldBeBetweenOrEqual, lo, hi)
						So(seen[o.ClubID], ShouldBeFalse)
						seen[o.ClubID] = true
						So(o.Tier, ShouldEqual, tier+1)
						So(o.Salary, ShouldBeBetweenOrEqual, sLo, sHi+premium)
						So(o.ContractLength, ShouldBeBetweenOrEqual, 1, 3)
						So(o.ExpiresWeek, ShouldBeBetweenOrEqual, 35, 38)
					}
					if tier+1 >= 4 {
						So(len(offers), ShouldEqual, 1)
					}
					if tier+1 == 3 {
						So(len(offers), ShouldBeBetweenOrEqual, 1, 2)
					}
				}
			}
		})
	})

	Convey("Given a youth scout and clubs that only want to win now", t, func() {
		clubs := clubsAcrossPrestige(model.PhilosophyWinNow)

		Convey("When the target tier is 2", func() {
			scout := model.Scout{Tier: 1, Reputation: 40, Specialization: model.SpecYouth}

			Convey("Then the affinity filter should leave no offers", func() {
				So(market.GenerateJobOffers(rng.NewSeeded(5), scout, clubs, season), ShouldBeEmpty)
			})
		})

		Convey("When the youth scout has unlocked first-team as a secondary focus", func() {
			scout := model.Scout{Tier: 1, Reputation: 40, Specialization: model.SpecYouth, SecondarySpecialization: model.SpecFirstTeam}

			Convey("Then win-now clubs should count as a match", func() {
				candidates := market.Candidates(scout, clubs, 2)
				So(candidates, ShouldNotBeEmpty)
				So(candidates, ShouldHaveLength, len(market.Candidates(model.Scout{Specialization: model.SpecFirstTeam}, clubs, 2)))
			})
		})

		Convey("When the target tier is 3", func() {
			scout := model.Scout{Tier: 2, Reputation: 55, Specialization: model.SpecYouth}

			Convey("Then the affinity filter should be dropped", func() {
				So(market.GenerateJobOffers(rng.NewSeeded(5), scout, clubs, season), ShouldNotBeEmpty)
			})
		})
	})

	Convey("Given the low tiers", t, func() {
		Convey("Then the offer count should be capped by reputation", func() {
			for seed := int64(0); seed < 50; seed++ {
				scout := model.Scout{Tier: 1, Reputation: 29, Specialization: model.SpecYouth}
				offers := market.GenerateJobOffers(rng.NewSeeded(seed), scout, clubsAcrossPrestige(model.PhilosophyBalanced), season)
				So(len(offers), ShouldEqual, 1)
			}
		})
	})

	Convey("Given the same seed and inputs", t, func() {
		scout := model.Scout{Tier: 2, Reputation: 60, Specialization: model.SpecRegional}
		clubs := clubsAcrossPrestige(model.PhilosophyBalanced)

		Convey("Then the offers should replay identically", func() {
			a := market.GenerateJobOffers(rng.NewSeeded(9), scout, clubs, season)
			b := market.GenerateJobOffers(rng.NewSeeded(9), scout, clubs, season)
			So(a, ShouldResemble, b)
		})
	})
}

func TestReputationWindow(t *testing.T) {
	Convey("Given the tier windows", t, func() {
		Convey("Then lower tiers should be 20 wide and upper tiers 30 wide", func() {
			for tier := 1; tier <= 5; tier++ {
				lo, hi := market.ReputationWindow(tier)
				if tier <= 3 {
					So(hi-lo, ShouldEqual, 20)
				} else {
					So(hi-lo, ShouldEqual, 30)
				}
			}
		})
	})
}
