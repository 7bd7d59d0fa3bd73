package career_test

import (
	"errors"
	"testing"

	"github.com/okian/touchline/internal/domain/career"
	"github.com/okian/touchline/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func eligibleScout() model.Scout {
	return model.Scout{
		ID:               "s1",
		Tier:             1,
		Path:             model.PathUndecided,
		Reputation:       20,
		ReportsSubmitted: 6,
		Balance:          2_000,
		EmployerClubID:   "club-a",
		Salary:           9_000,
		Specialization:   model.SpecYouth,
	}
}

func TestChooseCareerPath(t *testing.T) {
	Convey("Given an eligible undecided scout", t, func() {
		scout := eligibleScout()

		Convey("When going independent", func() {
			out, res := career.ChooseCareerPath(scout, model.PathIndependent)

			Convey("Then the path should be set and the employer cleared", func() {
				So(res.OK, ShouldBeTrue)
				So(out.Path, ShouldEqual, model.PathIndependent)
				So(out.EmployerClubID, ShouldBeEmpty)
				So(scout.Path, ShouldEqual, model.PathUndecided)
			})

			Convey("And choosing again should be refused", func() {
				_, again := career.ChooseCareerPath(out, model.PathClub)
				So(again.OK, ShouldBeFalse)
				So(again.Reason, ShouldEqual, career.ReasonPathAlreadyChosen)
			})
		})

		Convey("When choosing the undecided path", func() {
			_, res := career.ChooseCareerPath(scout, model.PathUndecided)

			Convey("Then it should be refused", func() {
				So(res.Reason, ShouldEqual, career.ReasonInvalidPath)
			})
		})
	})

	Convey("Given scouts missing one gate each", t, func() {
		lowRep := eligibleScout()
		lowRep.Reputation = 10
		fewReports := eligibleScout()
		fewReports.ReportsSubmitted = 2
		broke := eligibleScout()
		broke.Balance = 100

		Convey("Then each should be refused with the matching reason", func() {
			So(career.CanChooseCareerPath(lowRep).Reason, ShouldEqual, career.ReasonReputationTooLow)
			So(career.CanChooseCareerPath(fewReports).Reason, ShouldEqual, career.ReasonTooFewReports)
			So(career.CanChooseCareerPath(broke).Reason, ShouldEqual, career.ReasonInsufficientFunds)
		})
	})
}

func TestAcceptJobOffer(t *testing.T) {
	Convey("Given a scout with season activity and low trust", t, func() {
		scout := eligibleScout()
		scout.SeasonReports = 12
		scout.SeasonSignings = 2
		scout.ClubTrust = 20

		Convey("When accepting a tier 2 offer", func() {
			out := career.AcceptJobOffer(scout, model.JobOffer{ClubID: "club-b", Tier: 2, Salary: 20_000})

			Convey("Then tier, club and salary should follow the offer and counters reset", func() {
				So(out.Tier, ShouldEqual, 2)
				So(out.EmployerClubID, ShouldEqual, "club-b")
				So(out.Salary, ShouldEqual, 20_000)
				So(out.Path, ShouldEqual, model.PathClub)
				So(out.SeasonReports, ShouldEqual, 0)
				So(out.SeasonSignings, ShouldEqual, 0)
				So(out.ClubTrust, ShouldEqual, model.NeutralTrust)
			})
		})
	})
}

func TestAdvanceIndependent(t *testing.T) {
	Convey("Given an independent tier 2 scout", t, func() {
		scout := model.Scout{
			Tier:              2,
			Path:              model.PathIndependent,
			Reputation:        50,
			Balance:           25_000,
			ReportsSubmitted:  45,
			RetainerContracts: 1,
			CompletedCourses:  []string{"talent-id-1"},
		}

		Convey("When every threshold is met", func() {
			out, advanced := career.AdvanceIndependent(scout)

			Convey("Then the scout should reach tier 3", func() {
				So(advanced, ShouldBeTrue)
				So(out.Tier, ShouldEqual, 3)
				So(career.UnmetIndependent(scout), ShouldBeEmpty)
			})
		})

		Convey("When a single threshold is missed", func() {
			scout.RetainerContracts = 0
			out, advanced := career.AdvanceIndependent(scout)

			Convey("Then the scout should stay put", func() {
				So(advanced, ShouldBeFalse)
				So(out.Tier, ShouldEqual, 2)
				So(career.UnmetIndependent(scout), ShouldResemble, []string{"retainers 0/1"})
			})
		})

		Convey("When the scout is on the club path", func() {
			scout.Path = model.PathClub
			_, advanced := career.AdvanceIndependent(scout)

			Convey("Then independent advancement should not apply", func() {
				So(advanced, ShouldBeFalse)
			})
		})
	})
}

func TestSecondarySpecialization(t *testing.T) {
	Convey("Given a tier 3 youth scout with reputation 65", t, func() {
		scout := model.Scout{Tier: 3, Reputation: 65, Specialization: model.SpecYouth}

		Convey("When unlocking data as a secondary focus", func() {
			out, err := career.UnlockSecondarySpecialization(scout, model.SpecData)

			Convey("Then it should be granted", func() {
				So(err, ShouldBeNil)
				So(out.SecondarySpecialization, ShouldEqual, model.SpecData)
				So(out.HasSpecialization(model.SpecData), ShouldBeTrue)
				So(out.HasSpecialization(model.SpecRegional), ShouldBeFalse)
			})

			Convey("And a second unlock should fail", func() {
				_, err := career.UnlockSecondarySpecialization(out, model.SpecRegional)
				So(errors.Is(err, career.ErrSecondaryIneligible), ShouldBeTrue)
			})
		})

		Convey("When picking the primary specialization again", func() {
			_, err := career.UnlockSecondarySpecialization(scout, model.SpecYouth)

			Convey("Then it should fail with ErrSameSpecialization", func() {
				So(errors.Is(err, career.ErrSameSpecialization), ShouldBeTrue)
			})
		})

		Convey("When the scout is still tier 2", func() {
			scout.Tier = 2
			_, err := career.UnlockSecondarySpecialization(scout, model.SpecData)

			Convey("Then it should fail with ErrSecondaryIneligible", func() {
				So(errors.Is(err, career.ErrSecondaryIneligible), ShouldBeTrue)
			})
		})
	})
}

func TestCourses(t *testing.T) {
	catalog := career.DefaultCatalog()

	Convey("Given a tier 2 scout with some money", t, func() {
		scout := model.Scout{Tier: 2, Balance: 3_000, Skills: model.Skills{Judgement: 10}}

		Convey("When enrolling in an entry course", func() {
			out, res := career.Enroll(scout, catalog, "talent-id-1")

			Convey("Then it should succeed and charge the fee", func() {
				So(res.OK, ShouldBeTrue)
				So(out.Balance, ShouldEqual, 2_500)
				So(out.EnrolledCourses, ShouldResemble, []string{"talent-id-1"})
			})

			Convey("And enrolling twice should be refused", func() {
				_, again := career.Enroll(out, catalog, "talent-id-1")
				So(again.Reason, ShouldEqual, career.ReasonAlreadyEnrolled)
			})

			Convey("And completing it should apply the skill bonus", func() {
				done, res := career.Complete(out, catalog, "talent-id-1")
				So(res.OK, ShouldBeTrue)
				So(done.EnrolledCourses, ShouldBeEmpty)
				So(done.CompletedCourses, ShouldResemble, []string{"talent-id-1"})
				So(done.Skills.Judgement, ShouldEqual, 11)
				So(out.EnrolledCourses, ShouldResemble, []string{"talent-id-1"})
			})
		})

		Convey("When enrolling without the prerequisite", func() {
			_, res := career.Enroll(scout, catalog, "talent-id-2")

			Convey("Then it should be refused", func() {
				So(res.Reason, ShouldEqual, career.ReasonMissingPrerequisite)
			})
		})

		Convey("When the tier is too low", func() {
			_, res := career.Enroll(scout, catalog, "negotiation")

			Convey("Then it should be refused", func() {
				So(res.Reason, ShouldEqual, career.ReasonTierTooLow)
			})
		})

		Convey("When the course costs more than the balance", func() {
			scout.Balance = 100
			_, res := career.Enroll(scout, catalog, "analytics")

			Convey("Then it should be refused", func() {
				So(res.Reason, ShouldEqual, career.ReasonInsufficientFunds)
			})
		})

		Convey("When the course does not exist", func() {
			_, res := career.Enroll(scout, catalog, "nope")

			Convey("Then it should be refused", func() {
				So(res.Reason, ShouldEqual, career.ReasonUnknownCourse)
			})
		})
	})
}
