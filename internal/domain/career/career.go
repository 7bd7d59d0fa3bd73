// Package career is the tier/path state machine of the player scout:
// choosing between club employment and independence, taking jobs, and
// clearing the gates between tiers.
package career

import (
	"github.com/okian/touchline/internal/domain/model"
)

// Reason explains why a user-facing career action was refused.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonPathAlreadyChosen   Reason = "career path already chosen"
	ReasonInvalidPath         Reason = "not a career path that can be chosen"
	ReasonReputationTooLow    Reason = "reputation too low"
	ReasonTooFewReports       Reason = "not enough reports submitted"
	ReasonInsufficientFunds   Reason = "insufficient funds"
	ReasonAlreadyEnrolled     Reason = "already enrolled"
	ReasonAlreadyCompleted    Reason = "course already completed"
	ReasonNotEnrolled         Reason = "not enrolled in course"
	ReasonMissingPrerequisite Reason = "missing prerequisite"
	ReasonTierTooLow          Reason = "tier too low"
	ReasonUnknownCourse       Reason = "unknown course"
)

// Result is the outcome of an action the player may legitimately be refused.
type Result struct {
	OK     bool
	Reason Reason
}

func ok() Result              { return Result{OK: true} }
func refused(r Reason) Result { return Result{Reason: r} }

// Gate for the one-time career path decision.
const (
	PathMinReputation = 15.0
	PathMinReports    = 5
	PathMinBalance    = 1_000
)

// CanChooseCareerPath reports whether the scout may make the path decision.
func CanChooseCareerPath(scout model.Scout) Result {
	switch {
	case scout.Path != model.PathUndecided && scout.Path != "":
		return refused(ReasonPathAlreadyChosen)
	case scout.Reputation < PathMinReputation:
		return refused(ReasonReputationTooLow)
	case scout.ReportsSubmitted < PathMinReports:
		return refused(ReasonTooFewReports)
	case scout.Balance < PathMinBalance:
		return refused(ReasonInsufficientFunds)
	}
	return ok()
}

// ChooseCareerPath commits the scout to the club or independent path. It can
// only happen once.
func ChooseCareerPath(scout model.Scout, path model.CareerPath) (model.Scout, Result) {
	if path != model.PathClub && path != model.PathIndependent {
		return scout, refused(ReasonInvalidPath)
	}
	if res := CanChooseCareerPath(scout); !res.OK {
		return scout, res
	}
	out := scout.Clone()
	out.Path = path
	if path == model.PathIndependent {
		out.EmployerClubID = ""
		out.Salary = 0
	}
	return out, ok()
}

// AcceptJobOffer moves the scout to the offering club at the offer's tier.
// Season counters restart and club trust resets to neutral.
func AcceptJobOffer(scout model.Scout, offer model.JobOffer) model.Scout {
	out := scout.Clone()
	out.Tier = max(model.MinTier, min(model.MaxTier, offer.Tier))
	out.EmployerClubID = offer.ClubID
	out.Salary = offer.Salary
	out.Path = model.PathClub
	out.SeasonReports = 0
	out.SeasonSignings = 0
	out.ClubTrust = model.NeutralTrust
	return out
}

// Dismiss ends the scout's employment after a failed review. Tier is kept;
// the scout must earn a new offer to use it.
func Dismiss(scout model.Scout) model.Scout {
	out := scout.Clone()
	out.EmployerClubID = ""
	out.Salary = 0
	out.ClubTrust = model.NeutralTrust
	return out
}

// StartSeason resets the per-season counters.
func StartSeason(scout model.Scout) model.Scout {
	out := scout.Clone()
	out.SeasonReports = 0
	out.SeasonSignings = 0
	return out
}
