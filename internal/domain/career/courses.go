package career

import (
	"slices"

	"github.com/okian/touchline/internal/domain/model"
)

// Skill names a scout attribute a course improves.
type Skill string

const (
	SkillJudgement    Skill = "judgement"
	SkillNetworking   Skill = "networking"
	SkillPersuasion   Skill = "persuasion"
	SkillDataLiteracy Skill = "dataLiteracy"
	SkillPotential    Skill = "potential"
)

const maxSkill = 20

// Course is a qualification a scout can study for.
type Course struct {
	ID           string
	Name         string
	MinTier      int
	Cost         int
	Prerequisite string
	Skill        Skill
	SkillBonus   int
}

// Catalog indexes courses by id.
type Catalog map[string]Course

// DefaultCatalog returns the standard set of scouting qualifications.
func DefaultCatalog() Catalog {
	courses := []Course{
		{ID: "talent-id-1", Name: "Talent Identification Level 1", MinTier: 1, Cost: 500, Skill: SkillJudgement, SkillBonus: 1},
		{ID: "talent-id-2", Name: "Talent Identification Level 2", MinTier: 2, Cost: 1_500, Prerequisite: "talent-id-1", Skill: SkillJudgement, SkillBonus: 2},
		{ID: "talent-id-3", Name: "Advanced Talent Identification", MinTier: 3, Cost: 4_000, Prerequisite: "talent-id-2", Skill: SkillPotential, SkillBonus: 2},
		{ID: "analytics", Name: "Performance Analytics", MinTier: 2, Cost: 2_500, Skill: SkillDataLiteracy, SkillBonus: 3},
		{ID: "negotiation", Name: "Negotiation for Scouts", MinTier: 3, Cost: 3_000, Skill: SkillPersuasion, SkillBonus: 2},
		{ID: "networking", Name: "Building Scouting Networks", MinTier: 2, Cost: 2_000, Skill: SkillNetworking, SkillBonus: 2},
		{ID: "director", Name: "Football Directorship", MinTier: 4, Cost: 10_000, Prerequisite: "negotiation", Skill: SkillPersuasion, SkillBonus: 3},
	}
	c := make(Catalog, len(courses))
	for _, course := range courses {
		c[course.ID] = course
	}
	return c
}

// Enroll signs the scout up for a course and charges its cost.
func Enroll(scout model.Scout, catalog Catalog, courseID string) (model.Scout, Result) {
	course, found := catalog[courseID]
	switch {
	case !found:
		return scout, refused(ReasonUnknownCourse)
	case slices.Contains(scout.EnrolledCourses, courseID):
		return scout, refused(ReasonAlreadyEnrolled)
	case slices.Contains(scout.CompletedCourses, courseID):
		return scout, refused(ReasonAlreadyCompleted)
	case course.Prerequisite != "" && !slices.Contains(scout.CompletedCourses, course.Prerequisite):
		return scout, refused(ReasonMissingPrerequisite)
	case scout.Tier < course.MinTier:
		return scout, refused(ReasonTierTooLow)
	case scout.Balance < course.Cost:
		return scout, refused(ReasonInsufficientFunds)
	}
	out := scout.Clone()
	out.Balance -= course.Cost
	out.EnrolledCourses = append(out.EnrolledCourses, courseID)
	return out, ok()
}

// Complete finishes an enrolled course and applies its skill bonus.
func Complete(scout model.Scout, catalog Catalog, courseID string) (model.Scout, Result) {
	course, found := catalog[courseID]
	if !found {
		return scout, refused(ReasonUnknownCourse)
	}
	idx := slices.Index(scout.EnrolledCourses, courseID)
	if idx < 0 {
		return scout, refused(ReasonNotEnrolled)
	}
	out := scout.Clone()
	out.EnrolledCourses = slices.Delete(out.EnrolledCourses, idx, idx+1)
	out.CompletedCourses = append(out.CompletedCourses, courseID)
	out.Skills = applySkill(out.Skills, course.Skill, course.SkillBonus)
	return out, ok()
}

func applySkill(s model.Skills, skill Skill, bonus int) model.Skills {
	bump := func(v int) int { return min(maxSkill, v+bonus) }
	switch skill {
	case SkillJudgement:
		s.Judgement = bump(s.Judgement)
	case SkillNetworking:
		s.Networking = bump(s.Networking)
	case SkillPersuasion:
		s.Persuasion = bump(s.Persuasion)
	case SkillDataLiteracy:
		s.DataLiteracy = bump(s.DataLiteracy)
	case SkillPotential:
		s.Potential = bump(s.Potential)
	}
	return s
}
