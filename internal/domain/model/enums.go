// Package model contains domain models passed between layers.
//
// Every closed taxonomy is a typed string with a Valid method so callers can
// reject unknown values at the edges and switch exhaustively inside.
package model

import "slices"

// Specialization is the scouting focus of a scout.
type Specialization string

const (
	SpecYouth     Specialization = "youth"
	SpecFirstTeam Specialization = "firstTeam"
	SpecRegional  Specialization = "regional"
	SpecData      Specialization = "data"
)

// Specializations lists every specialization in a stable order.
var Specializations = []Specialization{SpecYouth, SpecFirstTeam, SpecRegional, SpecData}

// Valid reports whether s is a known specialization.
func (s Specialization) Valid() bool {
	switch s {
	case SpecYouth, SpecFirstTeam, SpecRegional, SpecData:
		return true
	}
	return false
}

// CareerPath is the employment fork a scout takes after tier 1.
type CareerPath string

const (
	PathUndecided   CareerPath = "undecided"
	PathClub        CareerPath = "club"
	PathIndependent CareerPath = "independent"
)

// Valid reports whether p is a known career path.
func (p CareerPath) Valid() bool {
	switch p {
	case PathUndecided, PathClub, PathIndependent:
		return true
	}
	return false
}

// ConvictionLevel is the confidence grade attached to a report.
type ConvictionLevel string

const (
	ConvictionNote            ConvictionLevel = "note"
	ConvictionRecommend       ConvictionLevel = "recommend"
	ConvictionStrongRecommend ConvictionLevel = "strongRecommend"
	ConvictionTablePound      ConvictionLevel = "tablePound"
)

// Valid reports whether c is a known conviction level.
func (c ConvictionLevel) Valid() bool {
	switch c {
	case ConvictionNote, ConvictionRecommend, ConvictionStrongRecommend, ConvictionTablePound:
		return true
	}
	return false
}

// ClubResponse is how the employing club acted on a report.
type ClubResponse string

const (
	ResponsePending     ClubResponse = "pending"
	ResponseIgnored     ClubResponse = "ignored"
	ResponseShortlisted ClubResponse = "shortlisted"
	ResponseTrialled    ClubResponse = "trialled"
	ResponseSigned      ClubResponse = "signed"
)

// Valid reports whether r is a known club response.
func (r ClubResponse) Valid() bool {
	switch r {
	case ResponsePending, ResponseIgnored, ResponseShortlisted, ResponseTrialled, ResponseSigned:
		return true
	}
	return false
}

// Actioned reports whether the club did something with the report.
func (r ClubResponse) Actioned() bool {
	switch r {
	case ResponseShortlisted, ResponseTrialled, ResponseSigned:
		return true
	case ResponsePending, ResponseIgnored:
		return false
	}
	return false
}

// ReviewOutcome is the four-way verdict of a season review.
type ReviewOutcome string

const (
	OutcomePromoted ReviewOutcome = "promoted"
	OutcomeRetained ReviewOutcome = "retained"
	OutcomeWarning  ReviewOutcome = "warning"
	OutcomeFired    ReviewOutcome = "fired"
)

// ReviewOutcomes lists outcomes from best to worst.
var ReviewOutcomes = []ReviewOutcome{OutcomePromoted, OutcomeRetained, OutcomeWarning, OutcomeFired}

// Valid reports whether o is a known review outcome.
func (o ReviewOutcome) Valid() bool {
	switch o {
	case OutcomePromoted, OutcomeRetained, OutcomeWarning, OutcomeFired:
		return true
	}
	return false
}

// ClubPhilosophy describes what kind of scouting a club values.
type ClubPhilosophy string

const (
	PhilosophyYouthDevelopment ClubPhilosophy = "youthDevelopment"
	PhilosophyWinNow           ClubPhilosophy = "winNow"
	PhilosophyLocalFocus       ClubPhilosophy = "localFocus"
	PhilosophyDataDriven       ClubPhilosophy = "dataDriven"
	PhilosophyBalanced         ClubPhilosophy = "balanced"
)

// Valid reports whether p is a known club philosophy.
func (p ClubPhilosophy) Valid() bool {
	switch p {
	case PhilosophyYouthDevelopment, PhilosophyWinNow, PhilosophyLocalFocus, PhilosophyDataDriven, PhilosophyBalanced:
		return true
	}
	return false
}

// ScoutingStyle is the fixed preference of a manager.
type ScoutingStyle string

const (
	StyleDataHeavy      ScoutingStyle = "dataHeavy"
	StyleBoldConviction ScoutingStyle = "boldConviction"
	StyleOutcomeFocused ScoutingStyle = "outcomeFocused"
)

// ScoutingStyles lists every manager style in a stable order.
var ScoutingStyles = []ScoutingStyle{StyleDataHeavy, StyleBoldConviction, StyleOutcomeFocused}

// Valid reports whether s is a known manager style.
func (s ScoutingStyle) Valid() bool {
	switch s {
	case StyleDataHeavy, StyleBoldConviction, StyleOutcomeFocused:
		return true
	}
	return false
}

// MeetingTone is the resolved mood of a manager meeting.
type MeetingTone string

const (
	TonePositive MeetingTone = "positive"
	ToneNeutral  MeetingTone = "neutral"
	ToneNegative MeetingTone = "negative"
)

// Valid reports whether t is a known meeting tone.
func (t MeetingTone) Valid() bool {
	switch t {
	case TonePositive, ToneNeutral, ToneNegative:
		return true
	}
	return false
}

// Recommendation is the action an NPC scout suggests for a player.
type Recommendation string

const (
	RecommendPursue    Recommendation = "pursue"
	RecommendShortlist Recommendation = "shortlist"
	RecommendMonitor   Recommendation = "monitor"
)

// Valid reports whether r is a known recommendation.
func (r Recommendation) Valid() bool {
	switch r {
	case RecommendPursue, RecommendShortlist, RecommendMonitor:
		return true
	}
	return false
}

// NPCReportTier grades an NPC report's quality.
type NPCReportTier string

const (
	NPCReportPoor      NPCReportTier = "poor"
	NPCReportDecent    NPCReportTier = "decent"
	NPCReportGood      NPCReportTier = "good"
	NPCReportExcellent NPCReportTier = "excellent"
)

// Valid reports whether t is a known NPC report tier.
func (t NPCReportTier) Valid() bool {
	switch t {
	case NPCReportPoor, NPCReportDecent, NPCReportGood, NPCReportExcellent:
		return true
	}
	return false
}

// WonderkidTier grades a discovered young player.
type WonderkidTier string

const (
	WonderkidNotable      WonderkidTier = "notable"
	WonderkidPromising    WonderkidTier = "promising"
	WonderkidTalented     WonderkidTier = "talented"
	WonderkidWonderkid    WonderkidTier = "wonderkid"
	WonderkidGenerational WonderkidTier = "generational"
)

// Valid reports whether w is a known wonderkid tier.
func (w WonderkidTier) Valid() bool {
	switch w {
	case WonderkidNotable, WonderkidPromising, WonderkidTalented, WonderkidWonderkid, WonderkidGenerational:
		return true
	}
	return false
}

// BoardDirectiveType is the kind of season mandate a board issues.
type BoardDirectiveType string

const (
	BoardFindWonderkid        BoardDirectiveType = "findWonderkid"
	BoardBuildPipeline        BoardDirectiveType = "buildPipeline"
	BoardSignFirstTeamTarget  BoardDirectiveType = "signFirstTeamTarget"
	BoardExpandNetwork        BoardDirectiveType = "expandNetwork"
	BoardImproveReportQuality BoardDirectiveType = "improveReportQuality"
	BoardModernizeAnalytics   BoardDirectiveType = "modernizeAnalytics"
)

// BoardDirectiveTypes lists every board directive type in a stable order.
var BoardDirectiveTypes = []BoardDirectiveType{
	BoardFindWonderkid,
	BoardBuildPipeline,
	BoardSignFirstTeamTarget,
	BoardExpandNetwork,
	BoardImproveReportQuality,
	BoardModernizeAnalytics,
}

// Valid reports whether t is a known board directive type.
func (t BoardDirectiveType) Valid() bool {
	return slices.Contains(BoardDirectiveTypes, t)
}

// ManagerDirectiveType is the kind of short-term request a manager makes.
type ManagerDirectiveType string

const (
	ManagerFindPositionTarget ManagerDirectiveType = "findPositionTarget"
	ManagerScoutOpponent      ManagerDirectiveType = "scoutOpponent"
	ManagerAssessLoanee       ManagerDirectiveType = "assessLoanee"
	ManagerTrackRivalTarget   ManagerDirectiveType = "trackRivalTarget"
	ManagerDeliverDataPack    ManagerDirectiveType = "deliverDataPack"
)

// Valid reports whether t is a known manager directive type.
func (t ManagerDirectiveType) Valid() bool {
	switch t {
	case ManagerFindPositionTarget, ManagerScoutOpponent, ManagerAssessLoanee, ManagerTrackRivalTarget, ManagerDeliverDataPack:
		return true
	}
	return false
}
