package service

import (
	"context"
	"fmt"

	"github.com/okian/touchline/internal/domain/career"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/narrative"
	"github.com/okian/touchline/internal/domain/relations"
	"github.com/okian/touchline/internal/domain/reputation"
	"github.com/okian/touchline/internal/domain/rng"
	"github.com/okian/touchline/pkg/logger"
)

// neutralPerformance is used when the signed player is not in the world.
const neutralPerformance = 0.5

// SubmitReport files a report. Resubmitting a report ID already applied is
// a no-op and returns false. Missing IDs, scout, season and week are filled
// in from the session.
func (s *Session) SubmitReport(ctx context.Context, r model.Report) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return false, ErrNotStarted
	}
	if r.Quality < 1 || r.Quality > 100 {
		return false, fmt.Errorf("%w: quality %d outside [1, 100]", ErrInvalidReport, r.Quality)
	}
	if !r.Conviction.Valid() {
		return false, fmt.Errorf("%w: unknown conviction %q", ErrInvalidReport, r.Conviction)
	}
	if r.ClubResponse == "" {
		r.ClubResponse = model.ResponsePending
	}
	if !r.ClubResponse.Valid() {
		return false, fmt.Errorf("%w: unknown club response %q", ErrInvalidReport, r.ClubResponse)
	}
	r.SigningFailed = false
	if r.ID == "" {
		r.ID = rng.NewID(s.src)
	}
	r.ScoutID = s.scout.ID
	if r.Season == 0 {
		r.Season = s.season
	}
	if r.Week == 0 {
		r.Week = max(1, s.week)
	}

	if s.seen.Record(ctx, r.ID) {
		s.metrics.ReportDuplicate()
		s.logger.Warn(ctx, "duplicate report ignored", logger.String("report", r.ID))
		return false, nil
	}

	s.reports = append(s.reports, r)
	scout := s.scout.Clone()
	scout.ReportsSubmitted++
	scout.SeasonReports++
	scout = reputation.Update(scout, reputation.ReportSubmitted{Quality: r.Quality})
	if r.Signed() {
		scout.SeasonSignings++
		scout = reputation.Update(scout, reputation.SuccessfulSigning{
			Conviction:  r.Conviction,
			Performance: s.performance(r.PlayerID),
		})
		if r.TablePound() {
			scout = reputation.Update(scout, reputation.TablePoundSuccess{})
		}
	}
	s.scout = scout

	if s.manager != nil {
		var fulfilled bool
		s.managerDirectives, fulfilled = relations.FulfillDirective(s.managerDirectives, r)
		if fulfilled {
			s.logger.Debug(ctx, "manager directive fulfilled", logger.String("report", r.ID))
		}
	}

	s.metrics.ReportSubmitted()
	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Debug(ctx, "report submitted",
		logger.String("report", r.ID),
		logger.String("player", r.PlayerID),
		logger.Int("quality", r.Quality),
		logger.String("conviction", string(r.Conviction)),
		logger.String("response", string(r.ClubResponse)),
		logger.Float64("reputation", s.scout.Reputation),
	)
	return true, nil
}

// performance estimates how well a signed player did, in [0, 1].
func (s *Session) performance(playerID string) float64 {
	p, ok := s.world.PlayerByID(playerID)
	if !ok {
		return neutralPerformance
	}
	return max(0, min(1, float64(p.CurrentAbility)/200))
}

// RecordFailedSigning marks a signed report as a signing that did not work
// out.
func (s *Session) RecordFailedSigning(ctx context.Context, reportID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	var report *model.Report
	for i := range s.reports {
		if s.reports[i].ID == reportID {
			report = &s.reports[i]
			break
		}
	}
	if report == nil || !report.Signed() {
		return fmt.Errorf("%w: no signed report %q this season", ErrReportNotFound, reportID)
	}
	if report.SigningFailed {
		return fmt.Errorf("%w: %q", ErrSigningAlreadyFailed, reportID)
	}
	report.SigningFailed = true

	scout := s.scout.Clone()
	scout.SeasonSignings = max(0, scout.SeasonSignings-1)
	scout.SuccessfulFinds = max(0, scout.SuccessfulFinds-1)
	scout = reputation.Update(scout, reputation.FailedSigning{Conviction: report.Conviction})
	if report.TablePound() {
		scout = reputation.Update(scout, reputation.TablePoundFailure{})
	}
	s.scout = scout
	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Info(ctx, "signing failed",
		logger.String("report", reportID),
		logger.Float64("reputation", s.scout.Reputation),
	)
	return nil
}

// RecordDiscovery credits the scout with unearthing a young talent.
func (s *Session) RecordDiscovery(ctx context.Context, tier model.WonderkidTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	s.scout = reputation.Update(s.scout, reputation.DiscoveryCredit{Tier: tier})
	s.discoveries = append(s.discoveries, tier)

	s.metrics.Discovery(string(tier))
	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Info(ctx, "discovery credited",
		logger.String("tier", string(tier)),
		logger.Float64("reputation", s.scout.Reputation),
	)
	return nil
}

// ApplyNarrativeChoice applies the side effects of a story event choice.
func (s *Session) ApplyNarrativeChoice(ctx context.Context, e narrative.Event, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	scout, err := narrative.ResolveChoice(s.scout, e, index)
	if err != nil {
		s.metrics.Error("narrative", "choice_out_of_range")
		return err
	}
	s.scout = scout
	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Debug(ctx, "narrative choice applied",
		logger.String("event", e.ID),
		logger.Int("choice", index),
		logger.Float64("reputation", s.scout.Reputation),
		logger.Float64("fatigue", s.scout.Fatigue),
	)
	return nil
}

// AcceptOffer takes one of the open job offers. Remaining offers lapse.
func (s *Session) AcceptOffer(ctx context.Context, offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	idx := -1
	for i, o := range s.offers {
		if o.ID == offerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrOfferNotFound, offerID)
	}
	offer := s.offers[idx]
	previous := s.scout.EmployerClubID

	s.scout = career.AcceptJobOffer(s.scout, offer)
	s.offers = nil
	if previous != offer.ClubID {
		s.manager = nil
		s.managerDirectives = nil
	}
	s.setupSeniorRoles(ctx)

	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Info(ctx, "job offer accepted",
		logger.String("club", offer.ClubName),
		logger.String("role", offer.Role),
		logger.Int("tier", offer.Tier),
		logger.Int("salary", offer.Salary),
		logger.Int("contractSeasons", offer.ContractLength),
	)
	return nil
}

// ChooseCareerPath makes the one-time club or independent decision.
func (s *Session) ChooseCareerPath(ctx context.Context, path model.CareerPath) (career.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return career.Result{}, ErrNotStarted
	}
	scout, res := career.ChooseCareerPath(s.scout, path)
	if !res.OK {
		s.logger.Info(ctx, "career path refused", logger.String("reason", string(res.Reason)))
		return res, nil
	}
	s.scout = scout
	if path == model.PathIndependent {
		s.scout.Employees = len(s.npcScouts)
		s.manager = nil
		s.managerDirectives = nil
	}
	s.logger.Info(ctx, "career path chosen", logger.String("path", string(path)))
	return res, nil
}

// EnrollCourse signs the scout up for a course from the default catalog.
func (s *Session) EnrollCourse(ctx context.Context, courseID string) (career.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return career.Result{}, ErrNotStarted
	}
	scout, res := career.Enroll(s.scout, s.catalog, courseID)
	if res.OK {
		s.scout = scout
	}
	s.logger.Info(ctx, "course enrollment",
		logger.String("course", courseID),
		logger.Bool("ok", res.OK),
		logger.String("reason", string(res.Reason)),
	)
	return res, nil
}

// CompleteCourse finishes an enrolled course and applies its skill bonus.
func (s *Session) CompleteCourse(ctx context.Context, courseID string) (career.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return career.Result{}, ErrNotStarted
	}
	scout, res := career.Complete(s.scout, s.catalog, courseID)
	if res.OK {
		s.scout = scout
	}
	s.logger.Info(ctx, "course completion",
		logger.String("course", courseID),
		logger.Bool("ok", res.OK),
		logger.String("reason", string(res.Reason)),
	)
	return res, nil
}

// UnlockSecondarySpecialization grants the scout a second focus.
func (s *Session) UnlockSecondarySpecialization(ctx context.Context, spec model.Specialization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	scout, err := career.UnlockSecondarySpecialization(s.scout, spec)
	if err != nil {
		s.metrics.Error("career", "secondary_specialization")
		return err
	}
	s.scout = scout
	s.logger.Info(ctx, "secondary specialization unlocked", logger.String("specialization", string(spec)))
	return nil
}

// SignRetainer adds a retainer contract for an independent scout.
func (s *Session) SignRetainer(ctx context.Context, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.scout.Path != model.PathIndependent {
		return ErrNotIndependent
	}
	s.scout.RetainerContracts++
	s.logger.Info(ctx, "retainer signed",
		logger.String("club", clubID),
		logger.Int("retainers", s.scout.RetainerContracts),
	)
	return nil
}

// HireNPCScouts grows the department. Independent scouts may hire at any
// tier; club scouts need a department first.
func (s *Session) HireNPCScouts(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.scout.Path != model.PathIndependent && s.scout.Tier < departmentTier {
		return fmt.Errorf("%w: tier %d", ErrNoDepartment, s.scout.Tier)
	}
	if n <= 0 {
		return nil
	}
	s.hire(n)
	s.logger.Info(ctx, "npc scouts hired",
		logger.Int("hired", n),
		logger.Int("roster", len(s.npcScouts)),
	)
	return nil
}
