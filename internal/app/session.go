// Package service runs a scouting career: it owns the scout, the random
// stream and the per-season state, and threads them through the domain
// engines in a fixed order each week and season.
package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/career"
	"github.com/okian/touchline/internal/domain/dedupe"
	"github.com/okian/touchline/internal/domain/market"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/npc"
	"github.com/okian/touchline/internal/domain/relations"
	"github.com/okian/touchline/internal/domain/rng"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"
)

// Tier gates for the senior responsibilities.
const (
	departmentTier = 4
	boardTier      = 5
)

// Session is one career playthrough.
type Session struct {
	mu sync.Mutex

	// Configuration
	seed            int64
	world           model.World
	weeksPerSeason  int
	rosterSize      int
	meetingInterval int
	restThreshold   float64
	dedupeCapacity  int
	legacy          analytics.LegacyProfile
	catalog         career.Catalog

	// Collaborators
	src     rng.Source
	seen    dedupe.Tracker
	logger  logger.Logger
	metrics *metrics.Manager

	// Career state
	scout       model.Scout
	season      int
	week        int
	reports     []model.Report
	discoveries []model.WonderkidTier
	offers      []model.JobOffer
	history     analytics.History

	// Department state, tier 4+
	npcScouts         []model.NPCScout
	territories       []model.Territory
	npcReports        []model.NPCScoutReport
	manager           *model.ManagerRelationship
	managerDirectives []model.ManagerDirective
	boardDirectives   []model.BoardDirective

	started bool
}

// New constructs a Session with default configuration.
func New(opts ...Option) *Session {
	s := &Session{
		seed:            1,
		weeksPerSeason:  market.DefaultWeeksPerSeason,
		rosterSize:      4,
		meetingInterval: 4,
		restThreshold:   80,
		dedupeCapacity:  50_000,
		catalog:         career.DefaultCatalog(),
		scout: model.Scout{
			Name:           "Scout",
			Tier:           model.MinTier,
			Path:           model.PathUndecided,
			Specialization: model.SpecYouth,
			ClubTrust:      model.NeutralTrust,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the random stream and prepares the first season. Calling it
// again is a no-op.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}

	legacy, err := analytics.Migrate(s.legacy)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.legacy = legacy

	s.src = rng.NewSeeded(s.seed)
	s.seen = dedupe.NewMemoryTracker(dedupe.WithCapacity(s.dedupeCapacity))
	s.season = 1
	s.week = 0

	if s.scout.ID == "" {
		s.scout.ID = rng.NewID(s.src)
	}
	if s.scout.Path == "" {
		s.scout.Path = model.PathUndecided
	}
	if bonus := analytics.StartingReputationBonus(s.legacy); bonus > 0 {
		s.scout.Reputation = min(100, s.scout.Reputation+bonus)
	}
	s.territories = npc.GenerateTerritories(s.world.Leagues)

	s.setupSeniorRoles(ctx)
	s.started = true

	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	s.logger.Info(ctx, "career started",
		logger.String("scout", s.scout.Name),
		logger.Int("tier", s.scout.Tier),
		logger.Float64("reputation", s.scout.Reputation),
		logger.String("specialization", string(s.scout.Specialization)),
		logger.Int("territories", len(s.territories)),
		logger.Any("seed", s.seed),
	)
	return nil
}

// Finish ends the playthrough and returns the legacy profile with this
// career folded in. The session cannot be used afterwards.
func (s *Session) Finish(ctx context.Context) (analytics.LegacyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return s.legacy, ErrNotStarted
	}
	summary := analytics.Summarize(s.history)
	profile := analytics.CarryOver(s.legacy, summary)
	s.started = false

	s.logger.Info(ctx, "career finished",
		logger.Int("seasons", summary.Seasons),
		logger.Int("peakTier", summary.PeakTier),
		logger.Float64("peakReputation", summary.PeakReputation),
		logger.Int("legacyPoints", profile.LegacyPoints),
	)
	return profile, nil
}

// setupSeniorRoles opens the department, the manager relationship and the
// board mandates the scout's tier calls for. Only an employed scout has a
// manager. Existing state is kept.
func (s *Session) setupSeniorRoles(ctx context.Context) {
	if s.scout.Tier >= departmentTier {
		if len(s.npcScouts) == 0 && s.rosterSize > 0 {
			s.hire(s.rosterSize)
		}
		if s.manager == nil && s.scout.Employed() {
			rel := relations.NewManagerRelationship(s.src, "manager-"+s.scout.EmployerClubID)
			s.manager = &rel
			s.logger.Info(ctx, "manager relationship opened",
				logger.String("manager", rel.ManagerID),
				logger.String("preference", string(rel.Preference)),
			)
		}
	}
	if s.scout.Tier >= boardTier && len(s.boardDirectives) == 0 {
		s.boardDirectives = relations.GenerateBoardDirectives(s.src, s.scout, s.season)
		s.logger.Info(ctx, "board directives issued", logger.Int("count", len(s.boardDirectives)))
	}
}

// hire adds n NPC scouts and assigns them round-robin. Existing
// assignments are kept.
func (s *Session) hire(n int) {
	hires := npc.GenerateNPCScouts(s.src, n, s.scout.Tier)
	roster := append(slices.Clone(s.npcScouts), hires...)
	s.npcScouts, s.territories = npc.AssignRoundRobin(roster, s.territories)
	if s.scout.Path == model.PathIndependent {
		s.scout.Employees = len(s.npcScouts)
	}
}

// Scout returns a copy of the current scout.
func (s *Session) Scout() model.Scout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scout.Clone()
}

// Season returns the current season number, starting at 1.
func (s *Session) Season() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season
}

// Week returns the last simulated week of the current season.
func (s *Session) Week() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week
}

// Offers returns the open job offers.
func (s *Session) Offers() []model.JobOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.offers)
}

// Reports returns the reports filed this season.
func (s *Session) Reports() []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reports)
}

// NPCScouts returns the department roster.
func (s *Session) NPCScouts() []model.NPCScout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.npcScouts)
}

// Territories returns the territories and their assignments.
func (s *Session) Territories() []model.Territory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Territory, len(s.territories))
	for i, t := range s.territories {
		out[i] = t.Clone()
	}
	return out
}

// NPCReports returns the department's reports this season.
func (s *Session) NPCReports() []model.NPCScoutReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.npcReports)
}

// Manager returns the manager relationship, if the scout has one.
func (s *Session) Manager() (model.ManagerRelationship, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manager == nil {
		return model.ManagerRelationship{}, false
	}
	return *s.manager, true
}

// ManagerSatisfaction scores the manager's current view of the season, 0-100.
// It reports false when the scout has no manager.
func (s *Session) ManagerSatisfaction() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manager == nil {
		return 0, false
	}
	return relations.CalculateManagerSatisfaction(*s.manager, s.reports, s.managerDirectives), true
}

// ManagerDirectives returns this season's manager directives.
func (s *Session) ManagerDirectives() []model.ManagerDirective {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.managerDirectives)
}

// BoardDirectives returns the open board directives.
func (s *Session) BoardDirectives() []model.BoardDirective {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.boardDirectives)
}

// History returns the season snapshots so far.
func (s *Session) History() analytics.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// Summary condenses the career so far.
func (s *Session) Summary() analytics.CareerSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.Summarize(s.history)
}
