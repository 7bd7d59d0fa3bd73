package service

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/career"
	"github.com/okian/touchline/internal/domain/market"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/npc"
	"github.com/okian/touchline/internal/domain/relations"
	"github.com/okian/touchline/internal/domain/reputation"
	"github.com/okian/touchline/internal/domain/scoring"
	"github.com/okian/touchline/pkg/logger"
)

// Player thresholds used for board season statistics.
const (
	youthAge         = 21
	firstTeamAbility = 130
	dataReportPoints = 5
	scoringBonusTier = 3
)

// WeekResult summarizes one simulated week.
type WeekResult struct {
	Season     int
	Week       int
	NPCReports int
	Useful     int // NPC reports graded decent or better
	Rested     int
	Meeting    *relations.MeetingOutcome
}

// AdvanceWeek simulates the next week: expired offers lapse, tired NPC scouts
// rest, the others scout their territories, and the manager meets the scout
// on schedule.
func (s *Session) AdvanceWeek(ctx context.Context) (WeekResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return WeekResult{}, ErrNotStarted
	}
	if s.week >= s.weeksPerSeason {
		return WeekResult{}, ErrSeasonOver
	}
	start := time.Now()
	s.week++
	s.lapseOffers(ctx)
	res := WeekResult{Season: s.season, Week: s.week}

	if len(s.npcScouts) > 0 {
		res.NPCReports, res.Useful, res.Rested = s.runDepartment()
		s.metrics.NPCReports(res.NPCReports)
		s.metrics.NPCFatigue(averageFatigue(s.npcScouts))
	}

	if s.manager != nil && s.week%s.meetingInterval == 0 {
		out := relations.ResolveManagerMeeting(s.src, *s.manager, s.scout, s.week)
		s.manager = &out.Relationship
		if out.Directive != nil {
			s.managerDirectives = append(s.managerDirectives, *out.Directive)
		}
		res.Meeting = &out
		s.metrics.Meeting(string(out.Tone))
		s.logger.Info(ctx, "manager meeting",
			logger.Int("week", s.week),
			logger.String("tone", string(out.Tone)),
			logger.Float64("trust", out.Relationship.Trust),
			logger.Bool("directive", out.Directive != nil),
		)
	}

	s.payWeek()
	s.metrics.WeekLatency(time.Since(start).Seconds())
	s.logger.Debug(ctx, "week simulated",
		logger.Int("season", s.season),
		logger.Int("week", s.week),
		logger.Int("npcReports", res.NPCReports),
		logger.Int("useful", res.Useful),
		logger.Int("rested", res.Rested),
	)
	return res, nil
}

// lapseOffers drops offers from an earlier season once the week passes their
// expiry.
func (s *Session) lapseOffers(ctx context.Context) {
	var open []model.JobOffer
	for _, o := range s.offers {
		if o.Season < s.season && s.week > o.ExpiresWeek {
			s.logger.Info(ctx, "job offer lapsed",
				logger.String("club", o.ClubName),
				logger.Int("expiresWeek", o.ExpiresWeek),
			)
			continue
		}
		open = append(open, o)
	}
	s.offers = open
}

// runDepartment rests the tired and sends the rest out scouting.
func (s *Session) runDepartment() (reports, useful, rested int) {
	var working []model.NPCScout
	var workingIdx []int
	roster := slices.Clone(s.npcScouts)
	for i, sc := range roster {
		if sc.Fatigue > s.restThreshold {
			roster[i] = npc.Rest(sc)
			rested++
			continue
		}
		working = append(working, sc)
		workingIdx = append(workingIdx, i)
	}

	out := npc.SimulateWeek(s.src, working, s.territories, s.world, npc.Week{Season: s.season, Number: s.week})
	for k, i := range workingIdx {
		roster[i] = out.Scouts[k]
	}
	s.npcScouts = roster
	s.npcReports = append(s.npcReports, out.Reports...)
	for _, r := range out.Reports {
		if npc.EvaluateReport(r).Useful {
			useful++
		}
	}
	return len(out.Reports), useful, rested
}

// payWeek credits a weekly share of the scout's salary and, for
// independent scouts, charges the department's wages.
func (s *Session) payWeek() {
	if s.scout.Employed() {
		s.scout.Balance += s.scout.Salary / s.weeksPerSeason
	}
	if s.scout.Path == model.PathIndependent {
		s.scout.Balance -= npc.WeeklyWageBill(s.npcScouts)
	}
}

func averageFatigue(scouts []model.NPCScout) float64 {
	if len(scouts) == 0 {
		return 0
	}
	var sum float64
	for _, sc := range scouts {
		sum += sc.Fatigue
	}
	return sum / float64(len(scouts))
}

// SeasonResult is what the end of a season produced.
type SeasonResult struct {
	Review   model.PerformanceReview
	Board    *relations.BoardEvaluation
	Offers   []model.JobOffer
	Snapshot analytics.SeasonSnapshot
	Promoted bool // independent tier advancement
	Fired    bool

	// ManagerSatisfaction is the manager's 0-100 verdict on the season,
	// zero when the scout had no manager.
	ManagerSatisfaction float64
}

// EndSeason closes the season in a fixed order: board evaluation, review,
// season-end reputation, snapshot, job offers, dismissal, independent
// advancement and the reset for the next season.
func (s *Session) EndSeason(ctx context.Context) (SeasonResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return SeasonResult{}, ErrNotStarted
	}
	var res SeasonResult
	season := s.season

	// Board
	var judged []model.BoardDirective
	if s.scout.Tier >= boardTier && len(s.boardDirectives) > 0 {
		directives := relations.UpdateBoardProgress(s.boardDirectives, s.seasonStats())
		ev := relations.EvaluateBoardDirectives(directives, s.scout, season)
		s.scout = reputation.Update(s.scout, reputation.BoardVerdict{Delta: ev.ReputationChange})
		s.boardDirectives = slices.Clone(ev.Pending)
		judged = append(slices.Clone(ev.Completed), ev.Failed...)
		res.Board = &ev
		s.metrics.BoardSwing(ev.ReputationChange)
		s.logger.Info(ctx, "board verdict",
			logger.Int("completed", len(ev.Completed)),
			logger.Int("failed", len(ev.Failed)),
			logger.Int("pending", len(ev.Pending)),
			logger.Float64("reputationChange", ev.ReputationChange),
		)
	}

	// Review
	var tc *scoring.TierContext
	if s.scout.Tier >= scoringBonusTier {
		tc = &scoring.TierContext{
			HomeCountry:       s.scout.HomeCountry,
			PlayerCountries:   s.world.PlayerCountries(),
			NPCScouts:         s.npcScouts,
			NPCReports:        s.npcReports,
			Manager:           s.manager,
			ManagerDirectives: s.managerDirectives,
			BoardDirectives:   judged,
		}
	}
	review := scoring.CalculatePerformanceReview(s.scout, s.reports, season, tc)
	if s.manager != nil {
		res.ManagerSatisfaction = relations.CalculateManagerSatisfaction(*s.manager, s.reports, s.managerDirectives)
		s.metrics.ManagerSatisfaction(res.ManagerSatisfaction)
		s.logger.Info(ctx, "manager verdict",
			logger.String("manager", s.manager.ManagerID),
			logger.Float64("satisfaction", res.ManagerSatisfaction),
		)
	}
	s.scout = reputation.Update(s.scout, reputation.SeasonEnd{Outcome: review.Outcome})
	res.Review = review
	s.metrics.Review(string(review.Outcome), review.Score)
	s.logger.Info(ctx, "season reviewed",
		logger.Int("season", season),
		logger.Float64("score", review.Score),
		logger.String("outcome", string(review.Outcome)),
		logger.Float64("reputation", s.scout.Reputation),
	)

	// Snapshot
	res.Snapshot = analytics.SeasonSnapshot{
		Season:     season,
		Tier:       s.scout.Tier,
		Reputation: s.scout.Reputation,
		Score:      review.Score,
		Outcome:    review.Outcome,
		Reports:    review.ReportsSubmitted,
		Signings:   review.SuccessfulSignings,
		NPCReports: len(s.npcReports),
		Balance:    s.scout.Balance,
		EmployerID: s.scout.EmployerClubID,
	}
	if res.Board != nil {
		res.Snapshot.BoardSwing = res.Board.ReputationChange
	}
	s.history = analytics.AddSeasonSnapshot(s.history, res.Snapshot)

	// Market
	s.offers = market.GenerateJobOffers(s.src, s.scout, s.world.Clubs, market.Season{Number: season, Weeks: s.weeksPerSeason})
	res.Offers = slices.Clone(s.offers)
	s.metrics.JobOffers(len(s.offers))
	for _, o := range s.offers {
		s.logger.Info(ctx, "job offer received",
			logger.String("club", o.ClubName),
			logger.String("role", o.Role),
			logger.Int("tier", o.Tier),
			logger.Int("salary", o.Salary),
		)
	}

	if review.Outcome == model.OutcomeFired && s.scout.Employed() {
		s.scout = career.Dismiss(s.scout)
		s.manager = nil
		s.managerDirectives = nil
		res.Fired = true
		s.logger.Warn(ctx, "scout dismissed", logger.Int("season", season))
	}

	if scout, advanced := career.AdvanceIndependent(s.scout); advanced {
		s.scout = scout
		res.Promoted = true
		s.logger.Info(ctx, "independent tier reached", logger.Int("tier", scout.Tier))
	}

	// Next season
	s.scout = career.StartSeason(s.scout)
	if s.manager != nil {
		rel := relations.StartSeason(*s.manager)
		s.manager = &rel
	}
	s.season++
	s.week = 0
	s.reports = nil
	s.npcReports = nil
	s.discoveries = nil
	s.managerDirectives = nil
	if s.scout.Tier >= boardTier {
		fresh := relations.GenerateBoardDirectives(s.src, s.scout, s.season)
		s.boardDirectives = append(s.boardDirectives, fresh...)
	}
	s.setupSeniorRoles(ctx)

	s.metrics.ScoutState(s.scout.Reputation, s.scout.Tier)
	return res, nil
}

// seasonStats gathers the figures board directives are measured against.
func (s *Session) seasonStats() relations.SeasonStats {
	var st relations.SeasonStats
	for _, t := range s.discoveries {
		if t == model.WonderkidWonderkid || t == model.WonderkidGenerational {
			st.WonderkidsFound++
		}
	}

	countries := s.world.PlayerCountries()
	seen := make(map[string]bool)
	var qualitySum int
	for _, r := range s.reports {
		qualitySum += r.Quality
		if r.DataPoints >= dataReportPoints {
			st.DataReports++
		}
		if c, ok := countries[r.PlayerID]; ok && c != "" {
			seen[c] = true
		}
		if !r.SuccessfulSigning() {
			continue
		}
		p, ok := s.world.PlayerByID(r.PlayerID)
		if !ok {
			continue
		}
		if p.Age < youthAge {
			st.YouthSignings++
		}
		if p.CurrentAbility >= firstTeamAbility {
			st.FirstTeamSignings++
		}
	}
	st.CountriesScouted = len(seen)
	if len(s.reports) > 0 {
		st.AverageReportQuality = math.Round(float64(qualitySum)/float64(len(s.reports))*10) / 10
	}
	return st
}
