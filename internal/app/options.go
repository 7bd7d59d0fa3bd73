package service

import (
	"slices"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/pkg/logger"
	"github.com/okian/touchline/pkg/metrics"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithSeed sets the seed of the session's random stream.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithWorld sets the world snapshot the session scouts against.
func WithWorld(w model.World) Option {
	return func(s *Session) {
		s.world = w
	}
}

// WithScout sets the starting scout.
func WithScout(scout model.Scout) Option {
	return func(s *Session) {
		s.scout = scout.Clone()
	}
}

// WithWeeksPerSeason sets the season length.
func WithWeeksPerSeason(weeks int) Option {
	return func(s *Session) {
		if weeks > 0 {
			s.weeksPerSeason = weeks
		}
	}
}

// WithNPCRosterSize sets how many NPC scouts a department starts with.
func WithNPCRosterSize(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.rosterSize = n
		}
	}
}

// WithMeetingInterval sets the number of weeks between manager meetings.
func WithMeetingInterval(weeks int) Option {
	return func(s *Session) {
		if weeks > 0 {
			s.meetingInterval = weeks
		}
	}
}

// WithNPCRestThreshold sets the fatigue above which NPC scouts rest.
func WithNPCRestThreshold(fatigue float64) Option {
	return func(s *Session) {
		if fatigue >= 0 {
			s.restThreshold = fatigue
		}
	}
}

// WithLegacy sets the cross-playthrough profile read at Start.
func WithLegacy(p analytics.LegacyProfile) Option {
	return func(s *Session) {
		s.legacy = p
	}
}

// WithBoardDirectives resumes a career with open board mandates. A tier 5
// scout given none gets fresh ones at Start.
func WithBoardDirectives(ds ...model.BoardDirective) Option {
	return func(s *Session) {
		s.boardDirectives = slices.Clone(ds)
	}
}

// WithDedupeCapacity bounds the number of remembered report IDs.
func WithDedupeCapacity(n int) Option {
	return func(s *Session) {
		s.dedupeCapacity = n
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}
