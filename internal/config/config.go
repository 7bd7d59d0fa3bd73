// Package config defines the simulation configuration and loads it.
//
// Conventions:
//   - New(ctx) builds a Config with defaults; Load layers file and env on top.
//   - Errors returned from this package wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"fmt"

	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed drives every random draw of a run. The same seed and world
	// replay the same career.
	Seed int64 `koanf:"seed"`

	// Seasons is how many seasons the runner simulates.
	Seasons int `koanf:"seasons"`

	// WeeksPerSeason is the season length.
	WeeksPerSeason int `koanf:"weeks_per_season"`

	// NPCRosterSize is how many NPC scouts a tier 4+ scout manages.
	NPCRosterSize int `koanf:"npc_roster_size"`

	// MeetingIntervalWeeks is the gap between manager meetings.
	MeetingIntervalWeeks int `koanf:"meeting_interval_weeks"`

	// NPCRestThreshold is the fatigue above which an NPC scout rests.
	NPCRestThreshold float64 `koanf:"npc_rest_threshold"`

	// WorldFile is the YAML world snapshot. Empty means the built-in demo world.
	WorldFile string `koanf:"world_file"`

	// MetricsAddr serves /metrics when set, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Starting scout.
	ScoutName           string  `koanf:"scout_name"`
	ScoutTier           int     `koanf:"scout_tier"`
	ScoutReputation     float64 `koanf:"scout_reputation"`
	ScoutSpecialization string  `koanf:"scout_specialization"`
	ScoutHomeCountry    string  `koanf:"scout_home_country"`
	ScoutBalance        int     `koanf:"scout_balance"`
}

// New creates a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		Seed:                 1,
		Seasons:              5,
		WeeksPerSeason:       38,
		NPCRosterSize:        4,
		MeetingIntervalWeeks: 4,
		NPCRestThreshold:     80,
		ScoutName:            "Alex Hart",
		ScoutTier:            1,
		ScoutReputation:      10,
		ScoutSpecialization:  string(model.SpecYouth),
		ScoutHomeCountry:     "England",
		ScoutBalance:         2000,
	}
}

// Validate checks ranges and enums.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Seasons < 1:
		return invalid("seasons must be at least 1, got %d", c.Seasons)
	case c.WeeksPerSeason < 4 || c.WeeksPerSeason > 52:
		return invalid("weeks_per_season must be within [4, 52], got %d", c.WeeksPerSeason)
	case c.NPCRosterSize < 0:
		return invalid("npc_roster_size must not be negative, got %d", c.NPCRosterSize)
	case c.MeetingIntervalWeeks < 1:
		return invalid("meeting_interval_weeks must be at least 1, got %d", c.MeetingIntervalWeeks)
	case c.NPCRestThreshold < 0 || c.NPCRestThreshold > 100:
		return invalid("npc_rest_threshold must be within [0, 100], got %v", c.NPCRestThreshold)
	case c.ScoutTier < model.MinTier || c.ScoutTier > model.MaxTier:
		return invalid("scout_tier must be within [%d, %d], got %d", model.MinTier, model.MaxTier, c.ScoutTier)
	case c.ScoutReputation < 0 || c.ScoutReputation > 100:
		return invalid("scout_reputation must be within [0, 100], got %v", c.ScoutReputation)
	case !model.Specialization(c.ScoutSpecialization).Valid():
		return invalid("unknown scout_specialization %q", c.ScoutSpecialization)
	case c.ScoutName == "":
		return invalid("scout_name must not be empty")
	case c.ScoutBalance < 0:
		return invalid("scout_balance must not be negative, got %d", c.ScoutBalance)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
