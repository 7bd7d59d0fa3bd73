package config

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/okian/touchline/internal/domain/model"
)

//go:embed demo_world.yaml
var demoWorld []byte

// LoadWorld reads a world snapshot from a YAML file. An empty path loads the
// built-in demo world. Clubs without a philosophy are balanced.
func LoadWorld(_ context.Context, path string) (model.World, error) {
	k := koanf.New(".")
	var err error
	if path == "" {
		err = k.Load(rawbytes.Provider(demoWorld), yaml.Parser())
	} else {
		err = k.Load(file.Provider(path), yaml.Parser())
	}
	if err != nil {
		return model.World{}, fmt.Errorf("%w: world %q: %w", ErrLoadConfig, path, err)
	}

	var w model.World
	if err := k.UnmarshalWithConf("", &w, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return model.World{}, fmt.Errorf("%w: world %q: %w", ErrLoadConfig, path, err)
	}
	for i := range w.Clubs {
		if w.Clubs[i].Philosophy == "" {
			w.Clubs[i].Philosophy = model.PhilosophyBalanced
		}
	}
	if err := ValidateWorld(w); err != nil {
		return model.World{}, err
	}
	return w, nil
}

// ValidateWorld checks IDs are unique, references resolve and club
// philosophies are known.
func ValidateWorld(w model.World) error {
	leagues := make(map[string]bool, len(w.Leagues))
	for _, l := range w.Leagues {
		if l.ID == "" || leagues[l.ID] {
			return fmt.Errorf("%w: league id %q empty or duplicated", ErrInvalidWorld, l.ID)
		}
		leagues[l.ID] = true
	}
	clubs := make(map[string]bool, len(w.Clubs))
	for _, c := range w.Clubs {
		if c.ID == "" || clubs[c.ID] {
			return fmt.Errorf("%w: club id %q empty or duplicated", ErrInvalidWorld, c.ID)
		}
		if !leagues[c.LeagueID] {
			return fmt.Errorf("%w: club %s references unknown league %q", ErrInvalidWorld, c.ID, c.LeagueID)
		}
		if c.Reputation < 0 || c.Reputation > 100 {
			return fmt.Errorf("%w: club %s reputation %v out of range", ErrInvalidWorld, c.ID, c.Reputation)
		}
		if !c.Philosophy.Valid() {
			return fmt.Errorf("%w: club %s has unknown philosophy %q", ErrInvalidWorld, c.ID, c.Philosophy)
		}
		clubs[c.ID] = true
	}
	players := make(map[string]bool, len(w.Players))
	for _, p := range w.Players {
		if p.ID == "" || players[p.ID] {
			return fmt.Errorf("%w: player id %q empty or duplicated", ErrInvalidWorld, p.ID)
		}
		if p.ClubID != "" && !clubs[p.ClubID] {
			return fmt.Errorf("%w: player %s references unknown club %q", ErrInvalidWorld, p.ID, p.ClubID)
		}
		players[p.ID] = true
	}
	return nil
}
