// Package narrative applies the reputation and fatigue side effects of
// story events. The events themselves are authored elsewhere.
package narrative

import (
	"errors"
	"fmt"

	"github.com/okian/touchline/internal/domain/model"
)

// ErrChoiceOutOfRange is returned when a choice index does not exist.
var ErrChoiceOutOfRange = errors.New("narrative choice out of range")

// Effect is a side effect of picking a choice.
type Effect interface {
	apply(model.Scout) model.Scout
}

// ReputationEffect shifts reputation.
type ReputationEffect struct {
	Delta float64
}

// FatigueEffect shifts fatigue.
type FatigueEffect struct {
	Delta float64
}

func (e ReputationEffect) apply(s model.Scout) model.Scout {
	s.Reputation = clamp(s.Reputation + e.Delta)
	return s
}

func (e FatigueEffect) apply(s model.Scout) model.Scout {
	s.Fatigue = clamp(s.Fatigue + e.Delta)
	return s
}

// Choice is one option offered by an event.
type Choice struct {
	Label   string
	Effects []Effect
}

// Event is a story event with choices.
type Event struct {
	ID      string
	Title   string
	Choices []Choice
}

// ResolveChoice applies the effects of choice index of e to the scout.
func ResolveChoice(scout model.Scout, e Event, index int) (model.Scout, error) {
	if index < 0 || index >= len(e.Choices) {
		return scout, fmt.Errorf("%w: event %s has %d choices, got %d", ErrChoiceOutOfRange, e.ID, len(e.Choices), index)
	}
	out := scout.Clone()
	for _, fx := range e.Choices[index].Effects {
		out = fx.apply(out)
	}
	return out, nil
}

func clamp(v float64) float64 {
	return max(0, min(100, v))
}
