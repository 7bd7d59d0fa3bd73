package career

import (
	"errors"
	"fmt"

	"github.com/okian/touchline/internal/domain/model"
)

// Sentinel errors for specialization misuse. These are caller bugs, not
// game states.
var (
	ErrSecondaryIneligible   = errors.New("secondary specialization not available")
	ErrSameSpecialization    = errors.New("secondary specialization equals primary")
	ErrUnknownSpecialization = errors.New("unknown specialization")
)

// Secondary specialization gate.
const (
	SecondaryMinTier       = 3
	SecondaryMinReputation = 60.0
)

// CanUnlockSecondary reports whether the scout may pick a second focus.
func CanUnlockSecondary(scout model.Scout) bool {
	return scout.SecondarySpecialization == "" &&
		scout.Tier >= SecondaryMinTier &&
		scout.Reputation >= SecondaryMinReputation
}

// UnlockSecondarySpecialization grants a second scouting focus.
func UnlockSecondarySpecialization(scout model.Scout, spec model.Specialization) (model.Scout, error) {
	if !spec.Valid() {
		return scout, fmt.Errorf("%w: %q", ErrUnknownSpecialization, spec)
	}
	if !CanUnlockSecondary(scout) {
		return scout, fmt.Errorf("%w: tier %d, reputation %.0f, current secondary %q",
			ErrSecondaryIneligible, scout.Tier, scout.Reputation, scout.SecondarySpecialization)
	}
	if scout.HasSpecialization(spec) {
		return scout, fmt.Errorf("%w: %s", ErrSameSpecialization, spec)
	}
	out := scout.Clone()
	out.SecondarySpecialization = spec
	return out, nil
}
