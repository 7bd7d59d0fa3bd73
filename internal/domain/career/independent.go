package career

import (
	"fmt"

	"github.com/okian/touchline/internal/domain/model"
)

// Requirements gate an independent scout's move to a tier. Every threshold
// must be met at once.
type Requirements struct {
	Reputation       float64
	Balance          int
	Reports          int
	Retainers        int
	Employees        int
	CompletedCourses int
}

var independentRequirements = map[int]Requirements{
	2: {Reputation: 25, Balance: 5_000, Reports: 15},
	3: {Reputation: 45, Balance: 20_000, Reports: 40, Retainers: 1, CompletedCourses: 1},
	4: {Reputation: 65, Balance: 60_000, Reports: 80, Retainers: 3, Employees: 2, CompletedCourses: 2},
	5: {Reputation: 85, Balance: 150_000, Reports: 150, Retainers: 5, Employees: 5, CompletedCourses: 4},
}

// IndependentRequirements returns the thresholds for reaching tier on the
// independent path.
func IndependentRequirements(tier int) (Requirements, bool) {
	r, ok := independentRequirements[tier]
	return r, ok
}

// UnmetIndependent lists the thresholds an independent scout still misses
// for the next tier. It is empty when the scout may advance.
func UnmetIndependent(scout model.Scout) []string {
	req, ok := independentRequirements[scout.Tier+1]
	if !ok {
		return []string{"already at the top tier"}
	}
	var unmet []string
	if scout.Reputation < req.Reputation {
		unmet = append(unmet, fmt.Sprintf("reputation %.0f/%.0f", scout.Reputation, req.Reputation))
	}
	if scout.Balance < req.Balance {
		unmet = append(unmet, fmt.Sprintf("balance %d/%d", scout.Balance, req.Balance))
	}
	if scout.ReportsSubmitted < req.Reports {
		unmet = append(unmet, fmt.Sprintf("reports %d/%d", scout.ReportsSubmitted, req.Reports))
	}
	if scout.RetainerContracts < req.Retainers {
		unmet = append(unmet, fmt.Sprintf("retainers %d/%d", scout.RetainerContracts, req.Retainers))
	}
	if scout.Employees < req.Employees {
		unmet = append(unmet, fmt.Sprintf("employees %d/%d", scout.Employees, req.Employees))
	}
	if len(scout.CompletedCourses) < req.CompletedCourses {
		unmet = append(unmet, fmt.Sprintf("courses %d/%d", len(scout.CompletedCourses), req.CompletedCourses))
	}
	return unmet
}

// AdvanceIndependent moves an independent scout up one tier when every
// requirement is met. The independent tier is the career tier.
func AdvanceIndependent(scout model.Scout) (model.Scout, bool) {
	if scout.Path != model.PathIndependent || len(UnmetIndependent(scout)) > 0 {
		return scout, false
	}
	out := scout.Clone()
	out.Tier++
	return out, true
}
