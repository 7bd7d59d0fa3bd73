// Package reputation is the ledger that turns tagged career events into
// reputation changes.
package reputation

import (
	"github.com/okian/touchline/internal/domain/model"
)

// Reputation bounds.
const (
	Min = 0.0
	Max = 100.0
)

// Event is a closed set of reputation-affecting events. Only types in this
// package implement it.
type Event interface {
	isEvent()
}

// ReportSubmitted credits a filed report; better reports earn more.
type ReportSubmitted struct {
	Quality int
}

// SuccessfulSigning credits a recommendation the club acted on. Performance
// is the signed player's subsequent performance in [0, 1].
type SuccessfulSigning struct {
	Conviction  model.ConvictionLevel
	Performance float64
}

// FailedSigning penalizes a signing that did not work out.
type FailedSigning struct {
	Conviction model.ConvictionLevel
}

// DiscoveryCredit credits unearthing a young talent.
type DiscoveryCredit struct {
	Tier model.WonderkidTier
}

// TablePoundSuccess is a maximum-conviction call that paid off.
type TablePoundSuccess struct{}

// TablePoundFailure is a maximum-conviction call that did not.
type TablePoundFailure struct{}

// SeasonEnd applies the season review verdict.
type SeasonEnd struct {
	Outcome model.ReviewOutcome
}

// BoardVerdict applies the net board directive swing, already clamped by the
// board evaluation.
type BoardVerdict struct {
	Delta float64
}

func (ReportSubmitted) isEvent()   {}
func (SuccessfulSigning) isEvent() {}
func (FailedSigning) isEvent()     {}
func (DiscoveryCredit) isEvent()   {}
func (TablePoundSuccess) isEvent() {}
func (TablePoundFailure) isEvent() {}
func (SeasonEnd) isEvent()         {}
func (BoardVerdict) isEvent()      {}

var signingBase = map[model.ConvictionLevel]float64{
	model.ConvictionNote:            2,
	model.ConvictionRecommend:       4,
	model.ConvictionStrongRecommend: 7,
	model.ConvictionTablePound:      10,
}

var failedSigning = map[model.ConvictionLevel]float64{
	model.ConvictionNote:            -1,
	model.ConvictionRecommend:       -2,
	model.ConvictionStrongRecommend: -4,
	model.ConvictionTablePound:      -6,
}

var discovery = map[model.WonderkidTier]float64{
	model.WonderkidNotable:      2,
	model.WonderkidPromising:    5,
	model.WonderkidTalented:     10,
	model.WonderkidWonderkid:    18,
	model.WonderkidGenerational: 30,
}

// Season-end deltas keyed by review outcome (excellent, good, acceptable, poor).
var seasonEnd = map[model.ReviewOutcome]float64{
	model.OutcomePromoted: 5,
	model.OutcomeRetained: 2,
	model.OutcomeWarning:  0,
	model.OutcomeFired:    -5,
}

const (
	tablePoundSuccess = 5.0
	tablePoundFailure = -10.0
)

// Delta returns the raw reputation change an event carries.
func Delta(e Event) float64 {
	switch ev := e.(type) {
	case ReportSubmitted:
		q := clamp(float64(ev.Quality), 0, 100)
		return 0.5 + 1.5*q/100
	case SuccessfulSigning:
		perf := clamp(ev.Performance, 0, 1)
		return signingBase[ev.Conviction] * (0.75 + 0.5*perf)
	case FailedSigning:
		return failedSigning[ev.Conviction]
	case DiscoveryCredit:
		return discovery[ev.Tier]
	case TablePoundSuccess:
		return tablePoundSuccess
	case TablePoundFailure:
		return tablePoundFailure
	case SeasonEnd:
		return seasonEnd[ev.Outcome]
	case BoardVerdict:
		return ev.Delta
	}
	return 0
}

// Update applies e to the scout's reputation and returns the updated scout.
// The result is always within [Min, Max].
func Update(scout model.Scout, e Event) model.Scout {
	out := scout.Clone()
	out.Reputation = clamp(out.Reputation+Delta(e), Min, Max)
	if _, ok := e.(SuccessfulSigning); ok {
		out.SuccessfulFinds++
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
