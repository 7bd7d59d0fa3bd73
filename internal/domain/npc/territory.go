package npc

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/okian/touchline/internal/domain/model"
)

// GenerateTerritories groups leagues into one territory per country, ordered
// by country name.
func GenerateTerritories(leagues []model.League) []model.Territory {
	byCountry := make(map[string][]string)
	for _, l := range leagues {
		byCountry[l.Country] = append(byCountry[l.Country], l.ID)
	}
	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	out := make([]model.Territory, 0, len(countries))
	for _, c := range countries {
		ids := byCountry[c]
		out = append(out, model.Territory{
			ID:               "territory-" + slug(c),
			Name:             c,
			Country:          c,
			LeagueIDs:        ids,
			Capacity:         max(1, int(math.Ceil(float64(len(ids))/2))),
			AssignedScoutIDs: []string{},
		})
	}
	return out
}

// Assign places a scout in a territory, returning both updated values.
// Capacity is soft and a previous territory is not evicted; callers keep
// both sides consistent on reassignment.
func Assign(s model.NPCScout, t model.Territory) (model.NPCScout, model.Territory) {
	t = t.Clone()
	if !slices.Contains(t.AssignedScoutIDs, s.ID) {
		t.AssignedScoutIDs = append(t.AssignedScoutIDs, s.ID)
	}
	s.TerritoryID = t.ID
	return s, t
}

// Unassign removes a scout from a territory, returning both updated values.
func Unassign(s model.NPCScout, t model.Territory) (model.NPCScout, model.Territory) {
	t = t.Clone()
	t.AssignedScoutIDs = slices.DeleteFunc(t.AssignedScoutIDs, func(id string) bool { return id == s.ID })
	if s.TerritoryID == t.ID {
		s.TerritoryID = ""
	}
	return s, t
}

// AssignRoundRobin spreads unassigned scouts over the territories in order,
// preferring territories with spare capacity.
func AssignRoundRobin(scouts []model.NPCScout, territories []model.Territory) ([]model.NPCScout, []model.Territory) {
	outS := slices.Clone(scouts)
	outT := make([]model.Territory, len(territories))
	for i, t := range territories {
		outT[i] = t.Clone()
	}
	if len(outT) == 0 {
		return outS, outT
	}
	next := 0
	for i := range outS {
		if outS[i].TerritoryID != "" {
			continue
		}
		idx := next
		for k := 0; k < len(outT); k++ {
			cand := (next + k) % len(outT)
			if len(outT[cand].AssignedScoutIDs) < outT[cand].Capacity {
				idx = cand
				break
			}
		}
		outS[i], outT[idx] = Assign(outS[i], outT[idx])
		next = (idx + 1) % len(outT)
	}
	return outS, outT
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
