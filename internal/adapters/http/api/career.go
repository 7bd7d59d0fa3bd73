package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/npc"
)

type careerResponse struct {
	ScoutID        string                  `json:"scoutId"`
	Name           string                  `json:"name"`
	Tier           int                     `json:"tier"`
	Reputation     float64                 `json:"reputation"`
	Path           model.CareerPath        `json:"path"`
	Specialization model.Specialization    `json:"specialization"`
	Secondary      model.Specialization    `json:"secondarySpecialization,omitempty"`
	EmployerID     string                  `json:"employerId,omitempty"`
	Salary         int                     `json:"salary"`
	Balance        int                     `json:"balance"`
	Fatigue        float64                 `json:"fatigue"`
	Season         int                     `json:"season"`
	Week           int                     `json:"week"`
	Summary        analytics.CareerSummary `json:"summary"`

	ManagerSatisfaction *float64 `json:"managerSatisfaction,omitempty"`
}

type offerResponse struct {
	ID             string `json:"id"`
	ClubID         string `json:"clubId"`
	ClubName       string `json:"clubName"`
	Tier           int    `json:"tier"`
	Role           string `json:"role"`
	Salary         int    `json:"salary"`
	ContractLength int    `json:"contractSeasons"`
	ExpiresWeek    int    `json:"expiresWeek"`
}

// CareerHandler serves the scout's current standing and open offers.
type CareerHandler struct {
	reader CareerReader
}

// NewCareerHandler creates a new career handler.
func NewCareerHandler(reader CareerReader) *CareerHandler {
	return &CareerHandler{reader: reader}
}

// HandleCareer handles GET /career requests.
func (h *CareerHandler) HandleCareer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s := h.reader.Scout()
	resp := careerResponse{
		ScoutID:        s.ID,
		Name:           s.Name,
		Tier:           s.Tier,
		Reputation:     s.Reputation,
		Path:           s.Path,
		Specialization: s.Specialization,
		Secondary:      s.SecondarySpecialization,
		EmployerID:     s.EmployerClubID,
		Salary:         s.Salary,
		Balance:        s.Balance,
		Fatigue:        s.Fatigue,
		Season:         h.reader.Season(),
		Week:           h.reader.Week(),
		Summary:        h.reader.Summary(),
	}
	if v, ok := h.reader.ManagerSatisfaction(); ok {
		resp.ManagerSatisfaction = &v
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleOffers handles GET /offers requests.
func (h *CareerHandler) HandleOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	offers := h.reader.Offers()
	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerResponse{
			ID:             o.ID,
			ClubID:         o.ClubID,
			ClubName:       o.ClubName,
			Tier:           o.Tier,
			Role:           o.Role,
			Salary:         o.Salary,
			ContractLength: o.ContractLength,
			ExpiresWeek:    o.ExpiresWeek,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HistoryHandler serves season snapshots.
type HistoryHandler struct {
	reader CareerReader
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(reader CareerReader) *HistoryHandler {
	return &HistoryHandler{reader: reader}
}

// HandleHistory handles GET /history requests.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	history := h.reader.History()
	if history == nil {
		history = analytics.History{}
	}
	writeJSON(w, http.StatusOK, history)
}

// HandleSeason handles GET /history/{season} requests.
func (h *HistoryHandler) HandleSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/history/")
	season, err := strconv.Atoi(path)
	if err != nil || season < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: season %q", ErrBadRequest, path))
		return
	}
	for _, snap := range h.reader.History() {
		if snap.Season == season {
			writeJSON(w, http.StatusOK, snap)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", fmt.Errorf("%w: season %d", ErrNotFound, season))
}

type npcResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Quality        int                  `json:"quality"`
	Specialization model.Specialization `json:"specialization"`
	Fatigue        float64              `json:"fatigue"`
	Morale         int                  `json:"morale"`
	Reports        int                  `json:"reports"`
	SeasonReports  int                  `json:"seasonReports"`
	UsefulReports  int                  `json:"usefulReports"`
	TerritoryID    string               `json:"territoryId,omitempty"`
}

type territoryResponse struct {
	ID           string   `json:"id"`
	Country      string   `json:"country"`
	Capacity     int      `json:"capacity"`
	Assigned     []string `json:"assigned"`
	OverCapacity bool     `json:"overCapacity"`
}

type departmentResponse struct {
	Scouts      []npcResponse               `json:"scouts"`
	Territories []territoryResponse         `json:"territories"`
	ReportTiers map[model.NPCReportTier]int `json:"reportTiers"`
}

// DepartmentHandler serves the NPC roster and territory coverage.
type DepartmentHandler struct {
	reader CareerReader
}

// NewDepartmentHandler creates a new department handler.
func NewDepartmentHandler(reader CareerReader) *DepartmentHandler {
	return &DepartmentHandler{reader: reader}
}

// HandleDepartment handles GET /department requests.
func (h *DepartmentHandler) HandleDepartment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	resp := departmentResponse{
		Scouts:      []npcResponse{},
		Territories: []territoryResponse{},
		ReportTiers: map[model.NPCReportTier]int{},
	}
	filed := make(map[string]int)
	useful := make(map[string]int)
	for _, r := range h.reader.NPCReports() {
		ev := npc.EvaluateReport(r)
		resp.ReportTiers[ev.Tier]++
		filed[r.NPCScoutID]++
		if ev.Useful {
			useful[r.NPCScoutID]++
		}
	}
	for _, n := range h.reader.NPCScouts() {
		resp.Scouts = append(resp.Scouts, npcResponse{
			ID:             n.ID,
			Name:           n.Name,
			Quality:        n.Quality,
			Specialization: n.Specialization,
			Fatigue:        n.Fatigue,
			Morale:         n.Morale,
			Reports:        n.ReportsSubmitted,
			SeasonReports:  filed[n.ID],
			UsefulReports:  useful[n.ID],
			TerritoryID:    n.TerritoryID,
		})
	}
	for _, t := range h.reader.Territories() {
		assigned := t.AssignedScoutIDs
		if assigned == nil {
			assigned = []string{}
		}
		resp.Territories = append(resp.Territories, territoryResponse{
			ID:           t.ID,
			Country:      t.Country,
			Capacity:     t.Capacity,
			Assigned:     assigned,
			OverCapacity: t.OverCapacity(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
