// Package api serves a read-only JSON view of a running career.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/touchline/internal/domain/analytics"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/pkg/metrics"
)

// CareerReader is the read side of a career session. Every method returns a
// copy that is safe to encode while the session keeps running.
type CareerReader interface {
	Scout() model.Scout
	Season() int
	Week() int
	Offers() []model.JobOffer
	History() analytics.History
	Summary() analytics.CareerSummary
	ManagerSatisfaction() (float64, bool)
	NPCScouts() []model.NPCScout
	NPCReports() []model.NPCScoutReport
	Territories() []model.Territory
}

// Server wires HTTP routes for the status API.
type Server struct {
	metrics *metrics.Manager

	healthHandler     *HealthHandler
	careerHandler     *CareerHandler
	historyHandler    *HistoryHandler
	departmentHandler *DepartmentHandler
}

// NewServer creates a new API server with all handlers. A nil manager
// records onto metrics.Default().
func NewServer(reader CareerReader, m *metrics.Manager) *Server {
	if m == nil {
		m = metrics.Default()
	}
	return &Server{
		metrics:           m,
		healthHandler:     NewHealthHandler(),
		careerHandler:     NewCareerHandler(reader),
		historyHandler:    NewHistoryHandler(reader),
		departmentHandler: NewDepartmentHandler(reader),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.metrics, s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/career", MetricsMiddleware(s.metrics, s.careerHandler.HandleCareer, "career"))
	mux.HandleFunc("/offers", MetricsMiddleware(s.metrics, s.careerHandler.HandleOffers, "offers"))
	mux.HandleFunc("/history", MetricsMiddleware(s.metrics, s.historyHandler.HandleHistory, "history"))
	mux.HandleFunc("/history/", MetricsMiddleware(s.metrics, s.historyHandler.HandleSeason, "history_season"))
	mux.HandleFunc("/department", MetricsMiddleware(s.metrics, s.departmentHandler.HandleDepartment, "department"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
