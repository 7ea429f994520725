package api

import (
	"net/http"
	"time"
)

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	sales, err := s.Sales.List(r.Context())
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sales": sales})
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	stats, err := s.Dashboard.Stats(r.Context(), time.Now())
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
