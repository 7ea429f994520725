// Package api is the JSON surface of the POS: login, catalog and staff
// administration, checkout, sales history and the revenue dashboard.
package api

import (
	"errors"
	"net/http"

	"kopige-pos/internal/dashboard"
	"kopige-pos/internal/menu"
	"kopige-pos/internal/metrics"
	"kopige-pos/internal/sale"
	"kopige-pos/internal/staff"
	"kopige-pos/internal/utils"
)

var (
	errUnauthenticated = errors.New("authentication required")
	errForbidden       = errors.New("insufficient role")
)

type Server struct {
	Menu      menu.Service
	Staff     staff.Service
	Sales     sale.Service
	Dashboard dashboard.Service
	Metrics   *metrics.Registry
	CafeName  string
}

func NewServer(
	menuSvc menu.Service,
	staffSvc staff.Service,
	saleSvc sale.Service,
	dashSvc dashboard.Service,
	reg *metrics.Registry,
	cafeName string,
) *Server {
	return &Server{
		Menu:      menuSvc,
		Staff:     staffSvc,
		Sales:     saleSvc,
		Dashboard: dashSvc,
		Metrics:   reg,
		CafeName:  cafeName,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/menu", s.handleListMenu)
	mux.HandleFunc("POST /api/menu", s.handleCreateMenuItem)
	mux.HandleFunc("PUT /api/menu/{id}", s.handleUpdateMenuItem)
	mux.HandleFunc("DELETE /api/menu/{id}", s.handleDeleteMenuItem)

	mux.HandleFunc("GET /api/staff", s.handleListStaff)
	mux.HandleFunc("POST /api/staff", s.handleCreateStaff)
	mux.HandleFunc("PUT /api/staff/{id}", s.handleUpdateStaff)
	mux.HandleFunc("DELETE /api/staff/{id}", s.handleDeleteStaff)

	mux.HandleFunc("POST /api/checkout", s.handleCheckout)
	mux.HandleFunc("GET /api/sales", s.handleListSales)
	mux.HandleFunc("GET /api/dashboard/stats", s.handleDashboardStats)

	mux.HandleFunc("GET /api/metrics", s.handleMetrics)

	return mux
}

// requireAuth ensures a staff identity is on the context.
func requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": errUnauthenticated.Error()})
		return false
	}
	return true
}

// requireRole ensures the caller holds one of the given roles.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...staff.Role) bool {
	if !requireAuth(w, r) {
		return false
	}

	role := staff.Role(utils.GetUserRoleFromContext(r.Context()))
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}

	writeJSON(w, http.StatusForbidden, map[string]string{"error": errForbidden.Error()})
	return false
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staff.RoleAdmin, staff.RoleManager) {
		return
	}
	writeJSON(w, http.StatusOK, s.Metrics.Snapshot())
}
