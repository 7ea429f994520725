package api

import (
	"encoding/json"
	"net/http"

	"kopige-pos/internal/staff"
)

// staffAdminRoles may manage the catalog; staff records themselves are
// admin-only.
var staffAdminRoles = []staff.Role{staff.RoleAdmin, staff.RoleManager}

func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staff.RoleAdmin) {
		return
	}

	users, err := s.Staff.List(r.Context())
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	out := make([]staffResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toStaffResponse(u))
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staff.RoleAdmin) {
		return
	}

	var input staff.NewUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := s.Staff.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStaffResponse(user))
}

func (s *Server) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staff.RoleAdmin) {
		return
	}

	var input staff.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := s.Staff.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffResponse(user))
}

func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staff.RoleAdmin) {
		return
	}

	if err := s.Staff.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
