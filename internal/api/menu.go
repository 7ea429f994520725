package api

import (
	"encoding/json"
	"net/http"

	"kopige-pos/internal/menu"
)

func (s *Server) handleListMenu(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	filter := menu.ListFilter{
		Category: menu.Category(r.URL.Query().Get("category")),
		Search:   r.URL.Query().Get("q"),
	}

	items, err := s.Menu.List(r.Context(), filter)
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staffAdminRoles...) {
		return
	}

	var input menu.NewItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := s.Menu.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staffAdminRoles...) {
		return
	}

	var input menu.UpdateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := s.Menu.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, staffAdminRoles...) {
		return
	}

	if err := s.Menu.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
