package api

import (
	"encoding/json"
	"net/http"

	"kopige-pos/internal/staff"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  staffResponse `json:"user"`
}

// staffResponse is the wire shape of a staff user; the password hash never
// leaves the service layer.
type staffResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	PhoneNumber string `json:"phoneNumber"`
	JoinDate    string `json:"joinDate"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func toStaffResponse(u *staff.User) staffResponse {
	return staffResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		PhoneNumber: u.PhoneNumber,
		JoinDate:    u.JoinDate.Format("2006-01-02"),
		ImageURL:    u.ImageURL,
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	token, user, err := s.Staff.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  toStaffResponse(user),
	})
}
