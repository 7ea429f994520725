package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/menu"
	"kopige-pos/internal/sale"
	"kopige-pos/internal/staff"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP codes. Validation failures are the
// operator's to correct (422); store failures mean the attempt did not land
// and can be retried (502).
func statusFor(err error) int {
	switch {
	case errors.Is(err, staff.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, staff.ErrInactiveUser):
		return http.StatusForbidden
	case errors.Is(err, staff.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, staff.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInsufficientCash),
		errors.Is(err, sale.ErrNoLines),
		errors.Is(err, menu.ErrNameRequired),
		errors.Is(err, menu.ErrNegativePrice),
		errors.Is(err, menu.ErrInvalidCategory),
		errors.Is(err, staff.ErrNameRequired),
		errors.Is(err, staff.ErrEmailRequired),
		errors.Is(err, staff.ErrPasswordRequired),
		errors.Is(err, staff.ErrInvalidRole),
		errors.Is(err, staff.ErrInvalidStatus):
		return http.StatusUnprocessableEntity

	case errors.Is(err, menu.ErrFailedFetchMenu),
		errors.Is(err, menu.ErrFailedCreateItem),
		errors.Is(err, menu.ErrFailedUpdateItem),
		errors.Is(err, menu.ErrFailedDeleteItem),
		errors.Is(err, sale.ErrFailedSaveSale),
		errors.Is(err, sale.ErrFailedListSales),
		errors.Is(err, staff.ErrFailedFetchUsers),
		errors.Is(err, staff.ErrFailedCreateUser),
		errors.Is(err, staff.ErrFailedUpdateUser),
		errors.Is(err, staff.ErrFailedDeleteUser):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
