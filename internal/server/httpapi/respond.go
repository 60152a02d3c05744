// Package httpapi exposes the contentgen REST API over chi.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps the domain sentinels to HTTP statuses and writes the
// uniform {"detail": ...} body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"

	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken):
		status = http.StatusUnauthorized
		detail = "invalid credentials"
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
		detail = "access denied"
		if err.Error() != common.ErrForbidden.Error() {
			detail = err.Error()
		}
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
		detail = "not found"
	case errors.Is(err, common.ErrConflict):
		status = http.StatusConflict
		detail = "already exists"
	}

	respondJSON(w, status, api.ErrorResponse{Detail: detail})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrValidation
	}
	return nil
}
