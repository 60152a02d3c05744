package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
)

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"validation", fmt.Errorf("%w: prompt is required", common.ErrValidation), http.StatusBadRequest, "validation error: prompt is required"},
		{"unauthorized", common.ErrUnauthorized, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", common.ErrInvalidToken, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden plain", common.ErrForbidden, http.StatusForbidden, "access denied"},
		{"forbidden detailed", fmt.Errorf("%w: default templates cannot be deleted", common.ErrForbidden), http.StatusForbidden, "forbidden: default templates cannot be deleted"},
		{"not found", common.ErrNotFound, http.StatusNotFound, "not found"},
		{"conflict", common.ErrConflict, http.StatusConflict, "already exists"},
		{"internal", fmt.Errorf("db error: boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestRespondJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, api.MessageResponse{Message: "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
