package httpapi

import (
	"net/http"

	"github.com/apetrenko/contentgen/internal/api"
)

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	items, err := h.templates.List(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req api.CreateTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	t, err := h.templates.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.templates.Delete(r.Context(), claims.UserID, claims.IsAdmin, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "template deleted"})
}
