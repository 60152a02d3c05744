package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apetrenko/contentgen/internal/api"
	"github.com/apetrenko/contentgen/internal/common"
)

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", common.ErrValidation)
	}
	return id, nil
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req api.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	c, err := h.contents.Generate(r.Context(), claims.UserID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	items, err := h.contents.History(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetContent(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.contents.Get(r.Context(), claims.UserID, claims.IsAdmin, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req api.UpdateContentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	c, err := h.contents.Update(r.Context(), claims.UserID, claims.IsAdmin, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.contents.Delete(r.Context(), claims.UserID, claims.IsAdmin, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "content deleted"})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	file, err := h.contents.Export(r.Context(), claims.UserID, claims.IsAdmin, id, chi.URLParam(r, "format"))
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
