package httpapi

import (
	"net/http"

	"github.com/apetrenko/contentgen/internal/api"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.admin.Dashboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.admin.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *Handler) handleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req api.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	u, err := h.admin.UpdateUser(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (h *Handler) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.admin.DeleteUser(r.Context(), claims.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "user deleted"})
}

func (h *Handler) handleAdminToggleActive(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	active, err := h.admin.ToggleActive(r.Context(), claims.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"is_active": active})
}

func (h *Handler) handleAdminToggleAdmin(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	isAdmin, err := h.admin.ToggleAdmin(r.Context(), claims.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"is_admin": isAdmin})
}

func (h *Handler) handleAdminResetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req api.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.admin.ResetPassword(r.Context(), id, &req); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "password reset"})
}

func (h *Handler) handleAdminBulkDeleteUsers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req api.BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	n, err := h.admin.BulkDeleteUsers(r.Context(), claims.UserID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.BulkDeleteResponse{DeletedCount: n})
}

func (h *Handler) handleAdminListContents(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListContents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleAdminDeleteContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.admin.DeleteContent(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "content deleted"})
}

func (h *Handler) handleAdminBulkDeleteContents(w http.ResponseWriter, r *http.Request) {
	var req api.BulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	n, err := h.admin.BulkDeleteContents(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.BulkDeleteResponse{DeletedCount: n})
}

func (h *Handler) handleAdminListTemplates(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListTemplates(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleAdminDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.admin.DeleteTemplate(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, api.MessageResponse{Message: "template deleted"})
}

func (h *Handler) handleSystemHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.admin.SystemHealth(r.Context()))
}

func (h *Handler) handleSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.SystemStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
