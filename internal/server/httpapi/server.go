package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server/services"
)

// Handler bundles the services behind the REST API.
type Handler struct {
	users     *services.UserService
	contents  *services.ContentService
	templates *services.TemplateService
	admin     *services.AdminService
	options   *services.OptionsService
	logger    logging.Logger
}

func NewHandler(users *services.UserService, contents *services.ContentService,
	templates *services.TemplateService, admin *services.AdminService,
	options *services.OptionsService, logger logging.Logger) *Handler {
	return &Handler{
		users:     users,
		contents:  contents,
		templates: templates,
		admin:     admin,
		options:   options,
		logger:    logger,
	}
}

// Router assembles the full route tree. Generation is rate limited per IP
// because each call costs an upstream model request.
func (h *Handler) Router(secretKey []byte, generatePerMinute int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/health", h.handleHealth)

	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Get("/languages", h.handleLanguages)
	r.Get("/tones", h.handleTones)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(secretKey))

		r.Get("/auth/me", h.handleMe)

		r.With(httprate.LimitByIP(generatePerMinute, time.Minute)).
			Post("/generate", h.handleGenerate)

		r.Get("/history", h.handleHistory)
		r.Get("/content/{id}", h.handleGetContent)
		r.Put("/content/{id}", h.handleUpdateContent)
		r.Delete("/content/{id}", h.handleDeleteContent)
		r.Get("/export/{id}/{format}", h.handleExport)

		r.Get("/templates", h.handleListTemplates)
		r.Post("/templates", h.handleCreateTemplate)
		r.Delete("/templates/{id}", h.handleDeleteTemplate)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/dashboard", h.handleDashboard)

			r.Get("/users", h.handleAdminListUsers)
			r.Put("/users/{id}", h.handleAdminUpdateUser)
			r.Delete("/users/{id}", h.handleAdminDeleteUser)
			r.Put("/users/{id}/toggle-active", h.handleAdminToggleActive)
			r.Put("/users/{id}/toggle-admin", h.handleAdminToggleAdmin)
			r.Post("/users/{id}/reset-password", h.handleAdminResetPassword)
			r.Post("/users/bulk-delete", h.handleAdminBulkDeleteUsers)

			r.Get("/contents", h.handleAdminListContents)
			r.Delete("/contents/{id}", h.handleAdminDeleteContent)
			r.Post("/contents/bulk-delete", h.handleAdminBulkDeleteContents)

			r.Get("/templates", h.handleAdminListTemplates)
			r.Delete("/templates/{id}", h.handleAdminDeleteTemplate)

			r.Get("/system/health", h.handleSystemHealth)
			r.Get("/system/stats", h.handleSystemStats)
		})
	})

	return r
}
