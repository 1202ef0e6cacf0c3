package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes mounts the public read surface, the admin gate and the
// admin-gated content mutations.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", healthHandler(startupTime))

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Get("/dashboard/stats", handlers.dashboardHandler.getStats())

		r.Post("/admin/login", handlers.adminHandler.login())
		r.Post("/admin/logout", handlers.adminHandler.logout())
		r.Get("/admin/status", handlers.adminHandler.status())

		r.Post("/chat/message", handlers.chatHandler.postMessage())
		r.Get("/chat/history", handlers.chatHandler.getHistory())
		r.Post("/chat/reset", handlers.chatHandler.reset())

		r.Post("/contact", handlers.contactHandler.submit())
	})

	// Admin-gated content mutations (custom entries only)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireAdmin)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/certification", handlers.certificationHandler.createCertification())
		r.Put("/certification/{certificationID}", handlers.certificationHandler.updateCertification())
		r.Delete("/certification/{certificationID}", handlers.certificationHandler.deleteCertification())

		r.Post("/uploads", handlers.uploadHandler.upload())
		r.Get("/uploads", handlers.uploadHandler.list())
		r.Delete("/uploads/{uploadID}", handlers.uploadHandler.remove())
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":        "ok",
			"uptimeSeconds": int(time.Since(startupTime).Seconds()),
		})
	}
}
