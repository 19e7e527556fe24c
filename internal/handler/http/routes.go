package http

import (
	"net/http"

	"github.com/MKhiriev/inbox-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without caller token
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withCallerToken)

		r.Get("/api/status", h.getStatus)

		r.Get("/api/labels", h.listResources(models.KindLabels))
		r.Post("/api/labels", h.createResource(models.KindLabels))
		r.Put("/api/labels/{id}", h.updateResource(models.KindLabels))
		r.Patch("/api/labels/{id}", h.updateResource(models.KindLabels))
		r.Delete("/api/labels/{id}", h.deleteResource(models.KindLabels))

		r.Get("/api/inboxes", h.listResources(models.KindInboxes))
		r.Post("/api/inboxes", h.createResource(models.KindInboxes))
		r.Patch("/api/inboxes/{id}", h.updateResource(models.KindInboxes))
		r.Delete("/api/inboxes/{id}", h.deleteResource(models.KindInboxes))

		r.Get("/api/instances", h.listResources(models.KindInstances))
		r.Delete("/api/instances/{id}", h.deleteResource(models.KindInstances))
		r.Delete("/api/instances/{id}/logout", h.resourceAction(models.KindInstances, models.InstanceActionLogout))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return h.withCORS(router)
}
