package http

import (
	"net/http"

	"github.com/MKhiriev/inbox-admin/internal/utils"
	"github.com/MKhiriev/inbox-admin/models"
)

type serviceStatus struct {
	Service string `json:"service"`
	models.ConnectionState
}

type statusBody struct {
	Services []serviceStatus `json:"services"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	body := statusBody{Services: make([]serviceStatus, 0, len(h.statuses))}
	for _, source := range h.statuses {
		body.Services = append(body.Services, serviceStatus{
			Service:         source.Service(),
			ConnectionState: source.State(),
		})
	}
	utils.WriteJSON(w, body, http.StatusOK)
}
