package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/inbox-admin/internal/app"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/utils"
	"github.com/MKhiriev/inbox-admin/models"
	"github.com/go-chi/chi/v5"
)

// listBody is the response shape of every collection route.
type listBody struct {
	Payload []models.Fields `json:"payload"`
}

// itemBody is the response shape of every single-resource route.
type itemBody struct {
	Payload models.Fields `json:"payload"`
}

func (h *Handler) listResources(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api, ok := h.resourceAPI(w, r, kind)
		if !ok {
			return
		}

		items, err := api.List(r.Context())
		if err != nil {
			h.writeServiceError(w, r, err, "error listing "+kind.String())
			return
		}

		payload := make([]models.Fields, 0, len(items))
		for _, item := range items {
			payload = append(payload, resourcePayload(item))
		}
		utils.WriteJSON(w, listBody{Payload: payload}, http.StatusOK)
	}
}

func (h *Handler) createResource(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api, ok := h.resourceAPI(w, r, kind)
		if !ok {
			return
		}

		fields, ok := decodeFields(w, r)
		if !ok {
			return
		}

		created, err := api.Create(r.Context(), fields)
		if err != nil {
			h.writeServiceError(w, r, err, "error creating "+kind.String())
			return
		}

		utils.WriteJSON(w, itemBody{Payload: resourcePayload(created)}, http.StatusCreated)
	}
}

func (h *Handler) updateResource(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api, ok := h.resourceAPI(w, r, kind)
		if !ok {
			return
		}

		fields, ok := decodeFields(w, r)
		if !ok {
			return
		}

		updated, err := api.Update(r.Context(), chi.URLParam(r, "id"), fields)
		if err != nil {
			h.writeServiceError(w, r, err, "error updating "+kind.String())
			return
		}

		utils.WriteJSON(w, itemBody{Payload: resourcePayload(updated)}, http.StatusOK)
	}
}

func (h *Handler) deleteResource(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api, ok := h.resourceAPI(w, r, kind)
		if !ok {
			return
		}

		if err := api.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			h.writeServiceError(w, r, err, "error deleting "+kind.String())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) resourceAction(kind models.Kind, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api, ok := h.resourceAPI(w, r, kind)
		if !ok {
			return
		}

		actionAPI, ok := api.(cache.ActionAPI)
		if !ok {
			h.writeServiceError(w, r, cache.ErrUnsupported, action+" on "+kind.String())
			return
		}

		id := chi.URLParam(r, "id")
		changed, err := actionAPI.Action(r.Context(), id, action)
		if err != nil {
			h.writeServiceError(w, r, err, "error running "+action+" on "+kind.String())
			return
		}

		payload := changed.Clone()
		payload["id"] = id
		utils.WriteJSON(w, itemBody{Payload: payload}, http.StatusOK)
	}
}

func (h *Handler) resourceAPI(w http.ResponseWriter, r *http.Request, kind models.Kind) (cache.ResourceAPI, bool) {
	api, ok := h.services.ByKind(kind)
	if !ok {
		logger.FromRequest(r).Warn().Str("kind", kind.String()).Msg("resource kind is not configured")
		utils.WriteError(w, app.MsgUnknownKind, http.StatusServiceUnavailable)
		return nil, false
	}
	return api, true
}

// decodeFields reads a JSON object from the request body. An empty body is
// accepted as no fields.
func decodeFields(w http.ResponseWriter, r *http.Request) (models.Fields, bool) {
	var fields models.Fields
	err := json.NewDecoder(r.Body).Decode(&fields)
	switch {
	case errors.Is(err, io.EOF):
		return models.Fields{}, true
	case err != nil:
		logger.FromRequest(r).Err(err).Str("func", "decodeFields").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return nil, false
	}
	if fields == nil {
		fields = models.Fields{}
	}
	return fields, true
}

// resourcePayload flattens r into its fields with the id set.
func resourcePayload(r models.Resource) models.Fields {
	payload := r.Fields.Clone()
	payload["id"] = r.ID
	return payload
}
