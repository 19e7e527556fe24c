package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inbox-admin/internal/adapter"
	"github.com/MKhiriev/inbox-admin/internal/app"
	"github.com/MKhiriev/inbox-admin/internal/cache"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/service"
	"github.com/MKhiriev/inbox-admin/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidFields: http.StatusBadRequest,

	adapter.ErrUnauthenticated:   http.StatusUnauthorized,
	adapter.ErrNotFound:          http.StatusNotFound,
	adapter.ErrUnreachable:       http.StatusBadGateway,
	adapter.ErrMalformedResponse: http.StatusBadGateway,

	cache.ErrConflict:    http.StatusConflict,
	cache.ErrUnsupported: http.StatusNotImplemented,
}

// statusFromError maps err onto a response status. A remote error keeps
// the status the upstream service answered with.
func statusFromError(err error) int {
	var remoteErr *adapter.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Status >= http.StatusBadRequest {
		return remoteErr.Status
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response text for err. Unexpected failures
// are not described to the caller.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return app.Describe(err)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, messageFromError(err, status), status)
}
