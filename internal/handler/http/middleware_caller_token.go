package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/inbox-admin/internal/app"
	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/internal/utils"
)

// withCallerToken rejects requests without the caller token header with
// 401 before anything is forwarded. The token is stored in the request
// context so that the Chatwoot transport sends it as the access token.
func (h *Handler) withCallerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(h.callerHeader))
		if token == "" {
			logger.FromRequest(r).Err(ErrMissingCallerToken).Str("header", h.callerHeader).Send()
			utils.WriteError(w, app.MsgMissingCallerToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccessToken(r.Context(), token)))
	})
}
