package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

func (h *Handler) corsHeaders() []string {
	return []string{"Content-Type", "Authorization", h.callerHeader}
}

// withCORS applies the CORS contract to every response. Preflight requests
// are answered with 204 for any path and never reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowMethods := strings.Join(corsMethods, ", ")
	allowHeaders := strings.Join(h.corsHeaders(), ", ")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods(corsMethods),
		handlers.AllowedHeaders(h.corsHeaders()),
		handlers.ExposedHeaders([]string{traceIDHeader}),
	)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", allowMethods)
		header.Set("Access-Control-Allow-Headers", allowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		cors.ServeHTTP(w, r)
	})
}
