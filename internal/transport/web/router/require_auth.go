package router

import (
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.SessionFromContext(r.Context()); !ok {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint requiring a session without one")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"login required"}` + "\n"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
