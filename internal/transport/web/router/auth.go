package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/jbeshir/procrastination-facts/internal/transport/web/controller"
)

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (no credentials of its type).
// Returns a session, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*domain.Session, error)

// NewAuthMiddleware creates a middleware that attaches the caller's session using the given validators.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				session, err := validate(r)
				if session == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)

					status, message := http.StatusUnauthorized, "unauthenticated"
					if errors.Is(err, domain.ErrUpstreamUnavailable) {
						status, message = http.StatusBadGateway, "upstream service unavailable"
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(status)
					_ = json.NewEncoder(w).Encode(controller.ErrorResponse{Error: message})
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("user_id", session.UserID)
				ctx := domain.ContextWithLogger(r.Context(), logger)
				ctx = domain.ContextWithSession(ctx, *session)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched, continue without a session (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewSessionCookieValidator creates a validator for the session cookie.
// Unknown or expired session ids are treated as no session at all, so a
// stale cookie never blocks public endpoints.
func NewSessionCookieValidator(sessions datasources.SessionGetter) AuthValidator {
	return func(r *http.Request) (*domain.Session, error) {
		cookie, err := r.Cookie(controller.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return nil, nil
		}

		session, err := sessions.GetSession(r.Context(), cookie.Value)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading session: %w", err)
		}

		return &session, nil
	}
}
