package controller

import (
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// Logout handles POST /logout, ending the current session.
type Logout struct {
	Deleter datasources.SessionDeleter
	Cookie  SessionCookie
}

func (c Logout) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := domain.SessionFromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := c.Deleter.DeleteSession(ctx, session.ID); err != nil {
		writeError(ctx, w, "unable to delete session", err)
		return
	}

	c.Cookie.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
