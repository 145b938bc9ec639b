package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// LoginRequest is the JSON request body for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /login.
type Login struct {
	LoginCmd command.Command[command.LoginUserRequest, domain.Session]
	Cookie   SessionCookie
}

func (c Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("username", body.Username))

	session, err := c.LoginCmd.Execute(ctx, command.LoginUserRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(ctx, w, "unable to log in", err)
		return
	}

	c.Cookie.Set(w, session.ID)
	writeResultSuccess(ctx, w)
}
