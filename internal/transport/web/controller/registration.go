package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// RegistrationRequest is the JSON request body for creating an account.
type RegistrationRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
	Email            string `json:"email"`
	TelegramID       *int64 `json:"telegram_id,omitempty"`
}

// Registration handles POST /registration, creating the user and logging them in.
type Registration struct {
	RegisterCmd command.Command[domain.Registration, domain.Session]
	Cookie      SessionCookie
}

func (c Registration) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("username", body.Username))

	session, err := c.RegisterCmd.Execute(ctx, domain.Registration{
		Username:         body.Username,
		Password:         body.Password,
		RepeatedPassword: body.RepeatedPassword,
		Email:            body.Email,
		TelegramID:       body.TelegramID,
	})
	if err != nil {
		writeError(ctx, w, "unable to register user", err)
		return
	}

	c.Cookie.Set(w, session.ID)
	writeResultSuccess(ctx, w)
}
