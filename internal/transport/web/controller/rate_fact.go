package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/command"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// RateFactRequest is the JSON request body for rating the last served fact.
type RateFactRequest struct {
	Command string `json:"command"`
}

// RateFact handles POST /rate_fact.
type RateFact struct {
	RateCmd command.Command[command.RateFactRequest, command.Empty]
}

func (c RateFact) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	session, ok := domain.SessionFromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body RateFactRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rateCommand, err := domain.ParseRateCommand(body.Command)
	if err != nil {
		writeError(ctx, w, "invalid rate command", err)
		return
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("user_id", session.UserID, "command", rateCommand))

	if _, err := c.RateCmd.Execute(ctx, command.RateFactRequest{
		Session: session,
		Command: rateCommand,
	}); err != nil {
		writeError(ctx, w, "unable to rate fact", err)
		return
	}

	writeResultSuccess(ctx, w)
}
