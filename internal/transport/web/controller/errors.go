package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultResponse is the JSON body of a successful state change.
type ResultResponse struct {
	Result int `json:"result"`
}

// resultSuccess is the success code clients check for.
const resultSuccess = 500

// publicErrors lists the specific errors whose text may be shown to clients,
// most specific first. Anything not listed is reported by class only.
var publicErrors = []struct {
	err     error
	message string
}{
	{domain.ErrInvalidCredentials, "Incorrect login or password"},
	{domain.ErrUserAlreadyExists, "This login already exist"},
	{domain.ErrPasswordMismatch, "Typed passwords do not match up"},
	{domain.ErrInvalidSearchType, "search_type must be one of [new, top]"},
	{domain.ErrInvalidRateCommand, "command must be one of [Like, Dislike]"},
	{domain.ErrInvalidUsername, "username must be 3-30 latin letters or digits"},
	{domain.ErrInvalidPassword, "password must be 8-16 characters and contain an uppercase letter and a digit"},
	{domain.ErrInvalidEmail, "email address is not valid"},
	{domain.ErrNoServedTitle, "no fact has been served in this session"},
	{domain.ErrNoCategoriesAvailable, "no categories available"},
	{domain.ErrCategoryEmpty, "no facts available, try again"},
	{domain.ErrTitleNotFound, "fact no longer exists"},
	{domain.ErrConcurrentUpdate, "concurrent update, try again"},
}

var errorClasses = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrValidation, http.StatusBadRequest, "invalid request"},
	{domain.ErrNotFound, http.StatusNotFound, "not found"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUpstreamUnavailable, http.StatusBadGateway, "upstream service unavailable"},
}

// errorStatus maps an error to the HTTP status and the message safe to return.
func errorStatus(err error) (int, string) {
	for _, class := range errorClasses {
		if !errors.Is(err, class.err) {
			continue
		}
		for _, public := range publicErrors {
			if errors.Is(err, public.err) {
				return class.status, public.message
			}
		}
		return class.status, class.message
	}

	return http.StatusInternalServerError, "internal error"
}

func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
	} else {
		logger.WarnContext(ctx, msg, "error", err)
	}

	writeJSON(ctx, w, status, ErrorResponse{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeResultSuccess(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusOK, ResultResponse{Result: resultSuccess})
}
