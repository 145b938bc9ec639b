package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jbeshir/procrastination-facts/internal/command"
	cmdmocks "github.com/jbeshir/procrastination-facts/internal/command/mocks"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateFact_ServeHTTP(t *testing.T) {
	servedTitleID := int64(21)
	session := domain.Session{ID: "sess-1", UserID: 7, LastServedTitleID: &servedTitleID}

	cases := []struct {
		name         string
		body         string
		setupContext func(r *http.Request) *http.Request
		command      domain.RateCommand
		rateErr      error
		skipRate     bool
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "like",
			body:         `{"command":"Like"}`,
			setupContext: testContextWithSession(session),
			command:      domain.RateCommandLike,
			wantStatus:   http.StatusOK,
			wantBody:     `{"result":500}`,
		},
		{
			name:         "dislike",
			body:         `{"command":"Dislike"}`,
			setupContext: testContextWithSession(session),
			command:      domain.RateCommandDislike,
			wantStatus:   http.StatusOK,
			wantBody:     `{"result":500}`,
		},
		{
			name:         "lowercase_command_rejected",
			body:         `{"command":"like"}`,
			setupContext: testContextWithSession(session),
			skipRate:     true,
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"command must be one of [Like, Dislike]"}`,
		},
		{
			name:         "malformed_body",
			body:         `{"command":`,
			setupContext: testContextWithSession(session),
			skipRate:     true,
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"invalid request body"}`,
		},
		{
			name:         "no_session",
			body:         `{"command":"Like"}`,
			setupContext: testContext(),
			skipRate:     true,
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "nothing_served",
			body:         `{"command":"Like"}`,
			setupContext: testContextWithSession(session),
			command:      domain.RateCommandLike,
			rateErr:      domain.ErrNoServedTitle,
			wantStatus:   http.StatusNotFound,
			wantBody:     `{"error":"no fact has been served in this session"}`,
		},
		{
			name:         "concurrent_update",
			body:         `{"command":"Like"}`,
			setupContext: testContextWithSession(session),
			command:      domain.RateCommandLike,
			rateErr:      domain.ErrConcurrentUpdate,
			wantStatus:   http.StatusConflict,
			wantBody:     `{"error":"concurrent update, try again"}`,
		},
		{
			name:         "store_error",
			body:         `{"command":"Dislike"}`,
			setupContext: testContextWithSession(session),
			command:      domain.RateCommandDislike,
			rateErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
			wantBody:     `{"error":"internal error"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rateCmd := cmdmocks.NewMockCommand[command.RateFactRequest, command.Empty](t)
			if !tc.skipRate {
				rateCmd.EXPECT().
					Execute(mock.Anything, command.RateFactRequest{Session: session, Command: tc.command}).
					Return(command.Empty{}, tc.rateErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/rate_fact", strings.NewReader(tc.body))
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			RateFact{RateCmd: rateCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
