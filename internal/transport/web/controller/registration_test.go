package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cmdmocks "github.com/jbeshir/procrastination-facts/internal/command/mocks"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistration_ServeHTTP(t *testing.T) {
	telegramID := int64(424242)

	cases := []struct {
		name         string
		body         string
		registration domain.Registration
		registerErr  error
		skipRegister bool
		wantStatus   int
		wantBody     string
		wantCookie   bool
	}{
		{
			name: "registers",
			body: `{"username":"reader42","password":"Secret123","repeated_password":"Secret123",` +
				`"email":"reader42@example.com"}`,
			registration: domain.Registration{
				Username:         "reader42",
				Password:         "Secret123",
				RepeatedPassword: "Secret123",
				Email:            "reader42@example.com",
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"result":500}`,
			wantCookie: true,
		},
		{
			name: "registers_with_telegram_id",
			body: `{"username":"reader42","password":"Secret123","repeated_password":"Secret123",` +
				`"email":"reader42@example.com","telegram_id":424242}`,
			registration: domain.Registration{
				Username:         "reader42",
				Password:         "Secret123",
				RepeatedPassword: "Secret123",
				Email:            "reader42@example.com",
				TelegramID:       &telegramID,
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"result":500}`,
			wantCookie: true,
		},
		{
			name: "passwords_differ",
			body: `{"username":"reader42","password":"Secret123","repeated_password":"Secret124",` +
				`"email":"reader42@example.com"}`,
			registration: domain.Registration{
				Username:         "reader42",
				Password:         "Secret123",
				RepeatedPassword: "Secret124",
				Email:            "reader42@example.com",
			},
			registerErr: domain.ErrPasswordMismatch,
			wantStatus:  http.StatusBadRequest,
			wantBody:    `{"error":"Typed passwords do not match up"}`,
		},
		{
			name: "login_taken",
			body: `{"username":"reader42","password":"Secret123","repeated_password":"Secret123",` +
				`"email":"reader42@example.com"}`,
			registration: domain.Registration{
				Username:         "reader42",
				Password:         "Secret123",
				RepeatedPassword: "Secret123",
				Email:            "reader42@example.com",
			},
			registerErr: domain.ErrUserAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantBody:    `{"error":"This login already exist"}`,
		},
		{
			name:         "malformed_body",
			body:         `not json`,
			skipRegister: true,
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"invalid request body"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registerCmd := cmdmocks.NewMockCommand[domain.Registration, domain.Session](t)
			if !tc.skipRegister {
				registerCmd.EXPECT().
					Execute(mock.Anything, tc.registration).
					Return(domain.Session{ID: "new-session", UserID: 5}, tc.registerErr)
			}

			ctrl := Registration{
				RegisterCmd: registerCmd,
				Cookie:      SessionCookie{MaxAge: time.Hour},
			}

			req := httptest.NewRequest(http.MethodPost, "/registration", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())

			cookies := rec.Result().Cookies()
			if !tc.wantCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, SessionCookieName, cookies[0].Name)
			assert.Equal(t, "new-session", cookies[0].Value)
			assert.Equal(t, 3600, cookies[0].MaxAge)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}
