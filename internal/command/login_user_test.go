package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/procrastination-facts/internal/datasources/mocks"
	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginUser_Execute(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{ID: 5, Username: "reader42", PasswordHash: string(hash)}

	cases := []struct {
		name        string
		password    string
		user        domain.User
		getErr      error
		skipSession bool
		wantErr     error
		errContains string
	}{
		{
			name:     "correct_password",
			password: "Secret123",
			user:     user,
		},
		{
			name:        "wrong_password",
			password:    "Secret124",
			user:        user,
			skipSession: true,
			wantErr:     domain.ErrInvalidCredentials,
		},
		{
			name:        "unknown_user",
			password:    "Secret123",
			getErr:      domain.ErrUserNotFound,
			skipSession: true,
			wantErr:     domain.ErrInvalidCredentials,
		},
		{
			name:        "store_error",
			password:    "Secret123",
			getErr:      errors.New("database error"),
			skipSession: true,
			errContains: "database error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserByUsernameGetter(t)
			sessions := mocks.NewMockSessionCreator(t)

			users.EXPECT().GetUserByUsername(mock.Anything, "reader42").Return(tc.user, tc.getErr)
			if !tc.skipSession {
				sessions.EXPECT().CreateSession(mock.Anything, int64(5), "reader42").
					Return(domain.Session{ID: "sess", UserID: 5, Username: "reader42"}, nil)
			}

			session, err := NewLoginUser(users, sessions).Execute(testContext(), LoginUserRequest{
				Username: "reader42",
				Password: tc.password,
			})

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, domain.ErrUnauthenticated)
			case tc.errContains != "":
				assert.ErrorContains(t, err, tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, "sess", session.ID)
			}
		})
	}
}
