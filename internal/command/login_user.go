package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// LoginUserRequest is the request for the LoginUser command.
type LoginUserRequest struct {
	Username string
	Password string
}

// LoginUser checks credentials and starts a new session.
// Unknown usernames and wrong passwords both yield domain.ErrInvalidCredentials.
type LoginUser struct {
	Users    datasources.UserByUsernameGetter
	Sessions datasources.SessionCreator
}

// NewLoginUser creates a properly initialized LoginUser command.
func NewLoginUser(users datasources.UserByUsernameGetter, sessions datasources.SessionCreator) *LoginUser {
	return &LoginUser{
		Users:    users,
		Sessions: sessions,
	}
}

func (c *LoginUser) Execute(ctx context.Context, req LoginUserRequest) (domain.Session, error) {
	user, err := c.Users.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetching user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("comparing password hash: %w", err)
	}

	session, err := c.Sessions.CreateSession(ctx, user.ID, user.Username)
	if err != nil {
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}

	return session, nil
}
