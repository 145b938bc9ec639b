package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// RegisterUser validates a registration, stores the user with a bcrypt
// password hash, and starts a session for them.
type RegisterUser struct {
	Users      datasources.UserCreator
	Sessions   datasources.SessionCreator
	BcryptCost int
}

// NewRegisterUser creates a properly initialized RegisterUser command.
func NewRegisterUser(
	users datasources.UserCreator,
	sessions datasources.SessionCreator,
	bcryptCost int,
) *RegisterUser {
	return &RegisterUser{
		Users:      users,
		Sessions:   sessions,
		BcryptCost: bcryptCost,
	}
}

func (c *RegisterUser) Execute(ctx context.Context, req domain.Registration) (domain.Session, error) {
	if err := req.Validate(); err != nil {
		return domain.Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.BcryptCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("hashing password: %w", err)
	}

	userID, err := c.Users.CreateUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		TelegramID:   req.TelegramID,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("creating user: %w", err)
	}

	session, err := c.Sessions.CreateSession(ctx, userID, req.Username)
	if err != nil {
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "registered user", "user_id", userID)

	return session, nil
}
