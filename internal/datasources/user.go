package datasources

import (
	"context"

	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// UserCreator creates a user and returns its id.
// Returns domain.ErrUserAlreadyExists if the username, email or telegram id is taken.
type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User) (int64, error)
}

// UserByUsernameGetter returns domain.ErrUserNotFound if there is no such user.
type UserByUsernameGetter interface {
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserRepository interface {
	UserCreator
	UserByUsernameGetter
}
