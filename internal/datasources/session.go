package datasources

import (
	"context"

	"github.com/jbeshir/procrastination-facts/internal/domain"
)

// SessionCreator starts a new session for a user and returns it with its id set.
type SessionCreator interface {
	CreateSession(ctx context.Context, userID int64, username string) (domain.Session, error)
}

// SessionGetter returns domain.ErrNotFound if the session does not exist or has expired.
type SessionGetter interface {
	GetSession(ctx context.Context, sessionID string) (domain.Session, error)
}

// LastServedTitleSetter records the title most recently served in a session.
type LastServedTitleSetter interface {
	SetLastServedTitle(ctx context.Context, sessionID string, titleID int64) error
}

type SessionDeleter interface {
	DeleteSession(ctx context.Context, sessionID string) error
}

type SessionRepository interface {
	SessionCreator
	SessionGetter
	LastServedTitleSetter
	SessionDeleter
}
