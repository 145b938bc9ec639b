package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jbeshir/procrastination-facts/internal/datasources/mysql/queries"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

func (r *Repository) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	var telegramID sql.NullInt64
	if user.TelegramID != nil {
		telegramID = sql.NullInt64{Int64: *user.TelegramID, Valid: true}
	}

	id, err := r.queries.CreateUser(ctx, queries.CreateUserParams{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
		TelegramID:   telegramID,
	})
	if isDuplicateEntry(err) {
		return 0, fmt.Errorf("creating user [%s]: %w", user.Username, domain.ErrUserAlreadyExists)
	}
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", mapStoreError(err))
	}
	return id, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by username: %w", mapStoreError(err))
	}

	user := domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Email:        row.Email,
		CreatedAt:    row.CreatedAt,
	}
	if row.TelegramID.Valid {
		user.TelegramID = &row.TelegramID.Int64
	}
	return user, nil
}
