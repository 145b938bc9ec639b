package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jbeshir/procrastination-facts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SessionStore {
	if testing.Short() {
		t.Skip("skipping Redis integration tests in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("skipping Redis integration tests without REDIS_ADDR")
	}

	rdb, err := Connect(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewSessionStore(rdb, time.Minute)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := t.Context()

	created, err := store.CreateSession(ctx, 42, "reader42")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.LastServedTitleID)

	got, err := store.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, store.SetLastServedTitle(ctx, created.ID, 7))

	got, err = store.GetSession(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastServedTitleID)
	assert.Equal(t, int64(7), *got.LastServedTitleID)

	require.NoError(t, store.DeleteSession(ctx, created.ID))

	_, err = store.GetSession(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.SetLastServedTitle(ctx, created.ID, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseSession(t *testing.T) {
	cases := []struct {
		name       string
		values     map[string]string
		wantTitle  *int64
		wantErr    bool
		wantUserID int64
	}{
		{
			name:       "without_served_title",
			values:     map[string]string{"user_id": "3", "username": "bob"},
			wantUserID: 3,
		},
		{
			name:       "with_served_title",
			values:     map[string]string{"user_id": "3", "username": "bob", "last_served_title_id": "11"},
			wantUserID: 3,
			wantTitle:  func() *int64 { v := int64(11); return &v }(),
		},
		{
			name:    "bad_user_id",
			values:  map[string]string{"user_id": "x", "username": "bob"},
			wantErr: true,
		},
		{
			name:    "bad_title_id",
			values:  map[string]string{"user_id": "3", "username": "bob", "last_served_title_id": "x"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := parseSession("abc", tc.values)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc", session.ID)
			assert.Equal(t, tc.wantUserID, session.UserID)
			assert.Equal(t, tc.wantTitle, session.LastServedTitleID)
		})
	}
}
