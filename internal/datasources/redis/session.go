package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jbeshir/procrastination-facts/internal/datasources"
	"github.com/jbeshir/procrastination-facts/internal/domain"
)

var _ datasources.SessionRepository = (*SessionStore)(nil)

const (
	fieldUserID            = "user_id"
	fieldUsername          = "username"
	fieldLastServedTitleID = "last_served_title_id"
)

// setLastServedScript only touches sessions that still exist, so an expired
// session is never resurrected without its user fields.
var setLastServedScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('EXPIRE', KEYS[1], ARGV[3])
return 1
`)

// SessionStore keeps sessions as Redis hashes under session:<id>, each expiring
// after TTL without activity.
type SessionStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func NewSessionStore(rdb *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *SessionStore) CreateSession(ctx context.Context, userID int64, username string) (domain.Session, error) {
	session := domain.Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
	}

	key := sessionKey(session.ID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldUserID, userID, fieldUsername, username)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: storing session: %w", domain.ErrUpstreamUnavailable, err)
	}

	return session, nil
}

func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	key := sessionKey(sessionID)

	var fields *goredis.MapStringStringCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		fields = pipe.HGetAll(ctx, key)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: reading session: %w", domain.ErrUpstreamUnavailable, err)
	}

	values := fields.Val()
	if len(values) == 0 {
		return domain.Session{}, fmt.Errorf("%w: session", domain.ErrNotFound)
	}

	return parseSession(sessionID, values)
}

func parseSession(sessionID string, values map[string]string) (domain.Session, error) {
	userID, err := strconv.ParseInt(values[fieldUserID], 10, 64)
	if err != nil {
		return domain.Session{}, fmt.Errorf("parsing session user id: %w", err)
	}

	session := domain.Session{
		ID:       sessionID,
		UserID:   userID,
		Username: values[fieldUsername],
	}

	if raw, ok := values[fieldLastServedTitleID]; ok {
		titleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Session{}, fmt.Errorf("parsing session last served title id: %w", err)
		}
		session.LastServedTitleID = &titleID
	}

	return session, nil
}

func (s *SessionStore) SetLastServedTitle(ctx context.Context, sessionID string, titleID int64) error {
	updated, err := setLastServedScript.Run(ctx, s.rdb,
		[]string{sessionKey(sessionID)},
		fieldLastServedTitleID, titleID, int64(s.ttl.Seconds()),
	).Int()
	if err != nil {
		return fmt.Errorf("%w: updating session: %w", domain.ErrUpstreamUnavailable, err)
	}
	if updated == 0 {
		return fmt.Errorf("%w: session", domain.ErrNotFound)
	}
	return nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("%w: deleting session: %w", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}
