package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

// Manager holds the acting identity for each client session as a
// token-keyed JSON record in redis. At most one user per token; an
// unknown token means anonymous.
type Manager struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewManager connects to redis and returns a session manager.
func NewManager(addr, password string, db int, ttl time.Duration) (*Manager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Manager{rdb: rdb, ttl: ttl, logger: util.GetLogger()}, nil
}

// Close closes the redis connection
func (m *Manager) Close() error {
	return m.rdb.Close()
}

// Create mints a fresh token and stores the user under it. The caller
// must pass a sanitized user; whatever is stored here is what Resolve
// hands back to request handlers.
func (m *Manager) Create(ctx context.Context, user models.User) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session user: %w", err)
	}

	token := uuid.New().String()
	if err := m.rdb.Set(ctx, keyPrefix+token, payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user behind a token, or nil for an unknown token.
// A corrupted session record is deleted and treated as anonymous rather
// than surfaced as an error.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.User, error) {
	payload, err := m.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		m.logger.Warn("Dropping corrupted session record", zap.Error(err))
		_ = m.rdb.Del(ctx, keyPrefix+token).Err()
		return nil, nil
	}
	return &user, nil
}

// Destroy removes the session for a token. Unknown tokens are a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.rdb.Del(ctx, keyPrefix+token).Err()
}

// IsAdmin reports whether the resolved identity holds the admin role.
// Role is binary; there is no separate permission model.
func IsAdmin(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}
