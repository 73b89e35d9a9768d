// Package session stores per-client cart state server-side in Redis, keyed
// by a signed session token carried in a cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession is returned when no cart session exists for a token.
var ErrNoSession = errors.New("session not found")

type Manager struct {
	rdb    *redis.Client
	signer *Signer
	ttl    time.Duration
}

// NewManager creates a session manager backed by Redis.
func NewManager(addr, password string, db int, secret string, ttl time.Duration) (*Manager, error) {
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

	return &Manager{
		rdb:    rdb,
		signer: NewSigner(secret),
		ttl:    ttl,
	}, nil
}

// Close closes the Redis connection
func (m *Manager) Close() error {
	return m.rdb.Close()
}

// Issue mints a fresh session token and returns it along with its signed
// cookie value.
func (m *Manager) Issue() (token, cookie string) {
	return m.signer.Issue()
}

// Verify checks a signed cookie value and returns the embedded token.
func (m *Manager) Verify(cookie string) (string, bool) {
	return m.signer.Verify(cookie)
}

// Get loads the cart session for a token. ErrNoSession means the token has
// no stored state yet (or it expired).
func (m *Manager) Get(ctx context.Context, token string) (*models.CartSession, error) {
	data, err := m.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess models.CartSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &sess, nil
}

// Save writes the cart session back, refreshing its TTL. Concurrent saves
// for the same token are last-write-wins.
func (m *Manager) Save(ctx context.Context, token string, sess *models.CartSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := m.rdb.Set(ctx, sessionKey(token), data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session's stored state.
func (m *Manager) Delete(ctx context.Context, token string) error {
	return m.rdb.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
