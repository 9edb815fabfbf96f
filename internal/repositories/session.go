package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-forum/internal/logger"
)

// SessionRepository stores per-browser-session capability flags in Redis.
// Keys carry the session TTL so abandoned flows age out on their own.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for session keys
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID, field string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, field)
}

// SetChangeEmailAccess grants or clears the access_change_email capability.
func (r *SessionRepository) SetChangeEmailAccess(ctx context.Context, sessionID string, granted bool) error {
	key := sessionKey(sessionID, "access_change_email")

	var err error
	if granted {
		err = r.client.Set(ctx, key, "1", r.exp).Err()
	} else {
		err = r.client.Del(ctx, key).Err()
	}

	logger.Log.Infow("session",
		"key", key,
		"granted", granted,
		"error", err,
	)

	return err
}

// GetChangeEmailAccess reports whether the capability is currently granted.
func (r *SessionRepository) GetChangeEmailAccess(ctx context.Context, sessionID string) (bool, error) {
	key := sessionKey(sessionID, "access_change_email")

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Infow("session",
			"key", key,
			"error", err,
		)
		return false, err
	}

	return val == "1", nil
}

// SetNewEmail stashes the pending address of an email-change flow.
func (r *SessionRepository) SetNewEmail(ctx context.Context, sessionID, email string) error {
	key := sessionKey(sessionID, "new_email")
	err := r.client.Set(ctx, key, email, r.exp).Err()

	logger.Log.Infow("session",
		"key", key,
		"error", err,
	)

	return err
}

// GetNewEmail returns the pending address, or "" when none is stashed.
func (r *SessionRepository) GetNewEmail(ctx context.Context, sessionID string) (string, error) {
	key := sessionKey(sessionID, "new_email")

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		logger.Log.Infow("session",
			"key", key,
			"error", err,
		)
		return "", err
	}

	return val, nil
}

// DeleteNewEmail purges the pending address.
func (r *SessionRepository) DeleteNewEmail(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID, "new_email")
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session",
		"key", key,
		"error", err,
	)

	return err
}
