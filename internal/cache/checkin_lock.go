package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"credopass/internal/lib"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotHeld = errors.New("checkin lock is not held by this token")

// unlockScript deletes the key only while it still holds the caller's token.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type lockClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// CheckinLock is a short-lived per (event, user) lock that keeps concurrent
// duplicate scans from racing each other into the database.
type CheckinLock struct {
	client lockClient
	ttl    time.Duration
}

func NewCheckinLock(client lockClient, ttl time.Duration) *CheckinLock {
	return &CheckinLock{
		client: client,
		ttl:    ttl,
	}
}

func checkinKey(eventID, userID uuid.UUID) string {
	return fmt.Sprintf("checkin:%s:%s", eventID, userID)
}

// Acquire returns false when another check-in for the pair is in flight.
// The returned token must be passed to Release.
func (l *CheckinLock) Acquire(ctx context.Context, eventID, userID uuid.UUID) (string, bool, error) {
	const op = "cache.CheckinLock.Acquire"

	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, checkinKey(eventID, userID), token, l.ttl).Result()
	if err != nil {
		return "", false, lib.Err(op, err)
	}
	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// Release drops the lock if it is still held with token. A lock that expired
// and was taken by someone else is left alone and ErrLockNotHeld is returned.
func (l *CheckinLock) Release(ctx context.Context, eventID, userID uuid.UUID, token string) error {
	const op = "cache.CheckinLock.Release"

	n, err := unlockScript.Run(ctx, l.client, []string{checkinKey(eventID, userID)}, token).Int64()
	if err != nil {
		return lib.Err(op, err)
	}
	if n == 0 {
		return lib.Err(op, ErrLockNotHeld)
	}

	return nil
}
