package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SubmitLockTTL bounds how long an in-flight submission holds its lock.
const SubmitLockTTL = 30 * time.Second

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockStore handles short-lived submission locks in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// SubmitLock is a held lock. Release it once the submission is settled.
type SubmitLock struct {
	key   string
	token string
}

// AcquireSubmitLock attempts to lock key for ttl.
// Returns nil if the lock is already held elsewhere.
func (s *LockStore) AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (*SubmitLock, error) {
	if ttl <= 0 {
		ttl = SubmitLockTTL
	}
	lock := &SubmitLock{key: key + ":lock", token: uuid.New().String()}

	ok, err := s.client.SetNX(ctx, lock.key, lock.token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return lock, nil
}

// ReleaseSubmitLock releases lock if it has not expired and been retaken.
func (s *LockStore) ReleaseSubmitLock(ctx context.Context, lock *SubmitLock) error {
	if lock == nil {
		return nil
	}
	return releaseScript.Run(ctx, s.client, []string{lock.key}, lock.token).Err()
}
