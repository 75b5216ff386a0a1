// Package chatlock serializes agent turns per conversation scope using a
// Redis lease. Exactly one turn runs per (chat, thread) at a time; a
// heartbeat extends the lease while the turn streams, and crashes release
// it through TTL expiry.
package chatlock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Sentinel errors.
var (
	// ErrLockNotAcquired indicates another turn holds the conversation
	// lock and the acquisition budget ran out.
	ErrLockNotAcquired = errors.New("conversation lock not acquired")

	// ErrLockLost indicates the lease was no longer ours on release or
	// extend — another holder took over after our TTL lapsed.
	ErrLockLost = errors.New("conversation lock lost")
)

// Lease parameters.
const (
	// DefaultTTL bounds how long a crashed holder blocks a conversation.
	DefaultTTL = 90 * time.Second

	// heartbeatInterval is how often a held lease is extended.
	heartbeatInterval = 10 * time.Second

	acquireAttempts = 60
	acquireDelay    = 250 * time.Millisecond
)

// releaseScript deletes the lock only if the caller still owns it
// (compare-and-delete), so a slow turn cannot release a successor's lease.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// extendScript refreshes the TTL only if the caller still owns the lock.
var extendScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)

// Locker acquires and manages per-conversation leases.
type Locker struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewLocker creates a Locker with the default lease TTL.
func NewLocker(rdb redis.UniversalClient) *Locker {
	return &Locker{rdb: rdb, ttl: DefaultTTL}
}

// Lease is a held conversation lock. Release must be called exactly once;
// it also stops the heartbeat.
type Lease struct {
	locker *Locker
	key    string
	token  string

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// Acquire takes the lock for a conversation scope, retrying for up to
// acquireAttempts × acquireDelay (~15s) before giving up with
// ErrLockNotAcquired. On success it starts the heartbeat goroutine.
func (l *Locker) Acquire(ctx context.Context, chatID, threadID int64) (*Lease, error) {
	key := lockKey(chatID, threadID)
	token := uuid.New().String()

	for attempt := 0; attempt < acquireAttempts; attempt++ {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			lease := &Lease{
				locker: l,
				key:    key,
				token:  token,
				stopCh: make(chan struct{}),
			}
			lease.wg.Add(1)
			go lease.heartbeat()
			return lease, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(acquireDelay):
		}
	}
	return nil, ErrLockNotAcquired
}

// Release stops the heartbeat and deletes the lock if still owned.
// Returns ErrLockLost when the lease had already expired and moved on.
func (le *Lease) Release(ctx context.Context) error {
	le.stopOnce.Do(func() { close(le.stopCh) })
	le.wg.Wait()

	n, err := releaseScript.Run(ctx, le.locker.rdb, []string{le.key}, le.token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", le.key, err)
	}
	if n == 0 {
		return ErrLockLost
	}
	return nil
}

// heartbeat extends the lease every heartbeatInterval until released.
func (le *Lease) heartbeat() {
	defer le.wg.Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-le.stopCh:
			return
		case <-ticker.C:
			n, err := extendScript.Run(context.Background(), le.locker.rdb,
				[]string{le.key}, le.token, le.locker.ttl.Milliseconds()).Int()
			if err != nil {
				slog.Warn("Conversation lock heartbeat failed", "key", le.key, "error", err)
				continue
			}
			if n == 0 {
				// Lease expired under us. Stop extending; the running
				// turn finishes but a parallel turn may already exist.
				slog.Warn("Conversation lock lost during heartbeat", "key", le.key)
				return
			}
		}
	}
}

func lockKey(chatID, threadID int64) string {
	if threadID == 0 {
		return fmt.Sprintf("chatlock:%d", chatID)
	}
	return fmt.Sprintf("chatlock:%d:%d", chatID, threadID)
}
