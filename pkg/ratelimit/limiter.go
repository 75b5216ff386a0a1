// Package ratelimit implements multi-dimensional admission control:
// a per-chat anti-flood window plus per-user burst/minute/daily quotas
// with a trusted-user tier.
//
// Counters are fixed windows backed by Redis. Increment and expiry run as
// one server-side script, so there is no race window between INCR and
// EXPIRE. On storage errors the limiter fails open: we prefer occasional
// over-admission to a total outage.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Denial reasons.
const (
	ReasonChatMinute   = "chat_minute"
	ReasonUserBurst    = "user_burst"
	ReasonUserMinute   = "user_minute"
	ReasonUserDaily    = "user_daily"
	ReasonStorageError = "storage_error"
)

// dailyTTLGrace pads the daily counter's TTL past midnight so a slow clock
// cannot expire the counter before the UTC day rolls over.
const dailyTTLGrace = 5 * time.Minute

// incrWithExpiry atomically increments a counter and sets its TTL on first
// use. Returns {count, ttl_seconds} in one round-trip.
var incrWithExpiry = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed           bool      `json:"allowed"`
	Reason            string    `json:"reason,omitempty"`
	RetryAfterSeconds int       `json:"retry_after_seconds,omitempty"`
	DailyUsed         int       `json:"daily_used,omitempty"`
	DailyLimit        int       `json:"daily_limit,omitempty"`
	ResetsAtUTC       time.Time `json:"resets_at_utc,omitempty"`
}

// Limiter gates admission to the agent pipeline.
type Limiter struct {
	rdb redis.UniversalClient
	cfg config.RateLimitConfig

	// now is swappable for tests.
	now func() time.Time
}

// NewLimiter creates a Limiter.
func NewLimiter(rdb redis.UniversalClient, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{rdb: rdb, cfg: cfg, now: time.Now}
}

// CheckInput describes one admission request.
type CheckInput struct {
	UserID int64
	ChatID int64

	// Exempt skips user quotas (bot commands). The chat flood gate still
	// applies.
	Exempt bool
}

// Check runs the full admission sequence: chat flood first, then the user
// quota ladder unless exempt.
func (l *Limiter) Check(ctx context.Context, in CheckInput) Decision {
	if d := l.CheckChatFlood(ctx, in.ChatID); !d.Allowed {
		return d
	}
	if in.Exempt {
		return Decision{Allowed: true}
	}
	return l.CheckUserTurn(ctx, in.UserID)
}

// CheckChatFlood increments the per-chat minute window. Tier-independent:
// trusted users do not raise the flood cap.
func (l *Limiter) CheckChatFlood(ctx context.Context, chatID int64) Decision {
	key := fmt.Sprintf("rl:chat:minute:%d", chatID)
	count, ttl, err := l.bump(ctx, key, l.cfg.MinuteWindow)
	if err != nil {
		return l.failOpen(err)
	}
	if count > l.cfg.ChatMinuteMax {
		return Decision{Allowed: false, Reason: ReasonChatMinute, RetryAfterSeconds: ttl}
	}
	return Decision{Allowed: true}
}

// CheckUserTurn increments the user's burst, minute, and daily windows and
// returns the first exceeded counter's denial. All three counters are
// incremented even when an earlier one denies — the user did send the
// message, and the windows must reflect that.
func (l *Limiter) CheckUserTurn(ctx context.Context, userID int64) Decision {
	mult := 1
	if l.cfg.IsTrusted(userID) {
		mult = l.cfg.TrustedMult
	}

	now := l.now().UTC()
	midnight := nextUTCMidnight(now)

	burstKey := fmt.Sprintf("rl:user:burst:%d", userID)
	minuteKey := fmt.Sprintf("rl:user:minute:%d", userID)
	dailyKey := fmt.Sprintf("rl:user:daily:%d:%s", userID, now.Format("2006-01-02"))
	dailyTTL := midnight.Sub(now) + dailyTTLGrace

	burstCount, burstTTL, err := l.bump(ctx, burstKey, l.cfg.BurstWindow)
	if err != nil {
		return l.failOpen(err)
	}
	minuteCount, minuteTTL, err := l.bump(ctx, minuteKey, l.cfg.MinuteWindow)
	if err != nil {
		return l.failOpen(err)
	}
	dailyCount, _, err := l.bump(ctx, dailyKey, dailyTTL)
	if err != nil {
		return l.failOpen(err)
	}

	if burstCount > l.cfg.FreeBurstMax*mult {
		return Decision{Allowed: false, Reason: ReasonUserBurst, RetryAfterSeconds: max(burstTTL, 1)}
	}
	if minuteCount > l.cfg.FreeMinuteMax*mult {
		return Decision{Allowed: false, Reason: ReasonUserMinute, RetryAfterSeconds: max(minuteTTL, 1)}
	}
	if dailyCount > l.cfg.FreeDailyMax*mult {
		return Decision{
			Allowed:     false,
			Reason:      ReasonUserDaily,
			DailyUsed:   dailyCount,
			DailyLimit:  l.cfg.FreeDailyMax * mult,
			ResetsAtUTC: midnight,
		}
	}
	return Decision{Allowed: true}
}

// ShouldNotify decides whether a denial should produce a user-visible
// notice. A per-(user, reason) cooldown key suppresses notice storms.
func (l *Limiter) ShouldNotify(ctx context.Context, userID int64, reason string) bool {
	key := fmt.Sprintf("rl:notice:%d:%s", userID, reason)
	ok, err := l.rdb.SetNX(ctx, key, 1, l.cfg.NoticeCooldown).Result()
	if err != nil {
		slog.Warn("Rate limit notice cooldown check failed", "user_id", userID, "error", err)
		return false
	}
	return ok
}

// bump runs the atomic INCR+EXPIRE script.
func (l *Limiter) bump(ctx context.Context, key string, window time.Duration) (count, ttlSeconds int, err error) {
	ttl := int(window.Seconds())
	if ttl < 1 {
		ttl = 1
	}
	res, err := incrWithExpiry.Run(ctx, l.rdb, []string{key}, ttl).Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected script result length %d", len(res))
	}
	c, _ := res[0].(int64)
	t, _ := res[1].(int64)
	return int(c), int(t), nil
}

// failOpen is the storage-error policy: allow, tag the reason, log at WARN.
func (l *Limiter) failOpen(err error) Decision {
	slog.Warn("Rate limit storage error, failing open", "error", err)
	return Decision{Allowed: true, Reason: ReasonStorageError}
}

// nextUTCMidnight returns the start of the next UTC day.
func nextUTCMidnight(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
