package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/pkg/config"
)

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		BurstWindow:    3 * time.Second,
		MinuteWindow:   time.Minute,
		ChatMinuteMax:  20,
		FreeBurstMax:   3,
		FreeMinuteMax:  20,
		FreeDailyMax:   200,
		TrustedMult:    5,
		NoticeCooldown: 20 * time.Second,
	}
}

func newTestLimiter(t *testing.T, cfg config.RateLimitConfig) (*Limiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLimiter(rdb, cfg), mr
}

func TestCheckChatFlood(t *testing.T) {
	cfg := testConfig()
	cfg.ChatMinuteMax = 2
	limiter, _ := newTestLimiter(t, cfg)
	ctx := context.Background()

	assert.True(t, limiter.CheckChatFlood(ctx, 100).Allowed)
	assert.True(t, limiter.CheckChatFlood(ctx, 100).Allowed)

	d := limiter.CheckChatFlood(ctx, 100)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonChatMinute, d.Reason)
	assert.Greater(t, d.RetryAfterSeconds, 0)

	// Other chats are unaffected.
	assert.True(t, limiter.CheckChatFlood(ctx, 200).Allowed)
}

func TestCheckUserTurn_Burst(t *testing.T) {
	limiter, _ := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d := limiter.CheckUserTurn(ctx, 42)
		require.True(t, d.Allowed, "message %d should be admitted", i+1)
	}

	d := limiter.CheckUserTurn(ctx, 42)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUserBurst, d.Reason)
	assert.GreaterOrEqual(t, d.RetryAfterSeconds, 1)
}

func TestCheckUserTurn_BurstWindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.True(t, limiter.CheckUserTurn(ctx, 42).Allowed)
	}
	require.False(t, limiter.CheckUserTurn(ctx, 42).Allowed)

	mr.FastForward(4 * time.Second)

	assert.True(t, limiter.CheckUserTurn(ctx, 42).Allowed)
}

func TestCheckUserTurn_Daily(t *testing.T) {
	cfg := testConfig()
	cfg.FreeBurstMax = 1000
	cfg.FreeMinuteMax = 1000
	cfg.FreeDailyMax = 300
	limiter, _ := newTestLimiter(t, cfg)
	limiter.now = func() time.Time {
		return time.Date(2026, 2, 22, 21, 30, 0, 0, time.UTC)
	}
	ctx := context.Background()

	for i := 0; i < 300; i++ {
		require.True(t, limiter.CheckUserTurn(ctx, 7).Allowed, "message %d", i+1)
	}

	d := limiter.CheckUserTurn(ctx, 7)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUserDaily, d.Reason)
	assert.Equal(t, 301, d.DailyUsed)
	assert.Equal(t, 300, d.DailyLimit)
	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), d.ResetsAtUTC)
}

func TestCheckUserTurn_TrustedMultiplier(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedUserIDs = []int64{42}
	limiter, _ := newTestLimiter(t, cfg)
	ctx := context.Background()

	// Trusted cap is FreeBurstMax*TrustedMult = 15.
	for i := 0; i < 15; i++ {
		require.True(t, limiter.CheckUserTurn(ctx, 42).Allowed, "message %d", i+1)
	}

	d := limiter.CheckUserTurn(ctx, 42)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUserBurst, d.Reason)
}

func TestCheck_ExemptSkipsUserQuotas(t *testing.T) {
	cfg := testConfig()
	cfg.FreeBurstMax = 1
	limiter, _ := newTestLimiter(t, cfg)
	ctx := context.Background()

	// Exempt input never touches the user ladder.
	for i := 0; i < 5; i++ {
		d := limiter.Check(ctx, CheckInput{UserID: 42, ChatID: 100, Exempt: true})
		require.True(t, d.Allowed)
	}

	// A non-exempt turn afterwards still has a fresh burst budget.
	assert.True(t, limiter.Check(ctx, CheckInput{UserID: 42, ChatID: 100}).Allowed)
}

func TestCheck_ChatFloodAppliesToExempt(t *testing.T) {
	cfg := testConfig()
	cfg.ChatMinuteMax = 1
	limiter, _ := newTestLimiter(t, cfg)
	ctx := context.Background()

	require.True(t, limiter.Check(ctx, CheckInput{UserID: 42, ChatID: 100, Exempt: true}).Allowed)

	d := limiter.Check(ctx, CheckInput{UserID: 42, ChatID: 100, Exempt: true})
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonChatMinute, d.Reason)
}

func TestCheck_FailsOpenOnStorageError(t *testing.T) {
	limiter, mr := newTestLimiter(t, testConfig())
	ctx := context.Background()

	mr.Close()

	d := limiter.Check(ctx, CheckInput{UserID: 42, ChatID: 100})
	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonStorageError, d.Reason)
}

func TestShouldNotify_Cooldown(t *testing.T) {
	limiter, mr := newTestLimiter(t, testConfig())
	ctx := context.Background()

	assert.True(t, limiter.ShouldNotify(ctx, 42, ReasonUserBurst))
	assert.False(t, limiter.ShouldNotify(ctx, 42, ReasonUserBurst))

	// Different reason has its own cooldown key.
	assert.True(t, limiter.ShouldNotify(ctx, 42, ReasonUserDaily))

	mr.FastForward(21 * time.Second)
	assert.True(t, limiter.ShouldNotify(ctx, 42, ReasonUserBurst))
}

func TestNextUTCMidnight(t *testing.T) {
	got := nextUTCMidnight(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), got)
}
