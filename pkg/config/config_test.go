package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Transport: TransportConfig{Mode: RunModeWebhook},
		Models:    ModelConfig{Primary: "primary"},
		RateLimit: RateLimitConfig{
			ChatMinuteMax: 20,
			FreeBurstMax:  3,
			FreeMinuteMax: 20,
			FreeDailyMax:  200,
			TrustedMult:   5,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid webhook", mutate: func(*Config) {}},
		{
			name:   "valid polling",
			mutate: func(c *Config) { c.Transport.Mode = RunModePolling },
		},
		{
			name:    "bad run mode",
			mutate:  func(c *Config) { c.Transport.Mode = "push" },
			wantErr: "RUN_MODE",
		},
		{
			name:    "empty primary model",
			mutate:  func(c *Config) { c.Models.Primary = "" },
			wantErr: "MODEL_PRIMARY",
		},
		{
			name:    "non-positive chat cap",
			mutate:  func(c *Config) { c.RateLimit.ChatMinuteMax = 0 },
			wantErr: "RL_CHAT_MINUTE_MAX",
		},
		{
			name:    "non-positive daily cap",
			mutate:  func(c *Config) { c.RateLimit.FreeDailyMax = -1 },
			wantErr: "rate limit maxima",
		},
		{
			name:    "multiplier below one",
			mutate:  func(c *Config) { c.RateLimit.TrustedMult = 0 },
			wantErr: "RL_TRUSTED_MULTIPLIER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	// A clean environment loads the documented defaults.
	for _, key := range []string{
		"TRANSPORT_TOKEN", "RUN_MODE", "MODEL_PRIMARY", "MODEL_FALLBACK",
		"RL_CHAT_MINUTE_MAX", "RL_FREE_BURST_MAX", "RL_TRUSTED_USER_IDS",
		"REDIS_ADDR", "FEATURE_STREAMING_DRAFTS", "FEATURE_TOPIC_AUTO_CREATE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, RunModeWebhook, cfg.Transport.Mode)
	assert.Equal(t, "primary", cfg.Models.Primary)
	assert.Equal(t, 20, cfg.RateLimit.ChatMinuteMax)
	assert.Equal(t, 3, cfg.RateLimit.FreeBurstMax)
	assert.Equal(t, 200, cfg.RateLimit.FreeDailyMax)
	assert.Equal(t, 5, cfg.RateLimit.TrustedMult)
	assert.Equal(t, 3*time.Second, cfg.RateLimit.BurstWindow)
	assert.Equal(t, time.Minute, cfg.RateLimit.MinuteWindow)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Features.StreamingDrafts)
	assert.False(t, cfg.Features.TopicAutoCreate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RUN_MODE", "polling")
	t.Setenv("MODEL_PRIMARY", "big-model")
	t.Setenv("MODEL_FALLBACK", "small-model")
	t.Setenv("RL_FREE_DAILY_MAX", "500")
	t.Setenv("RL_BURST_WINDOW", "5s")
	t.Setenv("RL_TRUSTED_USER_IDS", "1, 2,3")
	t.Setenv("FEATURE_STREAMING_DRAFTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, RunModePolling, cfg.Transport.Mode)
	assert.Equal(t, "big-model", cfg.Models.Primary)
	assert.Equal(t, "small-model", cfg.Models.Fallback)
	assert.Equal(t, 500, cfg.RateLimit.FreeDailyMax)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.BurstWindow)
	assert.Equal(t, []int64{1, 2, 3}, cfg.RateLimit.TrustedUserIDs)
	assert.False(t, cfg.Features.StreamingDrafts)
}

func TestLoad_InvalidRunMode(t *testing.T) {
	t.Setenv("RUN_MODE", "carrier-pigeon")

	_, err := Load()
	assert.Error(t, err)
}

func TestIsTrusted(t *testing.T) {
	cfg := RateLimitConfig{TrustedUserIDs: []int64{10, 20}}

	assert.True(t, cfg.IsTrusted(10))
	assert.True(t, cfg.IsTrusted(20))
	assert.False(t, cfg.IsTrusted(30))

	var empty RateLimitConfig
	assert.False(t, empty.IsTrusted(10))
}

func TestParseUserIDs(t *testing.T) {
	assert.Nil(t, parseUserIDs(""))
	assert.Equal(t, []int64{1}, parseUserIDs("1"))
	assert.Equal(t, []int64{1, 2}, parseUserIDs(" 1 , 2 ,, junk"))
}
