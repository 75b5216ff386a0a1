// Package config loads and validates runtime configuration from the
// environment. godotenv is applied by main before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RunMode selects how transport updates reach the ingestion pipeline.
type RunMode string

// Run mode constants.
const (
	RunModeWebhook RunMode = "webhook"
	RunModePolling RunMode = "polling"
)

// Config is the process-wide configuration assembled at startup.
type Config struct {
	Transport TransportConfig
	Models    ModelConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Features  FeatureFlags

	// AdminToken protects /internal endpoints (bearer auth).
	AdminToken string
}

// TransportConfig holds chat-platform connection settings.
type TransportConfig struct {
	Token         string
	BaseURL       string
	Mode          RunMode
	WebhookSecret string
}

// ModelConfig holds model identifiers for the agent pipeline.
type ModelConfig struct {
	// ServiceAddr is the gRPC address of the model service.
	ServiceAddr string
	Primary     string
	Fallback    string // empty = no fallback attempt
	TopicNaming string
}

// RateLimitConfig holds the admission-control knobs.
type RateLimitConfig struct {
	BurstWindow    time.Duration
	MinuteWindow   time.Duration
	ChatMinuteMax  int
	FreeBurstMax   int
	FreeMinuteMax  int
	FreeDailyMax   int
	TrustedMult    int
	NoticeCooldown time.Duration
	TrustedUserIDs []int64
}

// RedisConfig holds KV store connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// FeatureFlags are the runtime feature toggles.
type FeatureFlags struct {
	StreamingDrafts bool
	TopicAutoCreate bool
	ApprovalUX      bool
}

// Load assembles configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Transport: TransportConfig{
			Token:         os.Getenv("TRANSPORT_TOKEN"),
			BaseURL:       getEnv("TRANSPORT_BASE_URL", ""),
			Mode:          RunMode(getEnv("RUN_MODE", string(RunModeWebhook))),
			WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		},
		Models: ModelConfig{
			ServiceAddr: getEnv("MODEL_SERVICE_ADDR", "localhost:50051"),
			Primary:     getEnv("MODEL_PRIMARY", "primary"),
			Fallback:    os.Getenv("MODEL_FALLBACK"),
			TopicNaming: os.Getenv("MODEL_TOPIC_NAMING"),
		},
		RateLimit: RateLimitConfig{
			BurstWindow:    getDuration("RL_BURST_WINDOW", 3*time.Second),
			MinuteWindow:   getDuration("RL_MINUTE_WINDOW", time.Minute),
			ChatMinuteMax:  getInt("RL_CHAT_MINUTE_MAX", 20),
			FreeBurstMax:   getInt("RL_FREE_BURST_MAX", 3),
			FreeMinuteMax:  getInt("RL_FREE_MINUTE_MAX", 20),
			FreeDailyMax:   getInt("RL_FREE_DAILY_MAX", 200),
			TrustedMult:    getInt("RL_TRUSTED_MULTIPLIER", 5),
			NoticeCooldown: getDuration("RL_NOTICE_COOLDOWN", 20*time.Second),
			TrustedUserIDs: parseUserIDs(os.Getenv("RL_TRUSTED_USER_IDS")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Features: FeatureFlags{
			StreamingDrafts: getBool("FEATURE_STREAMING_DRAFTS", true),
			TopicAutoCreate: getBool("FEATURE_TOPIC_AUTO_CREATE", false),
			ApprovalUX:      getBool("FEATURE_APPROVAL_UX", true),
		},
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that must hold before the process serves traffic.
func (c *Config) Validate() error {
	switch c.Transport.Mode {
	case RunModeWebhook, RunModePolling:
	default:
		return fmt.Errorf("invalid RUN_MODE %q: must be webhook or polling", c.Transport.Mode)
	}
	if c.Models.Primary == "" {
		return fmt.Errorf("MODEL_PRIMARY must not be empty")
	}
	if c.RateLimit.ChatMinuteMax <= 0 {
		return fmt.Errorf("RL_CHAT_MINUTE_MAX must be positive")
	}
	if c.RateLimit.FreeBurstMax <= 0 || c.RateLimit.FreeMinuteMax <= 0 || c.RateLimit.FreeDailyMax <= 0 {
		return fmt.Errorf("rate limit maxima must be positive")
	}
	if c.RateLimit.TrustedMult < 1 {
		return fmt.Errorf("RL_TRUSTED_MULTIPLIER must be >= 1")
	}
	return nil
}

// IsTrusted reports whether the user id is in the trusted tier.
func (c *RateLimitConfig) IsTrusted(userID int64) bool {
	for _, id := range c.TrustedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func parseUserIDs(csv string) []int64 {
	if csv == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
