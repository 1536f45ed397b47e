package twic

import (
	"os"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-stealth/ratelimit"
	"github.com/anatolykoptev/go-twic/oauth"
)

// ClientConfig holds all configuration for the Twitter client.
type ClientConfig struct {
	// ConsumerKey and ConsumerSecret identify the application.
	ConsumerKey    string
	ConsumerSecret string

	// UserAgent is sent with every request. Default: a desktop Chrome UA.
	UserAgent string

	// Proxy is an optional proxy URL for all requests.
	Proxy string

	// RateLimit configures per-endpoint rate limiting.
	RateLimit ratelimit.Config

	// AccountDir overrides the default token store directory.
	// Default: ~/.go-twic/accounts
	AccountDir string

	// PollInterval is the delay between home timeline polls.
	PollInterval time.Duration

	// PollBackoffMax caps the delay after consecutive poll failures.
	PollBackoffMax time.Duration

	// PollCount is the number of tweets requested per poll.
	PollCount int

	// Clock is the clock skew correction shared by signers. Default: oauth.DefaultClock.
	Clock *oauth.ClockOffset

	// MetricsHook is called on each API request for external metrics collection.
	// endpoint is the endpoint name, success and rateLimited indicate the outcome.
	MetricsHook func(endpoint string, success, rateLimited bool)
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RateLimit.RequestsPerWindow == 0 {
		cfg.RateLimit = ratelimit.DefaultConfig
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 90 * time.Second
	}
	if cfg.PollBackoffMax == 0 {
		cfg.PollBackoffMax = 15 * time.Minute
	}
	if cfg.PollCount == 0 {
		cfg.PollCount = 50
	}
	if cfg.Clock == nil {
		cfg.Clock = oauth.DefaultClock
	}
}

// ConfigFromEnv builds a config from TWIC_* environment variables.
// Unset or malformed values are left zero and filled by defaults.
func ConfigFromEnv() ClientConfig {
	cfg := ClientConfig{
		ConsumerKey:    os.Getenv("TWIC_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("TWIC_CONSUMER_SECRET"),
		UserAgent:      os.Getenv("TWIC_USER_AGENT"),
		Proxy:          os.Getenv("TWIC_PROXY"),
		AccountDir:     os.Getenv("TWIC_ACCOUNT_DIR"),
	}
	if d, err := time.ParseDuration(os.Getenv("TWIC_POLL_INTERVAL")); err == nil {
		cfg.PollInterval = d
	}
	if n, err := strconv.Atoi(os.Getenv("TWIC_POLL_COUNT")); err == nil && n > 0 {
		cfg.PollCount = n
	}
	return cfg
}
