package twic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/ratelimit"
	"github.com/anatolykoptev/go-twic/oauth"
)

// transport is the part of *stealth.BrowserClient the client uses.
type transport interface {
	DoWithHeaderOrderCtx(ctx context.Context, method, url string, headers map[string]string, body io.Reader, order []string) ([]byte, map[string]string, int, error)
}

// Client is the top-level Twitter REST client. It is safe for concurrent use.
type Client struct {
	client  transport
	signer  *oauth.Signer
	limiter *ratelimit.Limiter
	cfg     ClientConfig

	// jitter pauses between polls. Anti-fingerprint.
	jitter func(context.Context) error

	mu         sync.Mutex
	rateLimits map[string]RateLimit
}

// NewClient creates a fully-wired Twitter client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, oauth.ErrMissingCredentials
	}

	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(apiHeaderOrder),
	}
	if cfg.Proxy != "" {
		opts = append(opts, stealth.WithProxy(cfg.Proxy))
		slog.Debug("using proxy", slog.String("proxy", stealth.MaskProxy(cfg.Proxy)))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return newClient(bc, cfg), nil
}

// newClient wires a client around t. Tests pass a fake transport.
func newClient(t transport, cfg ClientConfig) *Client {
	cfg.defaults()
	signer := oauth.NewSigner(cfg.ConsumerKey, cfg.ConsumerSecret)
	signer.Clock = cfg.Clock
	return &Client{
		client:     t,
		signer:     signer,
		limiter:    ratelimit.NewLimiter(cfg.RateLimit),
		cfg:        cfg,
		jitter:     stealth.DefaultJitter.Sleep,
		rateLimits: make(map[string]RateLimit),
	}
}

// Signer returns the request signer used by the client.
func (c *Client) Signer() *oauth.Signer {
	return c.signer
}

// RateLimit returns the last budget the server reported for an endpoint name
// such as "HomeTimeline".
func (c *Client) RateLimit(endpoint string) (RateLimit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rl, ok := c.rateLimits[endpoint]
	return rl, ok
}

func (c *Client) setRateLimit(endpoint string, rl RateLimit) {
	c.mu.Lock()
	c.rateLimits[endpoint] = rl
	c.mu.Unlock()
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(endpoint string, success, rateLimited bool) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(endpoint, success, rateLimited)
	}
}
