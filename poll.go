package twic

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// WatchHomeTimeline polls acc's home timeline until ctx is done or fn
// returns an error, which is returned as is. fn receives each batch of new
// tweets oldest first; batches never repeat a tweet. Failed polls back off
// exponentially up to PollBackoffMax; an unauthorized token ends the watch.
func (c *Client) WatchHomeTimeline(ctx context.Context, acc *Account, sinceID string, fn func([]*Tweet) error) error {
	backoff := stealth.BackoffConfig{
		InitialWait: c.cfg.PollInterval,
		MaxWait:     c.cfg.PollBackoffMax,
		Multiplier:  2.0,
		JitterPct:   0.3,
	}

	fails := 0
	for {
		wait := c.cfg.PollInterval

		tweets, err := c.HomeTimeline(ctx, acc, sinceID, c.cfg.PollCount)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()

		case errors.Is(err, ErrUnauthorized):
			return err

		case errors.Is(err, ErrRateLimited):
			fails++
			if at := c.limiter.AvailableAt(epHomeTimeline.Name); time.Until(at) > wait {
				wait = time.Until(at)
			}
			slog.Warn("home timeline rate limited", slog.String("user", acc.ScreenName), slog.Duration("wait", wait))

		case err != nil:
			fails++
			wait = backoff.Duration(fails - 1)
			slog.Warn("home timeline poll failed",
				slog.String("user", acc.ScreenName),
				slog.Int("consec_fails", fails),
				slog.Duration("backoff", wait),
				slog.Any("error", err))

		default:
			fails = 0
			if len(tweets) > 0 {
				sinceID = tweets[0].ID
				slices.Reverse(tweets)
				if err := fn(tweets); err != nil {
					return err
				}
			}
		}

		if err := c.jitter(ctx); err != nil {
			return err
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
