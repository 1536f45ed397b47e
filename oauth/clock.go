package oauth

import (
	"net/http"
	"sync/atomic"
	"time"
)

// ClockOffset is the correction added to the local clock when stamping
// requests. It is learned from server Date headers and shared by every
// Signer pointing at it.
type ClockOffset struct {
	ms atomic.Int64
}

// DefaultClock is the process-wide offset used by signers without their own.
var DefaultClock = &ClockOffset{}

// Offset returns the current correction.
func (c *ClockOffset) Offset() time.Duration {
	return time.Duration(c.ms.Load()) * time.Millisecond
}

// Set stores d, truncated to milliseconds.
func (c *ClockOffset) Set(d time.Duration) {
	c.ms.Store(d.Milliseconds())
}

// clockHeaders are consulted in order; Date is the server's notion of now.
var clockHeaders = []string{"date", "last-modified"}

// RemoteOffset returns remote minus now for the first parseable date among
// the response headers. Header keys must be lowercase.
func RemoteOffset(header map[string]string, now time.Time) (time.Duration, bool) {
	for _, name := range clockHeaders {
		v := header[name]
		if v == "" {
			continue
		}
		remote, err := http.ParseTime(v)
		if err != nil {
			continue
		}
		d := remote.Sub(now)
		return d.Truncate(time.Millisecond), true
	}
	return 0, false
}
