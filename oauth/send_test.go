package oauth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSend struct {
	responses []*Response
	requests  []*SignedRequest
}

func (r *recordedSend) send(_ context.Context, req *SignedRequest) (*Response, error) {
	r.requests = append(r.requests, req)
	resp := r.responses[0]
	if len(r.responses) > 1 {
		r.responses = r.responses[1:]
	}
	return resp, nil
}

func skewSigner(now time.Time) *Signer {
	return &Signer{
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		Clock:          &ClockOffset{},
		Now:            func() time.Time { return now },
		Nonce:          NewNonce,
	}
}

func TestSend_ClockSkewRetriesOnce(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ahead := now.Add(10 * time.Second).Format(http.TimeFormat)
	rec := &recordedSend{responses: []*Response{
		{Status: http.StatusUnauthorized, Header: map[string]string{"date": ahead}},
		{Status: http.StatusUnauthorized, Header: map[string]string{"date": ahead}},
	}}
	s := skewSigner(now)

	resp, err := s.Send(context.Background(), NewRequest("GET", "https://api.twitter.com/1.1/account/verify_credentials.json"), Token{Token: "t", Secret: "s"}, rec.send)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)

	require.Len(t, rec.requests, 2)
	assert.Equal(t, 10*time.Second, s.Clock.Offset())
	assert.NotEqual(t, rec.requests[0].Signature, rec.requests[1].Signature)

	ts0, _ := rec.requests[0].Params.Get("oauth_timestamp")
	ts1, _ := rec.requests[1].Params.Get("oauth_timestamp")
	assert.Equal(t, "1709294400", ts0)
	assert.Equal(t, "1709294410", ts1)
}

func TestSend_RetrySucceeds(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &recordedSend{responses: []*Response{
		{Status: http.StatusUnauthorized, Header: map[string]string{"date": now.Add(-time.Minute).Format(http.TimeFormat)}},
		{Status: http.StatusOK, Body: []byte(`{}`)},
	}}
	s := skewSigner(now)

	resp, err := s.Send(context.Background(), NewRequest("POST", "https://api.twitter.com/1.1/statuses/update.json"), Token{}, rec.send)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Len(t, rec.requests, 2)
	assert.Equal(t, -time.Minute, s.Clock.Offset())
}

func TestSend_NoRetry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		resp   *Response
	}{
		{"success", 0, &Response{Status: http.StatusOK, Header: map[string]string{"date": now.Add(time.Hour).Format(http.TimeFormat)}}},
		{"no date header", 0, &Response{Status: http.StatusUnauthorized, Header: map[string]string{}}},
		{"unparseable date", 0, &Response{Status: http.StatusUnauthorized, Header: map[string]string{"date": "yesterday"}}},
		{"offset unchanged", 5 * time.Second, &Response{Status: http.StatusUnauthorized, Header: map[string]string{"date": now.Add(5 * time.Second).Format(http.TimeFormat)}}},
		{"forbidden", 0, &Response{Status: http.StatusForbidden, Header: map[string]string{"date": now.Add(time.Hour).Format(http.TimeFormat)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordedSend{responses: []*Response{tt.resp}}
			s := skewSigner(now)
			s.Clock.Set(tt.offset)

			resp, err := s.Send(context.Background(), NewRequest("GET", "https://api.twitter.com/1.1/statuses/home_timeline.json"), Token{}, rec.send)
			require.NoError(t, err)
			assert.Same(t, tt.resp, resp)
			assert.Len(t, rec.requests, 1)
			assert.Equal(t, tt.offset, s.Clock.Offset())
		})
	}
}

func TestSend_LastModifiedFallback(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &recordedSend{responses: []*Response{
		{Status: http.StatusUnauthorized, Header: map[string]string{"last-modified": now.Add(3 * time.Second).Format(http.TimeFormat)}},
		{Status: http.StatusOK},
	}}
	s := skewSigner(now)

	_, err := s.Send(context.Background(), NewRequest("GET", "https://api.twitter.com/1.1/statuses/home_timeline.json"), Token{}, rec.send)
	require.NoError(t, err)
	assert.Len(t, rec.requests, 2)
	assert.Equal(t, 3*time.Second, s.Clock.Offset())
}

func TestSend_TransportError(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	send := func(context.Context, *SignedRequest) (*Response, error) {
		calls++
		return nil, boom
	}

	_, err := skewSigner(time.Now()).Send(context.Background(), NewRequest("GET", "https://api.twitter.com/x"), Token{}, send)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSend_MissingCredentials(t *testing.T) {
	called := false
	send := func(context.Context, *SignedRequest) (*Response, error) {
		called = true
		return &Response{Status: http.StatusOK}, nil
	}
	_, err := (&Signer{}).Send(context.Background(), NewRequest("GET", "https://api.twitter.com/x"), Token{}, send)
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.False(t, called)
}

func TestSend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := skewSigner(time.Now()).Send(ctx, NewRequest("GET", "https://api.twitter.com/x"), Token{}, func(context.Context, *SignedRequest) (*Response, error) {
		t.Fatal("send called with canceled context")
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoteOffset(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	d, ok := RemoteOffset(map[string]string{
		"date":          now.Add(2 * time.Second).Format(http.TimeFormat),
		"last-modified": now.Add(-time.Hour).Format(http.TimeFormat),
	}, now)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, d)

	_, ok = RemoteOffset(nil, now)
	assert.False(t, ok)
}

func TestClockOffset(t *testing.T) {
	var c ClockOffset
	assert.Zero(t, c.Offset())
	c.Set(1500*time.Millisecond + 700*time.Microsecond)
	assert.Equal(t, 1500*time.Millisecond, c.Offset())
}
