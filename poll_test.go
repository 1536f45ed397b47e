package twic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStop = errors.New("stop")

func TestWatchHomeTimeline(t *testing.T) {
	c, ft := newTestClient(t,
		fakeResponse{status: 200, body: `[{"id_str":"3","text":"three"},{"id_str":"2","text":"two"}]`},
		fakeResponse{status: 503, body: "over capacity"},
		fakeResponse{status: 200, body: `[]`},
		fakeResponse{status: 200, body: `[{"id_str":"4","text":"four"}]`},
	)

	var batches [][]string
	err := c.WatchHomeTimeline(context.Background(), testAccount, "1", func(tweets []*Tweet) error {
		var ids []string
		for _, tw := range tweets {
			ids = append(ids, tw.ID)
		}
		batches = append(batches, ids)
		if len(batches) == 2 {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, [][]string{{"2", "3"}, {"4"}}, batches)

	calls := ft.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, "1", calls[0].params(t).Get("since_id"))
	for _, call := range calls[1:] {
		assert.Equal(t, "3", call.params(t).Get("since_id"))
	}
	assert.Equal(t, "50", calls[0].params(t).Get("count"))
}

func TestWatchHomeTimeline_Unauthorized(t *testing.T) {
	c, ft := newTestClient(t, fakeResponse{status: 401, body: `{"errors":[{"code":89,"message":"Invalid or expired token."}]}`})

	err := c.WatchHomeTimeline(context.Background(), testAccount, "", func([]*Tweet) error {
		t.Fatal("no tweets expected")
		return nil
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Len(t, ft.Calls(), 1)
}

func TestWatchHomeTimeline_Canceled(t *testing.T) {
	c, _ := newTestClient(t)
	c.cfg.PollInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	c.jitter = func(context.Context) error {
		cancel()
		return nil
	}

	// The fake has no responses queued, so every poll fails.
	err := c.WatchHomeTimeline(ctx, testAccount, "", func([]*Tweet) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
