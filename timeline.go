package twic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go-twic/oauth"
	"github.com/anatolykoptev/go-twic/text"
)

// VerifyCredentials returns the user acc's token belongs to.
func (c *Client) VerifyCredentials(ctx context.Context, acc *Account) (*User, error) {
	body, err := c.do(ctx, epVerifyCredentials, epVerifyCredentials.URL(), nil, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseUser(body)
}

// GetUser looks up a user by screen name.
func (c *Client) GetUser(ctx context.Context, acc *Account, screenName string) (*User, error) {
	screenName = strings.TrimPrefix(screenName, "@")
	params := oauth.Params{{Key: "screen_name", Value: screenName}}
	body, err := c.do(ctx, epUserShow, epUserShow.URL(), params, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseUser(body)
}

// GetTweet looks up a single tweet by ID.
func (c *Client) GetTweet(ctx context.Context, acc *Account, tweetID string) (*Tweet, error) {
	if _, err := strconv.ParseUint(tweetID, 10, 64); err != nil {
		return nil, fmt.Errorf("show status: invalid tweet id %q", tweetID)
	}
	params := oauth.Params{
		{Key: "id", Value: tweetID},
		{Key: "tweet_mode", Value: "extended"},
	}
	body, err := c.do(ctx, epShowStatus, epShowStatus.URL(), params, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseStatus(body)
}

// HomeTimeline returns up to count of the newest tweets in acc's home
// timeline, newest first. A non-empty sinceID limits the result to tweets
// newer than it.
func (c *Client) HomeTimeline(ctx context.Context, acc *Account, sinceID string, count int) ([]*Tweet, error) {
	if count <= 0 {
		count = c.cfg.PollCount
	}
	params := oauth.Params{
		{Key: "count", Value: strconv.Itoa(min(count, 200))},
		{Key: "tweet_mode", Value: "extended"},
	}
	if sinceID != "" {
		params.Set("since_id", sinceID)
	}
	body, err := c.do(ctx, epHomeTimeline, epHomeTimeline.URL(), params, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseTimeline(body)
}

// UpdateStatus posts status as acc. A non-empty replyTo makes it a reply to
// that tweet. Text Twitter would reject is refused before any request.
func (c *Client) UpdateStatus(ctx context.Context, acc *Account, status, replyTo string) (*Tweet, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: empty status", ErrInvalidStatus)
	}
	if text.HasInvalidCharacters(status) {
		return nil, ErrInvalidStatus
	}

	params := oauth.Params{{Key: "status", Value: status}}
	if replyTo != "" {
		params.Set("in_reply_to_status_id", replyTo)
	}
	params.Set("trim_user", "true")

	body, err := c.do(ctx, epUpdateStatus, epUpdateStatus.URL(), params, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseStatus(body)
}

// Reply answers to. The author's @mention is prepended unless status already
// mentions them.
func (c *Client) Reply(ctx context.Context, acc *Account, to *Tweet, status string) (*Tweet, error) {
	if to.Author != nil && to.Author.ScreenName != "" && !mentions(status, to.Author.ScreenName) {
		status = "@" + to.Author.ScreenName + " " + status
	}
	return c.UpdateStatus(ctx, acc, status, to.ID)
}

// Retweet retweets the tweet with the given ID as acc.
func (c *Client) Retweet(ctx context.Context, acc *Account, tweetID string) (*Tweet, error) {
	if _, err := strconv.ParseUint(tweetID, 10, 64); err != nil {
		return nil, fmt.Errorf("retweet: invalid tweet id %q", tweetID)
	}
	params := oauth.Params{{Key: "trim_user", Value: "true"}}
	body, err := c.do(ctx, epRetweet, epRetweet.URL(tweetID), params, acc.Token)
	if err != nil {
		return nil, err
	}
	return parseStatus(body)
}

// mentions reports whether status @mentions screenName.
func mentions(status, screenName string) bool {
	for m := range text.ExtractMentions(status) {
		if strings.EqualFold(m.ScreenName, screenName) {
			return true
		}
	}
	return false
}
