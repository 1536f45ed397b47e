package twic

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-twic/text"
)

// twitterTimeLayout is the created_at format of the v1.1 API.
const twitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

type rawUser struct {
	IDStr           string `json:"id_str"`
	ScreenName      string `json:"screen_name"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url_https"`
	FollowersCount  int    `json:"followers_count"`
	FriendsCount    int    `json:"friends_count"`
	StatusesCount   int    `json:"statuses_count"`
	CreatedAt       string `json:"created_at"`
	Protected       bool   `json:"protected"`
}

type rawTweet struct {
	IDStr                string    `json:"id_str"`
	Text                 string    `json:"text"`
	FullText             string    `json:"full_text"`
	CreatedAt            string    `json:"created_at"`
	InReplyToStatusIDStr string    `json:"in_reply_to_status_id_str"`
	RetweetCount         int       `json:"retweet_count"`
	FavoriteCount        int       `json:"favorite_count"`
	User                 *rawUser  `json:"user"`
	RetweetedStatus      *rawTweet `json:"retweeted_status"`
	Entities             struct {
		URLs []struct {
			URL         string `json:"url"`
			ExpandedURL string `json:"expanded_url"`
		} `json:"urls"`
	} `json:"entities"`
}

// parseUser parses a single user object (users/show, verify_credentials).
func parseUser(body []byte) (*User, error) {
	var raw rawUser
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return convertUser(&raw)
}

// parseTimeline parses a statuses array (home_timeline).
func parseTimeline(body []byte) ([]*Tweet, error) {
	var raw []rawTweet
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal timeline: %w", err)
	}
	tweets := make([]*Tweet, 0, len(raw))
	for i := range raw {
		t, err := convertTweet(&raw[i])
		if err != nil {
			continue
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

// parseStatus parses a single status object (update, retweet).
func parseStatus(body []byte) (*Tweet, error) {
	var raw rawTweet
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}
	t, err := convertTweet(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, truncateBytes(body, 300))
	}
	return t, nil
}

func convertUser(r *rawUser) (*User, error) {
	if r.IDStr == "" {
		return nil, fmt.Errorf("empty user id_str")
	}
	return &User{
		ID:          r.IDStr,
		ScreenName:  r.ScreenName,
		DisplayName: r.Name,
		AvatarURL:   r.ProfileImageURL,
		Followers:   r.FollowersCount,
		Following:   r.FriendsCount,
		TweetCount:  r.StatusesCount,
		CreatedAt:   parseTwitterTime(r.CreatedAt),
		Protected:   r.Protected,
	}, nil
}

func convertTweet(r *rawTweet) (*Tweet, error) {
	if r.IDStr == "" {
		return nil, fmt.Errorf("empty tweet id_str")
	}

	// The API escapes &, < and > in status text.
	body := r.FullText
	if body == "" {
		body = r.Text
	}
	body = html.UnescapeString(body)

	t := &Tweet{
		ID:        r.IDStr,
		Text:      body,
		CreatedAt: parseTwitterTime(r.CreatedAt),
		InReplyTo: r.InReplyToStatusIDStr,
		Retweets:  r.RetweetCount,
		Likes:     r.FavoriteCount,
		Entities:  text.ExtractEntities(body),
	}
	if r.User != nil {
		if u, err := convertUser(r.User); err == nil {
			t.Author = u
		}
	}
	if r.RetweetedStatus != nil {
		if rt, err := convertTweet(r.RetweetedStatus); err == nil {
			t.Retweeted = rt
		}
	}
	for _, u := range r.Entities.URLs {
		if u.URL == "" || u.ExpandedURL == "" {
			continue
		}
		if t.ShortLinks == nil {
			t.ShortLinks = make(map[string]string)
		}
		t.ShortLinks[u.URL] = u.ExpandedURL
	}
	return t, nil
}

func parseTwitterTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(twitterTimeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseRateLimit reads the x-rate-limit-* response headers. ok is false when
// the endpoint reported no limit.
func parseRateLimit(hdrs map[string]string) (RateLimit, bool) {
	limit, err := strconv.Atoi(hdrs["x-rate-limit-limit"])
	if err != nil {
		return RateLimit{}, false
	}
	remaining, _ := strconv.Atoi(hdrs["x-rate-limit-remaining"])
	return RateLimit{
		Limit:     limit,
		Remaining: remaining,
		Reset:     parseRateLimitReset(hdrs["x-rate-limit-reset"]),
	}, true
}

// HTML returns the tweet text as HTML with entities linked. Shortened links
// are shown expanded.
func (t *Tweet) HTML() string {
	return text.AutoLink(t.Text, text.LinkOptions{Expanded: t.ShortLinks, Target: "_blank"})
}
