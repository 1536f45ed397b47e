package twic

import (
	"time"

	"github.com/anatolykoptev/go-twic/text"
)

// User represents a Twitter account profile.
type User struct {
	ID          string
	ScreenName  string
	DisplayName string
	AvatarURL   string
	Followers   int
	Following   int
	TweetCount  int
	CreatedAt   time.Time
	Protected   bool
}

// Tweet represents a single status.
type Tweet struct {
	ID         string
	Text       string
	CreatedAt  time.Time
	Author     *User
	InReplyTo  string
	Retweeted  *Tweet // original status when this tweet is a retweet
	Retweets   int
	Likes      int
	Entities   []text.Entity     // extracted locally from Text
	ShortLinks map[string]string // t.co URL → expanded URL
}

// RateLimit is the request budget reported by x-rate-limit-* headers.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
