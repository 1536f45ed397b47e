package twic

import (
	"fmt"
	"net/url"
)

const twitterAPIURL = "https://api.twitter.com"

// Endpoint is a Twitter REST v1.1 resource. Name keys rate limiting and
// metrics; Path may contain one %s for a resource ID.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// URL returns the full URL for this endpoint. args fill the %s in Path.
func (e Endpoint) URL(args ...string) string {
	if len(args) == 0 {
		return twitterAPIURL + e.Path
	}
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(a)
	}
	return twitterAPIURL + fmt.Sprintf(e.Path, escaped...)
}

// Endpoints used by the client.
var (
	epRequestToken = Endpoint{Name: "RequestToken", Method: "POST", Path: "/oauth/request_token"}
	epAccessToken  = Endpoint{Name: "AccessToken", Method: "POST", Path: "/oauth/access_token"}

	epVerifyCredentials = Endpoint{Name: "VerifyCredentials", Method: "GET", Path: "/1.1/account/verify_credentials.json"}
	epUserShow          = Endpoint{Name: "UserShow", Method: "GET", Path: "/1.1/users/show.json"}
	epShowStatus        = Endpoint{Name: "ShowStatus", Method: "GET", Path: "/1.1/statuses/show.json"}
	epHomeTimeline      = Endpoint{Name: "HomeTimeline", Method: "GET", Path: "/1.1/statuses/home_timeline.json"}
	epUpdateStatus      = Endpoint{Name: "UpdateStatus", Method: "POST", Path: "/1.1/statuses/update.json"}
	epRetweet           = Endpoint{Name: "Retweet", Method: "POST", Path: "/1.1/statuses/retweet/%s.json"}
)

// authorizeURL is where the user grants access and receives a PIN.
const authorizeURL = twitterAPIURL + "/oauth/authorize"
