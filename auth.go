package twic

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go-twic/oauth"
)

// RequestToken starts the out-of-band PIN flow and returns a temporary
// request token. Send the user to AuthorizeURL with it.
func (c *Client) RequestToken(ctx context.Context) (oauth.Token, error) {
	params := oauth.Params{{Key: "oauth_callback", Value: "oob"}}
	body, err := c.do(ctx, epRequestToken, epRequestToken.URL(), params, oauth.Token{})
	if err != nil {
		return oauth.Token{}, fmt.Errorf("request token: %w", err)
	}

	vals, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return oauth.Token{}, fmt.Errorf("parse request token: %w", err)
	}
	if vals.Get("oauth_callback_confirmed") != "true" {
		return oauth.Token{}, fmt.Errorf("request token: callback not confirmed: %s", truncateBytes(body, 200))
	}
	tok := oauth.Token{Token: vals.Get("oauth_token"), Secret: vals.Get("oauth_token_secret")}
	if tok.Token == "" || tok.Secret == "" {
		return oauth.Token{}, fmt.Errorf("request token: empty token: %s", truncateBytes(body, 200))
	}
	return tok, nil
}

// AuthorizeURL returns the page where the user approves the application and
// is shown a PIN.
func AuthorizeURL(requestToken oauth.Token) string {
	return authorizeURL + "?oauth_token=" + url.QueryEscape(requestToken.Token)
}

// AccessToken exchanges a request token and the PIN the user was shown for
// a long-lived access token.
func (c *Client) AccessToken(ctx context.Context, requestToken oauth.Token, pin string) (*Account, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return nil, fmt.Errorf("access token: empty PIN")
	}
	params := oauth.Params{{Key: "oauth_verifier", Value: pin}}
	body, err := c.do(ctx, epAccessToken, epAccessToken.URL(), params, requestToken)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	vals, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	acc := &Account{
		UserID:     vals.Get("user_id"),
		ScreenName: vals.Get("screen_name"),
		Token:      oauth.Token{Token: vals.Get("oauth_token"), Secret: vals.Get("oauth_token_secret")},
	}
	if acc.Token.Token == "" || acc.Token.Secret == "" {
		return nil, fmt.Errorf("access token: empty token: %s", truncateBytes(body, 200))
	}
	slog.Info("account authorized", slog.String("user", acc.ScreenName), slog.String("id", acc.UserID))
	return acc, nil
}
