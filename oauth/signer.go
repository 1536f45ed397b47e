// Package oauth signs Twitter API requests with OAuth 1.0a HMAC-SHA1 and
// retries once when a rejection is explained by clock skew.
package oauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrMissingCredentials is returned when the consumer key or secret is empty.
var ErrMissingCredentials = errors.New("oauth: missing consumer credentials")

// Signer holds an application's consumer credentials.
type Signer struct {
	ConsumerKey    string
	ConsumerSecret string

	// Clock is the shared skew correction. Nil uses DefaultClock.
	Clock *ClockOffset

	// Now and Nonce override the time and nonce sources; tests pin them.
	Now   func() time.Time
	Nonce func() string
}

// NewSigner returns a Signer using the process-wide clock offset.
func NewSigner(consumerKey, consumerSecret string) *Signer {
	return &Signer{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Clock:          DefaultClock,
	}
}

func (s *Signer) clock() *ClockOffset {
	if s.Clock != nil {
		return s.Clock
	}
	return DefaultClock
}

func (s *Signer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Signer) nonce() string {
	if s.Nonce != nil {
		return s.Nonce()
	}
	return NewNonce()
}

// Sign returns req with the oauth_* parameters and signature added. req is
// not modified. A zero tok signs with consumer credentials only.
func (s *Signer) Sign(req *Request, tok Token) (*SignedRequest, error) {
	return s.sign(req, tok, s.clock().Offset())
}

func (s *Signer) sign(req *Request, tok Token, offset time.Duration) (*SignedRequest, error) {
	if s.ConsumerKey == "" || s.ConsumerSecret == "" {
		return nil, ErrMissingCredentials
	}

	params := req.Params.Clone()
	params.Del("oauth_signature")
	params.Set("oauth_consumer_key", s.ConsumerKey)
	params.Set("oauth_signature_method", "HMAC-SHA1")
	params.Set("oauth_version", "1.0")
	params.Set("oauth_timestamp", strconv.FormatInt(s.now().Add(offset).Unix(), 10))
	params.Set("oauth_nonce", s.nonce())
	if tok.Token != "" {
		params.Set("oauth_token", tok.Token)
	} else {
		params.Del("oauth_token")
	}

	method := strings.ToUpper(req.Method)
	base := BaseString(method, req.URL, params)
	sig := Signature(base, s.ConsumerSecret, tok.Secret)
	params.Set("oauth_signature", sig)

	return &SignedRequest{
		Request:    Request{Method: method, URL: req.URL, Params: params},
		BaseString: base,
		Signature:  sig,
	}, nil
}

// BaseString returns the OAuth signature base string:
// METHOD&enc(url)&enc(sorted encoded params). Any oauth_signature in params
// is left out.
func BaseString(method, url string, params Params) string {
	return method + "&" + Encode(url) + "&" + Encode(params.normalized())
}

// Signature returns the Base64 HMAC-SHA1 of base keyed by the encoded
// consumer and token secrets.
func Signature(base, consumerSecret, tokenSecret string) string {
	key := Encode(consumerSecret) + "&" + Encode(tokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
