package twic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-twic/oauth"
)

// do signs and sends one API request as tok. A 401 explained by clock skew
// is retried once by the signer. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, ep Endpoint, url string, params oauth.Params, tok oauth.Token) ([]byte, error) {
	if !c.limiter.Allow(ep.Name) {
		c.recordAPICall(ep.Name, false, true)
		return nil, &APIError{Endpoint: ep.Name, Status: 429, Message: "local rate limit", class: errRateLimit}
	}

	req := &oauth.Request{Method: ep.Method, URL: url, Params: params}
	resp, err := c.signer.Send(ctx, req, tok, c.send)
	if err != nil {
		c.recordAPICall(ep.Name, false, false)
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}

	if rl, ok := parseRateLimit(resp.Header); ok {
		c.setRateLimit(ep.Name, rl)
	}

	switch {
	case resp.Status == 429:
		c.recordAPICall(ep.Name, false, true)
		until := parseRateLimitReset(resp.Header["x-rate-limit-reset"])
		c.limiter.MarkRateLimited(ep.Name, until)
		slog.Warn("rate limited", slog.String("endpoint", ep.Name), slog.Time("until", until))
		return nil, newAPIError(ep.Name, resp.Status, resp.Body)

	case resp.Status < 200 || resp.Status > 299:
		c.recordAPICall(ep.Name, false, false)
		apiErr := newAPIError(ep.Name, resp.Status, resp.Body)
		if apiErr.class == errRateLimit {
			c.limiter.MarkRateLimited(ep.Name, parseRateLimitReset(resp.Header["x-rate-limit-reset"]))
		}
		slog.Warn("api request failed",
			slog.String("endpoint", ep.Name),
			slog.Int("status", resp.Status),
			slog.Int("code", apiErr.Code),
			slog.String("body", truncateBytes(resp.Body, 500)))
		return nil, apiErr
	}

	c.recordAPICall(ep.Name, true, false)
	return resp.Body, nil
}

// send performs one signed exchange. GET parameters travel in the query
// string, everything else in a form body.
func (c *Client) send(ctx context.Context, req *oauth.SignedRequest) (*oauth.Response, error) {
	form := req.Body()
	headers := apiHeaders(c.cfg.UserAgent, form)

	var body io.Reader
	if form {
		body = strings.NewReader(req.Params.Encode())
	}

	respBody, respHdrs, status, err := c.client.DoWithHeaderOrderCtx(ctx, req.Method, req.Target(), headers, body, apiHeaderOrder)
	if err != nil {
		return nil, err
	}
	return &oauth.Response{Status: status, Header: lowerKeys(respHdrs), Body: respBody}, nil
}

// lowerKeys returns hdrs with lowercase keys. Header names are case-insensitive.
func lowerKeys(hdrs map[string]string) map[string]string {
	out := make(map[string]string, len(hdrs))
	for k, v := range hdrs {
		out[strings.ToLower(k)] = v
	}
	return out
}
