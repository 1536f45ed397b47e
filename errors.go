package twic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Sentinel errors an *APIError unwraps to.
var (
	ErrUnauthorized = errors.New("twitter: unauthorized")
	ErrRateLimited  = errors.New("twitter: rate limited")
	ErrDuplicate    = errors.New("twitter: duplicate status")
	ErrSuspended    = errors.New("twitter: account suspended")
	ErrNotFound     = errors.New("twitter: not found")
)

// ErrInvalidStatus is returned for status text Twitter would reject.
var ErrInvalidStatus = errors.New("twitter: status contains invalid characters")

// errorClass categorizes Twitter API error responses for targeted handling.
type errorClass int

const (
	errNone          errorClass = iota
	errAuth                     // 32, 89, 135: bad credentials, token or timestamp
	errRateLimit                // 88: rate limit exceeded
	errSuspended                // 64: account suspended
	errLocked                   // 326: account locked
	errDuplicate                // 187: status is a duplicate
	errAlreadyRetweeted         // 327: already retweeted
	errNotFound                 // 34, 144: no such user or status
	errInternal                 // 131: Twitter internal error
)

// String describes the class for errors that arrive with a code but no message.
func (c errorClass) String() string {
	switch c {
	case errAuth:
		return "could not authenticate"
	case errRateLimit:
		return "rate limit exceeded"
	case errSuspended:
		return "account suspended"
	case errLocked:
		return "account locked"
	case errDuplicate:
		return "duplicate status"
	case errAlreadyRetweeted:
		return "already retweeted"
	case errNotFound:
		return "not found"
	case errInternal:
		return "internal error"
	}
	return "unknown error"
}

// twitterError is one entry of a v1.1 "errors" array.
type twitterError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// parseErrors returns the errors array of a response body, if any.
func parseErrors(body []byte) []twitterError {
	var errResp struct {
		Errors []twitterError `json:"errors"`
	}
	if json.Unmarshal(body, &errResp) != nil {
		return nil
	}
	return errResp.Errors
}

// classifyError inspects a response body for known Twitter error codes.
func classifyError(body []byte) (errorClass, twitterError) {
	for _, e := range parseErrors(body) {
		switch e.Code {
		case 32, 89, 135:
			return errAuth, e
		case 88:
			return errRateLimit, e
		case 64:
			return errSuspended, e
		case 326:
			return errLocked, e
		case 187:
			return errDuplicate, e
		case 327:
			return errAlreadyRetweeted, e
		case 34, 144:
			return errNotFound, e
		case 131:
			return errInternal, e
		}
	}
	return errNone, twitterError{}
}

// APIError is a failed Twitter API call.
type APIError struct {
	Endpoint string
	Status   int
	Code     int
	Message  string

	class errorClass
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s HTTP %d: code %d: %s", e.Endpoint, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s HTTP %d: %s", e.Endpoint, e.Status, e.Message)
}

// Unwrap maps the error to one of the package sentinels, or nil.
func (e *APIError) Unwrap() error {
	switch e.class {
	case errAuth:
		return ErrUnauthorized
	case errRateLimit:
		return ErrRateLimited
	case errSuspended, errLocked:
		return ErrSuspended
	case errDuplicate, errAlreadyRetweeted:
		return ErrDuplicate
	case errNotFound:
		return ErrNotFound
	}
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 429:
		return ErrRateLimited
	case 404:
		return ErrNotFound
	}
	return nil
}

// newAPIError builds an APIError from a non-2xx response.
func newAPIError(endpoint string, status int, body []byte) *APIError {
	class, te := classifyError(body)
	msg := te.Message
	if msg == "" && te.Code != 0 {
		msg = class.String()
	}
	if msg == "" {
		msg = truncateBytes(body, 200)
	}
	return &APIError{
		Endpoint: endpoint,
		Status:   status,
		Code:     te.Code,
		Message:  msg,
		class:    class,
	}
}

// parseRateLimitReset parses the X-Rate-Limit-Reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
