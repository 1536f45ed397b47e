package oauth

import "net/http"

// Request describes an HTTP request before signing. URL carries no query
// string; query and form parameters both go in Params.
type Request struct {
	Method string
	URL    string
	Params Params
}

// NewRequest returns a Request with a copy of params.
func NewRequest(method, url string, params ...Param) *Request {
	return &Request{Method: method, URL: url, Params: Params(params).Clone()}
}

// Token is a user's OAuth token and secret. The zero Token signs with
// consumer credentials only, as the request-token step does.
type Token struct {
	Token  string `json:"token"`
	Secret string `json:"secret"`
}

// SignedRequest is a Request whose Params hold the full oauth_* set
// including oauth_signature.
type SignedRequest struct {
	Request
	BaseString string
	Signature  string
}

// Body reports whether parameters travel in a form body rather than the
// query string.
func (r *SignedRequest) Body() bool {
	return r.Method != http.MethodGet
}

// Target returns the URL to send to: for GET the parameters are appended as
// a query string, otherwise URL is returned unchanged.
func (r *SignedRequest) Target() string {
	if r.Body() || len(r.Params) == 0 {
		return r.URL
	}
	return r.URL + "?" + r.Params.Encode()
}
