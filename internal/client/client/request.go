package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one outbound call. It is passed by value; the retry
// path works on a copy returned by markRetried.
type Request struct {
	Method string
	// Path is relative to the client's base URL, e.g. "/post/".
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	// Anonymous requests never carry a bearer and are never refreshed.
	Anonymous bool

	retried bool
}

// NewJSONRequest builds a Request with in marshalled as the body. A nil in
// produces a request without body.
func NewJSONRequest(method, path string, in any) (Request, error) {
	req := Request{Method: method, Path: path}
	if in == nil {
		return req, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return Request{}, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	req.Body = b
	return req, nil
}

func (r Request) Retried() bool { return r.retried }

func (r Request) markRetried() Request {
	r.retried = true
	r.Header = r.Header.Clone()
	return r
}

// Response is a 2xx answer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into out. An empty body or nil out is a no-op.
func (r *Response) Decode(out any) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (r *Response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
