package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
	"github.com/dmitrijs2005/socialcli/internal/common"
	"github.com/dmitrijs2005/socialcli/internal/logging"
	"github.com/google/uuid"
)

const DefaultRefreshPath = "/auth/refresh/"

type HTTPClient struct {
	baseURL     string
	store       tokens.Store
	http        *http.Client
	log         logging.Logger
	onExpired   func(ctx context.Context)
	refreshPath string

	mu sync.RWMutex
	// access is the default outgoing credential, used when the store
	// cannot be read.
	access string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithSessionExpiredHandler registers fn to run after credentials were
// cleared because a refresh was impossible.
func WithSessionExpiredHandler(fn func(ctx context.Context)) Option {
	return func(c *HTTPClient) { c.onExpired = fn }
}

func WithRefreshPath(path string) Option {
	return func(c *HTTPClient) { c.refreshPath = path }
}

// New builds a client for the API rooted at baseURL, e.g.
// "http://localhost:8000/api".
func New(baseURL string, store tokens.Store, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		store:       store,
		http:        http.DefaultClient,
		log:         logging.Nop(),
		refreshPath: DefaultRefreshPath,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Send(ctx context.Context, req Request) (*Response, error) {
	var token string
	if !req.Anonymous {
		token = c.credential(ctx)
	}

	resp, err := c.issue(ctx, req, token)
	if err != nil {
		return nil, err
	}
	if resp.ok() {
		return resp, nil
	}

	apiErr := newAPIError(resp)
	if resp.StatusCode != http.StatusUnauthorized || req.Anonymous || req.Retried() {
		return nil, apiErr
	}

	retry := req.markRetried()

	access, err := c.refresh(ctx, apiErr)
	if err != nil {
		return nil, err
	}

	c.log.Debug(ctx, "access token refreshed, retrying", "method", retry.Method, "path", retry.Path)

	resp, err = c.issue(ctx, retry, access)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, newAPIError(resp)
	}
	return resp, nil
}

// refresh exchanges the stored refresh token for a new access token.
// Every failure except a store error or a cancelled ctx ends the session.
func (c *HTTPClient) refresh(ctx context.Context, cause error) (string, error) {
	refresh, err := c.store.Get(ctx, tokens.SlotRefresh)
	if err != nil {
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		return "", c.expire(ctx, cause)
	}

	body, err := json.Marshal(models.RefreshRequest{Refresh: refresh})
	if err != nil {
		return "", err
	}

	resp, err := c.issue(ctx, Request{Method: http.MethodPost, Path: c.refreshPath, Body: body, Anonymous: true}, "")
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", c.expire(ctx, err)
	}
	if !resp.ok() {
		return "", c.expire(ctx, newAPIError(resp))
	}

	var out models.RefreshResponse
	if err := resp.Decode(&out); err != nil {
		return "", c.expire(ctx, err)
	}
	if out.Access == "" {
		return "", c.expire(ctx, errMissingAccess)
	}

	if err := c.store.Set(ctx, map[tokens.Slot]string{tokens.SlotAccess: out.Access}); err != nil {
		return "", fmt.Errorf("store refreshed access token: %w", err)
	}
	c.setCredential(out.Access)

	return out.Access, nil
}

// Refresh runs the refresh exchange outside of Send. The session is ended
// on the same paths: no refresh token, transport error, non-2xx answer or a
// body without an access token.
func (c *HTTPClient) Refresh(ctx context.Context) error {
	_, err := c.refresh(ctx, errMissingRefresh)
	return err
}

func (c *HTTPClient) expire(ctx context.Context, cause error) error {
	c.log.Info(ctx, "session expired", "cause", cause)

	if err := c.ClearTokens(ctx); err != nil {
		c.log.Error(ctx, "failed to clear tokens", "error", err)
	}
	if c.onExpired != nil {
		c.onExpired(ctx)
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}

func (c *HTTPClient) issue(ctx context.Context, req Request, token string) (*Response, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", req.Method, req.Path, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}
	if req.Body != nil && hr.Header.Get("Content-Type") == "" {
		hr.Header.Set("Content-Type", common.ContentTypeJSON)
	}
	hr.Header.Set("Accept", common.ContentTypeJSON)
	if hr.Header.Get(common.RequestIDHeaderName) == "" {
		hr.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	if token != "" {
		hr.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(hr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"retried", req.retried,
		"request_id", hr.Header.Get(common.RequestIDHeaderName),
		"elapsed", time.Since(start),
	)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *HTTPClient) credential(ctx context.Context) string {
	access, err := c.store.Get(ctx, tokens.SlotAccess)
	if err == nil {
		return access
	}

	c.log.Warn(ctx, "failed to read access token, using cached credential", "error", err)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.access
}

func (c *HTTPClient) setCredential(access string) {
	c.mu.Lock()
	c.access = access
	c.mu.Unlock()
}

func (c *HTTPClient) StoreTokens(ctx context.Context, access, refresh string) error {
	if access == "" || refresh == "" {
		return fmt.Errorf("store tokens: %w", common.ErrorEmptyInput)
	}
	err := c.store.Set(ctx, map[tokens.Slot]string{
		tokens.SlotAccess:  access,
		tokens.SlotRefresh: refresh,
	})
	if err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}
	c.setCredential(access)
	return nil
}

func (c *HTTPClient) ClearTokens(ctx context.Context) error {
	c.setCredential("")
	if err := c.store.Delete(ctx, tokens.SlotAccess, tokens.SlotRefresh, tokens.SlotUser); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (c *HTTPClient) GetTokens(ctx context.Context) (tokens.Pair, error) {
	return tokens.ReadPair(ctx, c.store)
}

func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := NewJSONRequest(method, path, in)
	if err != nil {
		return err
	}
	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// IsAuthFailure reports whether err means the user has to log in again.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrUnauthorized)
}
