package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
)

// Client is what the REST services depend on. HTTPClient implements it.
type Client interface {
	// Send issues req with the stored bearer credential and applies the
	// refresh-and-retry protocol on 401.
	Send(ctx context.Context, req Request) (*Response, error)
	// Do marshals in as JSON, sends it and decodes the answer into out.
	// in and out may be nil.
	Do(ctx context.Context, method, path string, in, out any) error
	// Refresh exchanges the stored refresh token for a new access token.
	// Failures end the session the same way a failed refresh inside Send does.
	Refresh(ctx context.Context) error
	StoreTokens(ctx context.Context, access, refresh string) error
	// ClearTokens removes both tokens and the cached user.
	ClearTokens(ctx context.Context) error
	GetTokens(ctx context.Context) (tokens.Pair, error)
}

func Get(ctx context.Context, c Client, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func Post(ctx context.Context, c Client, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

func Put(ctx context.Context, c Client, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, in, out)
}

func Patch(ctx context.Context, c Client, path string, in, out any) error {
	return c.Do(ctx, http.MethodPatch, path, in, out)
}

func Delete(ctx context.Context, c Client, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
