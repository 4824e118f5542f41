// Package client is the authenticated HTTP client for the social backend.
//
// # Overview
//
// HTTPClient wraps every outbound call with a bearer credential read from an
// injected tokens.Store. When the backend answers 401 the client refreshes
// the access token once and reissues the request once with the new token.
// If the refresh cannot happen the stored credentials are cleared, the
// session-expired handler runs and Send returns ErrSessionExpired.
//
// The package also bootstraps the local sqlite file used by the sqlite
// credential store (InitDatabase, RunMigrations).
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx answers are *APIError
// values, which match ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrValidation or ErrServer through errors.Is.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Each Send owns its Request value,
// so the retried flag is never shared between calls. Concurrent 401s may
// each refresh; the last stored access token wins.
package client
