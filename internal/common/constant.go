// Package common contains shared constants and sentinel errors used across
// socialcli components.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme is the auth scheme prefix expected by the backend.
	BearerScheme = "Bearer"
	// RequestIDHeaderName is attached to every outbound request for tracing.
	RequestIDHeaderName = "X-Request-Id"
	ContentTypeJSON     = "application/json"
)
