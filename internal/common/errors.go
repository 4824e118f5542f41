// Package common defines shared constants and sentinel errors used across
// client layers of socialcli. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Validation errors raised before a request leaves the process.
	ErrorEmptyInput = errors.New("empty input")
	ErrorInvalidID  = errors.New("invalid id")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
)
