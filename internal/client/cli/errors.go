package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// describeError turns a command error into the line shown to the user.
// It returns "" for an expired session, which the session-expired handler
// has already reported.
func describeError(err error) string {
	switch {
	case err == nil, errors.Is(err, client.ErrSessionExpired):
		return ""
	case errors.Is(err, errUsage):
		return err.Error()
	case errors.Is(err, common.ErrorEmptyInput):
		return "nothing to send: text is empty"
	case errors.Is(err, common.ErrorInvalidID):
		return "invalid id"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return "error: " + err.Error()
	}

	switch {
	case len(apiErr.Fields) > 0:
		return "invalid input: " + apiErr.FieldSummary()
	case errors.Is(apiErr, client.ErrNotFound):
		return "not found"
	case errors.Is(apiErr, client.ErrForbidden):
		return "not allowed: " + apiErr.Detail
	case errors.Is(apiErr, client.ErrUnauthorized):
		return "unauthorized: " + apiErr.Detail
	case errors.Is(apiErr, client.ErrServer):
		if apiErr.RequestID != "" {
			return fmt.Sprintf("server error (request id %s)", apiErr.RequestID)
		}
		return "server error"
	default:
		return "error: " + apiErr.Error()
	}
}
