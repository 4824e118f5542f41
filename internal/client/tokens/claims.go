package tokens

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/socialcli/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned for access tokens that are not JWTs.
var ErrMalformedToken = fmt.Errorf("malformed %w", common.ErrInvalidToken)

// Claims are the access-token fields the client displays.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseClaims decodes an access token without verifying its signature;
// the backend is the only verifier.
func ParseClaims(access string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var c Claims
	exp, err := mc.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}

	switch v := mc["user_id"].(type) {
	case string:
		c.UserID = v
	case float64:
		c.UserID = strconv.FormatInt(int64(v), 10)
	}
	if c.UserID == "" {
		if sub, err := mc.GetSubject(); err == nil {
			c.UserID = sub
		}
	}

	return c, nil
}
