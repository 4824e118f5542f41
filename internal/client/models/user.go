package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID        ID        `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active,omitempty"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

// Summary trims a full profile down to what the session caches.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserSummary is the user blob cached next to the credentials.
type UserSummary struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest is a PATCH body; nil fields are left untouched.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// Author is the embedded user shown on posts and comments.
type Author struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// UnmarshalJSON accepts the embedded user object as well as a bare primary
// key, which serializers without a nested author field emit.
func (a *Author) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		type plain Author
		var p plain
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		*a = Author(p)
		return nil
	}

	var id ID
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("author: %w", err)
	}
	*a = Author{ID: id}
	return nil
}

// DisplayName prefers the full name over the handle, then the id.
func (a Author) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Username != "":
		return a.Username
	default:
		return a.ID.String()
	}
}
