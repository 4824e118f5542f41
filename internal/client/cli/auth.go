package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, an email and a password and creates the
// account. The backend logs the new user in right away.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, username, email, password); err != nil {
		return err
	}
	if err := a.syncSession(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", username)
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.log.Debug(ctx, "login failed", "email", email, "error", err)
		return err
	}
	if err := a.syncSession(ctx); err != nil {
		return err
	}

	name := email
	if user != nil {
		name = user.Username
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setSession(models.Session{})
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.syncSession(ctx); err != nil {
		return err
	}
	s := a.currentSession()
	if !s.IsAuthenticated {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	if s.User != nil {
		fmt.Fprintf(a.out, "%s <%s>\n", s.User.Username, s.User.Email)
	}
	if s.UserID != "" {
		fmt.Fprintf(a.out, "user id: %s\n", s.UserID)
	}
	if !s.ExpiresAt.IsZero() {
		state := "valid"
		if s.Expired(time.Now()) {
			state = "expired, refreshed on next call"
		}
		fmt.Fprintf(a.out, "access token %s until %s\n", state, s.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}

// Refresh exchanges the refresh token for a new access token on demand.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.authService.Refresh(ctx); err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			a.onSessionExpired(ctx)
		}
		return err
	}
	if err := a.syncSession(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "access token refreshed")
	return nil
}
