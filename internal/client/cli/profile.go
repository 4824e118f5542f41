package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

// Profile shows a user, the logged-in one by default.
func (a *App) Profile(ctx context.Context, args []string) error {
	id := a.userID()
	if len(args) > 0 {
		id = models.ID(args[0])
	}
	if id == "" {
		return usage("profile <user-id>")
	}
	u, err := a.userService.Get(ctx, id)
	if err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}

// Bio replaces the logged-in user's bio.
func (a *App) Bio(ctx context.Context, args []string) error {
	id := a.userID()
	if id == "" {
		return fmt.Errorf("bio: %w", common.ErrorInvalidID)
	}
	bio, err := a.textArg(args, "New bio")
	if err != nil {
		return err
	}
	u, err := a.userService.Update(ctx, id, models.UpdateUserRequest{Bio: &bio})
	if err != nil {
		return err
	}
	if err := a.syncSession(ctx); err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}
