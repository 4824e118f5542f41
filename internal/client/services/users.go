package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id models.ID) (models.User, error)
	// Update PATCHes the non-nil fields of in. When id is the cached session
	// user, the cache is rewritten from the answer.
	Update(ctx context.Context, id models.ID, in models.UpdateUserRequest) (models.User, error)
}

type userService struct {
	client client.Client
	store  tokens.Store
}

func NewUserService(c client.Client, store tokens.Store) UserService {
	return &userService{client: c, store: store}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := client.Get(ctx, s.client, usersPath, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id models.ID) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}
	var u models.User
	if err := client.Get(ctx, s.client, userPath(id), &u); err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id models.ID, in models.UpdateUserRequest) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}
	var u models.User
	if err := client.Patch(ctx, s.client, userPath(id), in, &u); err != nil {
		return models.User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	if err := s.refreshCache(ctx, u); err != nil {
		return u, fmt.Errorf("update user %s: cache: %w", id, err)
	}
	return u, nil
}

func (s *userService) refreshCache(ctx context.Context, u models.User) error {
	raw, err := s.store.Get(ctx, tokens.SlotUser)
	if err != nil || raw == "" {
		return err
	}
	var cached models.UserSummary
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached.ID != u.ID {
		return nil
	}
	b, err := json.Marshal(u.Summary())
	if err != nil {
		return err
	}
	return s.store.Set(ctx, map[tokens.Slot]string{tokens.SlotUser: string(b)})
}
