package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/client/tokens"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login/Register: anonymous calls; on success the token pair is stored
//     through the client and the returned user is cached.
//   - Logout: drop tokens and the cached user.
//   - Session: the auth state derived from the stored access token.
//   - Refresh: exchange the refresh token for a new access token on demand.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.UserSummary, error)
	Register(ctx context.Context, username, email string, password []byte) (*models.UserSummary, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (models.Session, error)
	Refresh(ctx context.Context) error
}

// authService reads the cached user blob from store directly; every
// credential write goes through the client.
type authService struct {
	client client.Client
	store  tokens.Store
}

func NewAuthService(c client.Client, store tokens.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.UserSummary, error) {
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		return nil, fmt.Errorf("login: %w", common.ErrorEmptyInput)
	}
	user, err := a.authenticate(ctx, loginPath, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return user, nil
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) (*models.UserSummary, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || len(password) == 0 {
		return nil, fmt.Errorf("register: %w", common.ErrorEmptyInput)
	}
	req := models.RegisterRequest{Username: username, Email: email, Password: string(password)}
	user, err := a.authenticate(ctx, registerPath, req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return user, nil
}

func (a *authService) authenticate(ctx context.Context, path string, in any) (*models.UserSummary, error) {
	req, err := client.NewJSONRequest(http.MethodPost, path, in)
	if err != nil {
		return nil, err
	}
	req.Anonymous = true

	resp, err := a.client.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	var out models.AuthResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if err := a.client.StoreTokens(ctx, out.Access, out.Refresh); err != nil {
		return nil, err
	}
	if out.User != nil {
		if err := a.cacheUser(ctx, *out.User); err != nil {
			return nil, err
		}
	}
	return out.User, nil
}

func (a *authService) cacheUser(ctx context.Context, u models.UserSummary) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, map[tokens.Slot]string{tokens.SlotUser: string(b)})
}

func (a *authService) cachedUser(ctx context.Context) (*models.UserSummary, error) {
	raw, err := a.store.Get(ctx, tokens.SlotUser)
	if err != nil || raw == "" {
		return nil, err
	}
	var u models.UserSummary
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.ClearTokens(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Session reports an authenticated state whenever an access token is
// stored. Opaque (non-JWT) tokens are accepted; the claims stay empty.
func (a *authService) Session(ctx context.Context) (models.Session, error) {
	pair, err := a.client.GetTokens(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("session: %w", err)
	}
	if !pair.HasAccess() {
		return models.Session{}, nil
	}

	s := models.Session{IsAuthenticated: true}
	if claims, err := tokens.ParseClaims(pair.Access); err == nil {
		s.UserID = models.ID(claims.UserID)
		s.ExpiresAt = claims.ExpiresAt
	}

	s.User, err = a.cachedUser(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("session: %w", err)
	}
	if s.User != nil && s.UserID == "" {
		s.UserID = s.User.ID
	}
	return s, nil
}

// Refresh delegates to the client so an explicit refresh ends the session
// on exactly the paths a transparent one does.
func (a *authService) Refresh(ctx context.Context) error {
	if err := a.client.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}
