package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/config"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/client/services"
	"github.com/dmitrijs2005/socialcli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	out     io.Writer
	reader  *bufio.Reader
	closers []func() error

	authService    services.AuthService
	postService    services.PostService
	commentService services.CommentService
	userService    services.UserService
	feedService    services.FeedService

	mu      sync.RWMutex
	session models.Session
}

// NewApp wires config, logger, credential store, API client and services.
// The App reads prompts from in and writes user-facing output to out.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "error opening credential store", "backend", cfg.StoreBackend, "error", err)
		return nil, err
	}

	a := &App{
		config:  cfg,
		log:     logger,
		out:     out,
		reader:  bufio.NewReader(in),
		closers: []func() error{closeStore},
	}

	api := client.New(cfg.ServerURL, store,
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		client.WithLogger(logger.With("component", "api")),
		client.WithSessionExpiredHandler(a.onSessionExpired),
	)

	a.authService = services.NewAuthService(api, store)
	a.postService = services.NewPostService(api)
	a.commentService = services.NewCommentService(api)
	a.userService = services.NewUserService(api, store)
	a.feedService = services.NewFeedService(a.postService, a.commentService, services.DefaultFeedConcurrency)

	if err := a.syncSession(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	return a, nil
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	return errors.Join(errs...)
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the social CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// onSessionExpired may run from several goroutines at once when a feed
// load fails to refresh; only the call that logs the App out prints.
func (a *App) onSessionExpired(ctx context.Context) {
	a.mu.Lock()
	wasLoggedIn := a.session.IsAuthenticated
	a.session = models.Session{}
	a.mu.Unlock()

	if !wasLoggedIn {
		return
	}
	a.log.Info(ctx, "session expired")
	fmt.Fprintln(a.out, "session expired, please log in")
}

func (a *App) syncSession(ctx context.Context) error {
	s, err := a.authService.Session(ctx)
	if err != nil {
		return err
	}
	a.setSession(s)
	return nil
}

func (a *App) setSession(s models.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) currentSession() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.currentSession().IsAuthenticated
}

// userID is the logged-in user's id, or "" when unknown.
func (a *App) userID() models.ID {
	s := a.currentSession()
	if s.UserID != "" {
		return s.UserID
	}
	if s.User != nil {
		return s.User.ID
	}
	return ""
}

func (a *App) getStatus() string {
	s := a.currentSession()
	switch {
	case s.User != nil:
		return "(" + s.User.Username + ")"
	case s.IsAuthenticated:
		return "(logged in)"
	default:
		return ""
	}
}
