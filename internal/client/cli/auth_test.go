package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/socialcli/internal/client/client"
	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/logging"
)

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	regUser, regEmail string
	regPass           []byte
	regErr            error

	loginEmail string
	loginPass  []byte
	loginUser  *models.UserSummary
	loginErr   error

	logoutCalled bool
	logoutErr    error

	refreshErr error

	session models.Session
}

func (f *fakeAuth) Register(_ context.Context, user, email string, pass []byte) (*models.UserSummary, error) {
	f.regUser, f.regEmail, f.regPass = user, email, append([]byte(nil), pass...)
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.session = models.Session{IsAuthenticated: true, User: &models.UserSummary{ID: "1", Username: user, Email: email}}
	return f.session.User, nil
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) (*models.UserSummary, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.session = models.Session{IsAuthenticated: true, User: f.loginUser}
	return f.loginUser, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	if f.logoutErr == nil {
		f.session = models.Session{}
	}
	return f.logoutErr
}

func (f *fakeAuth) Session(context.Context) (models.Session, error) { return f.session, nil }

func (f *fakeAuth) Refresh(context.Context) error {
	if errors.Is(f.refreshErr, client.ErrSessionExpired) {
		f.session = models.Session{}
	}
	return f.refreshErr
}

func newAuthApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: f, out: &out, log: logging.Nop()}, &out
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	password := []byte("secret")
	stubInputs(t, []string{"alice", "alice@example.org"}, password)

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" || f.regEmail != "alice@example.org" {
		t.Fatalf("Register input mismatch: %q %q", f.regUser, f.regEmail)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
	if !bytes.Equal(password, make([]byte, len(password))) {
		t.Fatalf("password not wiped: %q", password)
	}
	if !a.isLoggedIn() || a.getStatus() != "(alice)" {
		t.Fatalf("session not synced, status %q", a.getStatus())
	}
	if !strings.Contains(out.String(), "Welcome, alice!") {
		t.Fatalf("output %q", out.String())
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{loginUser: &models.UserSummary{ID: "7", Username: "ann"}}
	a, out := newAuthApp(f)
	stubInputs(t, []string{"ann@example.com"}, []byte("pw"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "ann@example.com" || string(f.loginPass) != "pw" {
		t.Fatalf("Login input mismatch: %q %q", f.loginEmail, f.loginPass)
	}
	if a.userID() != "7" {
		t.Fatalf("userID %q", a.userID())
	}
	if !strings.Contains(out.String(), "Logged in as ann") {
		t.Fatalf("output %q", out.String())
	}
}

func TestLogin_ErrorKeepsLoggedOut(t *testing.T) {
	f := &fakeAuth{loginErr: &client.APIError{StatusCode: 401, Detail: "No active account found with the given credentials"}}
	a, _ := newAuthApp(f)
	stubInputs(t, []string{"ann@example.com"}, []byte("bad"))

	err := a.Login(context.Background())
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatal("must stay logged out")
	}
}

func TestLogin_InputError(t *testing.T) {
	a, _ := newAuthApp(&fakeAuth{})
	stubInputs(t, nil, nil)

	if err := a.Login(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	a.setSession(models.Session{IsAuthenticated: true})

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("Logout not called")
	}
	if a.isLoggedIn() {
		t.Fatal("session not cleared")
	}
	if out.String() != "Logged out\n" {
		t.Fatalf("output %q", out.String())
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("store-fail")}
	a, _ := newAuthApp(f)
	a.setSession(models.Session{IsAuthenticated: true})

	if err := a.Logout(context.Background()); err == nil {
		t.Fatal("want error from Logout")
	}
	if !a.isLoggedIn() {
		t.Fatal("session must survive a failed logout")
	}
}

func TestRefresh_ExpiredSessionLogsOut(t *testing.T) {
	f := &fakeAuth{refreshErr: client.ErrSessionExpired}
	a, out := newAuthApp(f)
	a.setSession(models.Session{IsAuthenticated: true})

	err := a.Refresh(context.Background())
	if !errors.Is(err, client.ErrSessionExpired) {
		t.Fatalf("want ErrSessionExpired, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatal("still logged in")
	}
	if !strings.Contains(out.String(), "session expired, please log in") {
		t.Fatalf("output %q", out.String())
	}
}

func TestOnSessionExpired_PrintsOnce(t *testing.T) {
	a, out := newAuthApp(&fakeAuth{})
	a.setSession(models.Session{IsAuthenticated: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.onSessionExpired(context.Background())
		}()
	}
	wg.Wait()

	if n := strings.Count(out.String(), "session expired, please log in"); n != 1 {
		t.Fatalf("message printed %d times: %q", n, out.String())
	}
	if a.isLoggedIn() {
		t.Fatal("still logged in")
	}
}

func TestOnSessionExpired_LoggedOutIsSilent(t *testing.T) {
	a, out := newAuthApp(&fakeAuth{})
	a.onSessionExpired(context.Background())
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestWhoAmI_LoggedOut(t *testing.T) {
	a, out := newAuthApp(&fakeAuth{})
	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatal(err)
	}
	if out.String() != "not logged in\n" {
		t.Fatalf("output %q", out.String())
	}
}
