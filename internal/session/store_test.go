package session

import (
	"context"
	"errors"
	"testing"

	"taskdeck/internal/model"
	pkgLog "taskdeck/pkg/log"
	"taskdeck/pkg/taskapi"
)

type mockAuthAPI struct {
	registerCalls int
	loginCalls    int
	registerFunc  func(ctx context.Context, req taskapi.RegisterRequest) error
	loginFunc     func(ctx context.Context, req taskapi.LoginRequest) (*taskapi.LoginResponse, error)
}

func (m *mockAuthAPI) Register(ctx context.Context, req taskapi.RegisterRequest) error {
	m.registerCalls++
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil
}

func (m *mockAuthAPI) Login(ctx context.Context, req taskapi.LoginRequest) (*taskapi.LoginResponse, error) {
	m.loginCalls++
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &taskapi.LoginResponse{
		Token: "tok-123",
		User:  taskapi.User{ID: 42, Username: "ada", Email: "ada@example.com"},
	}, nil
}

func openStore(t *testing.T, dir string) (*Store, *mockAuthAPI) {
	t.Helper()
	s, err := Open(pkgLog.NewNop(), dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	api := &mockAuthAPI{}
	s.BindAPI(api)
	return s, api
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credentials never reach the backend", func(t *testing.T) {
		s, api := openStore(t, t.TempDir())

		if _, err := s.Login(ctx, "", "secret"); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if _, err := s.Login(ctx, "a@b.c", ""); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if api.loginCalls != 0 {
			t.Errorf("backend called %d times on invalid input", api.loginCalls)
		}
	})

	t.Run("success persists token and profile", func(t *testing.T) {
		dir := t.TempDir()
		s, _ := openStore(t, dir)

		user, err := s.Login(ctx, "ada@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "42" || user.Username != "ada" {
			t.Errorf("unexpected user: %+v", user)
		}
		if !s.IsAuthenticated() {
			t.Error("expected authenticated session")
		}

		// A fresh store from the same dir sees the session.
		reopened, _ := openStore(t, dir)
		if !reopened.IsAuthenticated() {
			t.Error("session did not survive reopen")
		}
		if cached, ok := reopened.CurrentUser(); !ok || cached.Email != "ada@example.com" {
			t.Errorf("profile did not survive reopen: %+v", cached)
		}
	})

	t.Run("backend failure leaves the session unauthenticated", func(t *testing.T) {
		s, api := openStore(t, t.TempDir())
		api.loginFunc = func(ctx context.Context, req taskapi.LoginRequest) (*taskapi.LoginResponse, error) {
			return nil, errors.New("invalid credentials")
		}

		if _, err := s.Login(ctx, "ada@example.com", "wrong"); err == nil {
			t.Fatal("expected error")
		}
		if s.IsAuthenticated() {
			t.Error("failed login must not authenticate")
		}
	})
}

func TestStore_Register(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"missing username", RegisterInput{Email: "a@b.c", Password: "longenough", ConfirmPassword: "longenough"}, ErrMissingFields},
		{"missing email", RegisterInput{Username: "ada", Password: "longenough", ConfirmPassword: "longenough"}, ErrMissingFields},
		{"mismatched passwords", RegisterInput{Username: "ada", Email: "a@b.c", Password: "longenough", ConfirmPassword: "different"}, ErrPasswordMismatch},
		{"short password", RegisterInput{Username: "ada", Email: "a@b.c", Password: "short", ConfirmPassword: "short"}, ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, api := openStore(t, t.TempDir())
			if err := s.Register(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if api.registerCalls != 0 {
				t.Error("validation failures must not reach the backend")
			}
		})
	}

	t.Run("valid input reaches the backend without logging in", func(t *testing.T) {
		s, api := openStore(t, t.TempDir())
		in := RegisterInput{Username: "ada", Email: "a@b.c", Password: "longenough", ConfirmPassword: "longenough"}

		if err := s.Register(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.registerCalls != 1 {
			t.Errorf("expected one register call, got %d", api.registerCalls)
		}
		if s.IsAuthenticated() {
			t.Error("register alone must not establish a session")
		}
	})
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := openStore(t, dir)

	if _, err := s.Login(ctx, "ada@example.com", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	s.SetTheme(ctx, model.ThemeDark)

	s.Logout(ctx)
	if s.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Error("profile survived logout")
	}

	// Idempotent, and the theme preference survives a reopen.
	s.Logout(ctx)
	reopened, _ := openStore(t, dir)
	if reopened.IsAuthenticated() {
		t.Error("logout did not persist")
	}
	if reopened.Theme() != model.ThemeDark {
		t.Errorf("theme lost on logout, got %s", reopened.Theme())
	}
}

func TestStore_TokenSource(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t, t.TempDir())

	tok, err := s.Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Valid() {
		t.Error("empty session must yield an invalid token")
	}

	if _, err := s.Login(ctx, "ada@example.com", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	tok, _ = s.Token()
	if !tok.Valid() || tok.AccessToken != "tok-123" {
		t.Errorf("expected valid token tok-123, got %+v", tok)
	}
}
