package session

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/oauth2"

	"taskdeck/internal/model"
	"taskdeck/pkg/log"
	"taskdeck/pkg/taskapi"
)

// AuthAPI is the slice of the gateway the session store needs.
type AuthAPI interface {
	Register(ctx context.Context, req taskapi.RegisterRequest) error
	Login(ctx context.Context, req taskapi.LoginRequest) (*taskapi.LoginResponse, error)
}

// Store owns the authentication session: the durable token and the
// cached user profile. It is handed to the gateway as an explicit
// dependency (it implements oauth2.TokenSource), never reached through
// a global.
type Store struct {
	l   log.Logger
	api AuthAPI
	dir string

	mu sync.RWMutex
	st state
}

// RegisterInput carries the register form fields.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Open reads the durable state from dir and returns the store. A
// missing state file yields an unauthenticated session. The gateway is
// bound afterwards with BindAPI: the client needs the store as its
// token source before the store can reach the backend through it.
func Open(l log.Logger, dir string) (*Store, error) {
	st, err := loadState(dir)
	if err != nil {
		return nil, err
	}
	if st.Theme == "" {
		st.Theme = model.ThemeLight
	}
	return &Store{l: l, dir: dir, st: st}, nil
}

// BindAPI attaches the auth slice of the gateway. Must happen before
// Login or Register.
func (s *Store) BindAPI(api AuthAPI) { s.api = api }

// Login authenticates against the backend and, on success, stores the
// token and profile durably. No retry is performed; callers re-invoke
// on failure.
func (s *Store) Login(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, ErrMissingCredentials
	}

	resp, err := s.api.Login(ctx, taskapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:       strconv.FormatInt(resp.User.ID, 10),
		Username: resp.User.Username,
		Email:    resp.User.Email,
	}

	s.mu.Lock()
	s.st.Token = resp.Token
	s.st.User = &user
	err = saveState(s.dir, s.st)
	s.mu.Unlock()
	if err != nil {
		s.l.Errorf(ctx, "session: failed to persist login state: %v", err)
	}

	s.l.Infof(ctx, "session: logged in as %s", user.Username)
	return user, nil
}

// Register creates an account. Validation runs before any network
// call; success does not establish a session.
func (s *Store) Register(ctx context.Context, in RegisterInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(in.Password) < 8 {
		return ErrPasswordTooShort
	}

	return s.api.Register(ctx, taskapi.RegisterRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
}

// Logout clears the token and cached profile synchronously. Idempotent;
// the theme preference survives.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.st.Token = ""
	s.st.User = nil
	err := saveState(s.dir, s.st)
	s.mu.Unlock()
	if err != nil {
		s.l.Errorf(ctx, "session: failed to persist logout: %v", err)
	}
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Token != ""
}

// CurrentUser returns the cached profile, if any.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User == nil {
		return model.User{}, false
	}
	return *s.st.User, true
}

// Theme returns the persisted appearance preference.
func (s *Store) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Theme
}

// SetTheme persists the appearance preference.
func (s *Store) SetTheme(ctx context.Context, theme model.Theme) {
	s.mu.Lock()
	s.st.Theme = theme
	err := saveState(s.dir, s.st)
	s.mu.Unlock()
	if err != nil {
		s.l.Errorf(ctx, "session: failed to persist theme: %v", err)
	}
}

// Token implements oauth2.TokenSource. An absent session yields an
// invalid token, which the gateway transport leaves unattached.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &oauth2.Token{AccessToken: s.st.Token}, nil
}
