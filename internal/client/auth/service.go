// Package auth holds the client-side authentication state machine: the single
// source of truth for who is logged in, and the only writer of the persisted
// session and of the API client's bearer token.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/alexkarev/travellog/internal/client/api"
	"github.com/alexkarev/travellog/internal/client/session"
	"github.com/alexkarev/travellog/internal/logging"
	"github.com/alexkarev/travellog/internal/models"
)

// Result is the outcome of an auth operation. Auth operations never return
// errors; failure is always expressed here so callers can render the message
// inline.
type Result struct {
	Success bool
	Message string
}

const (
	msgLoginFailed     = "Login failed. Please try again."
	msgRegisterFailed  = "Registration failed. Please try again."
	msgInvalidResponse = "Invalid response from server"
	msgRequestPending  = "Another request is already in progress"
)

// Backend is the slice of the API client the auth service needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	SetToken(token string)
	ClearToken()
}

// Service cycles between two states, unauthenticated and authenticated, for
// the lifetime of the process. All session transitions go through it: login,
// register, logout, profile updates, and the global teardown on a 401.
type Service struct {
	backend Backend
	store   session.Store
	log     logging.Logger

	mu       sync.Mutex
	user     *models.User
	inFlight bool
}

// NewService builds the service and resolves the initial state from the
// session store, without touching the network. A valid stored session puts
// the service directly into the authenticated state and installs the stored
// token on the backend.
func NewService(backend Backend, store session.Store, log logging.Logger) *Service {
	s := &Service{backend: backend, store: store, log: log}

	if token, user, ok := store.Load(); ok {
		s.user = user
		backend.SetToken(token)
	}
	return s
}

// IsAuthenticated reports the current state.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *Service) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// begin claims the single in-flight slot for login/register. A second call
// while one is pending is rejected rather than letting the late response
// overwrite state.
func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// Login authenticates against the backend. A response carrying both a token
// and a user moves the service to the authenticated state; everything else
// is reported as a failed Result.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	if !s.begin() {
		return Result{Message: msgRequestPending}
	}
	defer s.end()

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return s.failureFrom(ctx, err, msgLoginFailed)
	}
	if resp == nil || resp.Token == "" || resp.User == nil {
		return Result{Message: msgInvalidResponse}
	}

	s.establish(ctx, resp.Token, *resp.User)
	return Result{Success: true}
}

// Register creates an account and, on success, behaves exactly like Login.
func (s *Service) Register(ctx context.Context, name, email, password string) Result {
	if !s.begin() {
		return Result{Message: msgRequestPending}
	}
	defer s.end()

	resp, err := s.backend.Register(ctx, name, email, password)
	if err != nil {
		return s.failureFrom(ctx, err, msgRegisterFailed)
	}
	if resp == nil || resp.Token == "" || resp.User == nil {
		return Result{Message: msgInvalidResponse}
	}

	s.establish(ctx, resp.Token, *resp.User)
	return Result{Success: true}
}

// Logout tears the session down locally. It never fails and makes no
// network call.
func (s *Service) Logout() {
	s.teardown(context.Background())
}

// Invalidate is the 401 teardown path. The application wires it to the
// backend's unauthorized handler so an authentication rejection on any call
// forces the unauthenticated state.
func (s *Service) Invalidate() {
	s.teardown(context.Background())
}

// UpdateUser merges the patch into the current user and re-persists the user
// entry, leaving the token alone. A no-op when unauthenticated. Local only;
// pushing the change to the backend is the caller's concern.
func (s *Service) UpdateUser(patch models.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}

	merged := s.user.Merge(patch)
	s.user = &merged

	if err := s.store.SaveUser(merged); err != nil {
		s.log.Warn(context.Background(), "failed to persist user update", "error", err)
	}
}

// establish performs the unauthenticated -> authenticated transition:
// persist the session, set the in-memory user, install the bearer token.
func (s *Service) establish(ctx context.Context, token string, user models.User) {
	if err := s.store.Save(token, user); err != nil {
		// The in-memory session still works for this process; it just will
		// not survive a restart.
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.backend.SetToken(token)
}

func (s *Service) teardown(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.backend.ClearToken()
	if err := s.store.Clear(); err != nil {
		s.log.Warn(ctx, "failed to clear stored session", "error", err)
	}
}

// failureFrom normalizes transport failures, rejections, and backend error
// payloads into a Result. The backend-provided message wins when present.
func (s *Service) failureFrom(ctx context.Context, err error, fallback string) Result {
	s.log.Debug(ctx, "auth request failed", "error", err)

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Result{Message: apiErr.Message}
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return Result{Message: "Invalid credentials"}
	}
	return Result{Message: fallback}
}
