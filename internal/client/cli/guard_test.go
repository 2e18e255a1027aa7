package cli

import (
	"context"
	"testing"

	"github.com/alexkarev/travellog/internal/client/auth"
	"github.com/alexkarev/travellog/internal/models"
)

type stubAuth struct {
	user *models.User

	loginRes    auth.Result
	registerRes auth.Result

	loggedOut   bool
	invalidated bool
	patch       *models.UserPatch
}

func (s *stubAuth) Login(_ context.Context, _, _ string) auth.Result    { return s.loginRes }
func (s *stubAuth) Register(_ context.Context, _, _, _ string) auth.Result {
	return s.registerRes
}
func (s *stubAuth) Logout()     { s.loggedOut = true; s.user = nil }
func (s *stubAuth) Invalidate() { s.invalidated = true; s.user = nil }
func (s *stubAuth) UpdateUser(p models.UserPatch) {
	s.patch = &p
}
func (s *stubAuth) CurrentUser() *models.User { return s.user }
func (s *stubAuth) IsAuthenticated() bool     { return s.user != nil }

func TestRequireAuth_BlocksWhenUnauthenticated(t *testing.T) {
	silencePrintln(t)

	a := &App{auth: &stubAuth{}}
	called := false
	cmd := a.requireAuth(func(ctx context.Context) error { called = true; return nil })

	if err := cmd(context.Background()); err != nil {
		t.Fatalf("guard err: %v", err)
	}
	if called {
		t.Fatalf("guarded command ran while unauthenticated")
	}
}

func TestRequireAuth_RunsWhenAuthenticated(t *testing.T) {
	silencePrintln(t)

	a := &App{auth: &stubAuth{user: &models.User{ID: "u1", Role: models.RoleUser}}}
	called := false
	cmd := a.requireAuth(func(ctx context.Context) error { called = true; return nil })

	if err := cmd(context.Background()); err != nil {
		t.Fatalf("guard err: %v", err)
	}
	if !called {
		t.Fatalf("guarded command did not run")
	}
}

func TestRequireAdmin_BlocksPlainUser(t *testing.T) {
	silencePrintln(t)

	a := &App{auth: &stubAuth{user: &models.User{ID: "u1", Role: models.RoleUser}}}
	called := false
	cmd := a.requireAdmin(func(ctx context.Context) error { called = true; return nil })

	_ = cmd(context.Background())
	if called {
		t.Fatalf("admin command ran for a plain user")
	}
}

func TestRequireAdmin_RunsForAdmin(t *testing.T) {
	silencePrintln(t)

	a := &App{auth: &stubAuth{user: &models.User{ID: "u1", Role: models.RoleAdmin}}}
	called := false
	cmd := a.requireAdmin(func(ctx context.Context) error { called = true; return nil })

	_ = cmd(context.Background())
	if !called {
		t.Fatalf("admin command did not run for an admin")
	}
}

func TestRequireAdmin_DefaultRoleIsNotAdmin(t *testing.T) {
	silencePrintln(t)

	// Role omitted defaults to "user".
	a := &App{auth: &stubAuth{user: &models.User{ID: "u1"}}}
	called := false
	cmd := a.requireAdmin(func(ctx context.Context) error { called = true; return nil })

	_ = cmd(context.Background())
	if called {
		t.Fatalf("admin command ran without the admin role")
	}
}
