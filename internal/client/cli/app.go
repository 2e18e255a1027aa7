package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/alexkarev/travellog/internal/client/api"
	"github.com/alexkarev/travellog/internal/client/auth"
	"github.com/alexkarev/travellog/internal/client/config"
	"github.com/alexkarev/travellog/internal/client/session"
	"github.com/alexkarev/travellog/internal/logging"
	"github.com/alexkarev/travellog/internal/models"
)

// authIface is the slice of the auth service the CLI needs. The real
// *auth.Service satisfies it; tests can provide a stub.
type authIface interface {
	Login(ctx context.Context, email, password string) auth.Result
	Register(ctx context.Context, name, email, password string) auth.Result
	Logout()
	Invalidate()
	UpdateUser(patch models.UserPatch)
	CurrentUser() *models.User
	IsAuthenticated() bool
}

type App struct {
	config  *config.Config
	backend api.Backend
	auth    authIface
	reader  *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	dir := c.StateDir
	if dir == "" {
		var err error
		dir, err = session.DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	backend := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	store := session.NewFileStore(dir)
	authSvc := auth.NewService(backend, store, log)

	a := &App{
		config:  c,
		backend: backend,
		auth:    authSvc,
		reader:  bufio.NewReader(os.Stdin),
	}

	// The HTTP layer only reports "authentication invalidated"; tearing the
	// session down and putting the user back at the logged-out prompt is
	// wired here, at the application level.
	backend.SetUnauthorizedHandler(a.sessionExpired)

	return a, nil
}

// sessionExpired is the global 401 reaction: teardown plus a notice,
// regardless of which command triggered the rejected call. A 401 on the
// login call itself arrives with no live session and stays quiet; the
// login command reports its own failure.
func (a *App) sessionExpired() {
	if !a.auth.IsAuthenticated() {
		return
	}
	a.auth.Invalidate()
	printlnFn("Session expired. Please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	u := a.auth.CurrentUser()
	return u != nil && u.IsAdmin()
}

func (a *App) getStatus() string {
	if u := a.auth.CurrentUser(); u != nil {
		return "(" + u.Email + ")"
	}
	return "(guest)"
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to TravelLog CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
