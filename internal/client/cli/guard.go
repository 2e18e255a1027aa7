package cli

import "context"

type commandFunc func(ctx context.Context) error

// requireAuth gates a command on a live session. When unauthenticated the
// command is not run and the user is pointed at the login flow instead.
// The guard holds no state: it consults the auth service on every dispatch.
func (a *App) requireAuth(cmd commandFunc) commandFunc {
	return func(ctx context.Context) error {
		if !a.auth.IsAuthenticated() {
			printlnFn("Please log in first (type 'login').")
			return nil
		}
		return cmd(ctx)
	}
}

// requireAdmin additionally requires the admin role. A logged-in user
// without it gets a "not permitted" notice, deliberately distinct from the
// login prompt of requireAuth.
func (a *App) requireAdmin(cmd commandFunc) commandFunc {
	return a.requireAuth(func(ctx context.Context) error {
		if u := a.auth.CurrentUser(); u == nil || !u.IsAdmin() {
			printlnFn("This command is restricted to administrators.")
			return nil
		}
		return cmd(ctx)
	})
}
