// Package cli provides the interactive TravelLog command-line client.
//
// It wires configuration, the persisted session, the HTTP API client, and an
// interactive REPL. On startup the session is rehydrated from disk, so a
// previously logged-in user lands directly in the authenticated prompt
// without a network call.
//
// Key features:
//   - Register / Login / Logout against the remote backend
//   - Browse the photo feed, upload photos, like posts
//   - Read and write destination reviews
//   - View other travelers' profiles, follow and unfollow them
//   - Request travel recommendations
//   - Track trips and their expenses
//   - Profile display and settings (email is not editable)
//
// Commands that need a session are gated by declarative guards (see
// guard.go); admin-only commands additionally require the admin role.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
