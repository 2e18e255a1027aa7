package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	Feed(ctx context.Context, tag string) error
	Upload(ctx context.Context) error
	Like(ctx context.Context, id string) error
	Reviews(ctx context.Context, destination string) error
	AddReview(ctx context.Context) error
	Friends(ctx context.Context, email string) error
	Follow(ctx context.Context, email string) error
	Unfollow(ctx context.Context, email string) error
	Recommend(ctx context.Context) error
	Trips(ctx context.Context) error
	AddTrip(ctx context.Context) error
	Flagged(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the TravelLog CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Guarded commands perform their own auth check on every dispatch, so the
// help text below is a hint, not an access-control mechanism.
//
//	Not logged in:
//	  - help | register | login | exit
//
//	Logged in:
//	  - feed [tag]        - browse the photo feed
//	  - upload            - post a photo
//	  - like <id>         - like a post
//	  - reviews [place]   - browse destination reviews
//	  - review            - write a review
//	  - friends <email>   - view another traveler's profile
//	  - follow/unfollow <email>
//	  - recommend         - travel recommendations
//	  - trips / addtrip   - trip expense log
//	  - profile, settings - account
//	  - flagged           - moderation queue (admin)
//	  - logout, exit
//
// Any errors returned by command handlers are ignored here; handlers render
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tl %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				commands := "Available commands: feed [tag], upload, like <id>, reviews [place], review, friends <email>, follow <email>, unfollow <email>, recommend, trips, addtrip, profile, settings, logout, exit"
				if a.isAdmin() {
					commands += ", flagged"
				}
				printlnFn(commands)
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "feed":
			tag := ""
			if len(args) > 0 {
				tag = args[0]
			}
			_ = a.Feed(ctx, tag)

		case "upload":
			_ = a.Upload(ctx)

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <id>")
				continue
			}
			_ = a.Like(ctx, args[0])

		case "reviews":
			destination := strings.Join(args, " ")
			_ = a.Reviews(ctx, destination)

		case "review":
			_ = a.AddReview(ctx)

		case "friends":
			if len(args) == 0 {
				printlnFn("Usage: friends <email>")
				continue
			}
			_ = a.Friends(ctx, args[0])

		case "follow":
			if len(args) == 0 {
				printlnFn("Usage: follow <email>")
				continue
			}
			_ = a.Follow(ctx, args[0])

		case "unfollow":
			if len(args) == 0 {
				printlnFn("Usage: unfollow <email>")
				continue
			}
			_ = a.Unfollow(ctx, args[0])

		case "recommend":
			_ = a.Recommend(ctx)

		case "trips":
			_ = a.Trips(ctx)

		case "addtrip":
			_ = a.AddTrip(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "flagged":
			_ = a.Flagged(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
