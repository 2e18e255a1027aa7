package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Settings(ctx context.Context) error {
	f.calls = append(f.calls, "settings")
	return nil
}
func (f *fakeExec) Feed(ctx context.Context, tag string) error {
	f.calls = append(f.calls, "feed")
	f.arg = tag
	return nil
}
func (f *fakeExec) Upload(ctx context.Context) error {
	f.calls = append(f.calls, "upload")
	return nil
}
func (f *fakeExec) Like(ctx context.Context, id string) error {
	f.calls = append(f.calls, "like")
	f.arg = id
	return nil
}
func (f *fakeExec) Reviews(ctx context.Context, destination string) error {
	f.calls = append(f.calls, "reviews")
	f.arg = destination
	return nil
}
func (f *fakeExec) AddReview(ctx context.Context) error {
	f.calls = append(f.calls, "review")
	return nil
}
func (f *fakeExec) Friends(ctx context.Context, email string) error {
	f.calls = append(f.calls, "friends")
	f.arg = email
	return nil
}
func (f *fakeExec) Follow(ctx context.Context, email string) error {
	f.calls = append(f.calls, "follow")
	f.arg = email
	return nil
}
func (f *fakeExec) Unfollow(ctx context.Context, email string) error {
	f.calls = append(f.calls, "unfollow")
	f.arg = email
	return nil
}
func (f *fakeExec) Recommend(ctx context.Context) error {
	f.calls = append(f.calls, "recommend")
	return nil
}
func (f *fakeExec) Trips(ctx context.Context) error {
	f.calls = append(f.calls, "trips")
	return nil
}
func (f *fakeExec) AddTrip(ctx context.Context) error {
	f.calls = append(f.calls, "addtrip")
	return nil
}
func (f *fakeExec) Flagged(ctx context.Context) error {
	f.calls = append(f.calls, "flagged")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, f *fakeExec, lines ...string) {
	t.Helper()
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(input))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{}
	runScript(t, f, "login", "feed", "trips", "logout", "exit")

	want := []string{"login", "feed", "trips", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestRunREPL_FeedPassesTag(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{loggedIn: true}
	runScript(t, f, "feed beaches", "exit")

	if f.arg != "beaches" {
		t.Fatalf("tag = %q, want %q", f.arg, "beaches")
	}
}

func TestRunREPL_LikeRequiresArgument(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{loggedIn: true}
	runScript(t, f, "like", "exit")

	if len(f.calls) != 0 {
		t.Fatalf("like without id must not dispatch, got %v", f.calls)
	}

	runScript(t, f, "like p42", "exit")
	if f.arg != "p42" {
		t.Fatalf("id = %q, want %q", f.arg, "p42")
	}
}

func TestRunREPL_ReviewsJoinsMultiWordDestination(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{loggedIn: true}
	runScript(t, f, "reviews Rio de Janeiro", "exit")

	if f.arg != "Rio de Janeiro" {
		t.Fatalf("destination = %q", f.arg)
	}
}

func TestRunREPL_FriendCommandsRequireEmail(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{loggedIn: true}
	runScript(t, f, "friends", "follow", "unfollow", "exit")

	if len(f.calls) != 0 {
		t.Fatalf("friend commands without an email must not dispatch, got %v", f.calls)
	}

	runScript(t, f, "friends sarah@example.com", "follow sarah@example.com", "unfollow sarah@example.com", "exit")
	want := []string{"friends", "follow", "unfollow"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
	if f.arg != "sarah@example.com" {
		t.Fatalf("email = %q", f.arg)
	}
}

func TestRunREPL_UnknownAndEmptyLinesAreIgnored(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{}
	runScript(t, f, "", "frobnicate", "exit")

	if len(f.calls) != 0 {
		t.Fatalf("unexpected dispatches: %v", f.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	f := &fakeExec{}
	input := strings.NewReader("login\n") // no exit, scanner just runs dry
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(input))

	if len(f.calls) != 1 || f.calls[0] != "login" {
		t.Fatalf("calls = %v", f.calls)
	}
}
