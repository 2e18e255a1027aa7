package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, email, and password, and attempts to
// create an account. A successful registration also logs the user in, the
// same as Login. Failures are rendered inline; the error return is reserved
// for input/IO problems.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res := a.auth.Register(ctx, name, email, string(password))
	if !res.Success {
		printlnFn(res.Message)
		return nil
	}

	printlnFn("Account created. You are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted, so the next start of the program skips the login.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res := a.auth.Login(ctx, email, string(password))
	if !res.Success {
		printlnFn(res.Message)
		return nil
	}

	if u := a.auth.CurrentUser(); u != nil {
		printlnFn("Welcome back, " + u.Name + "!")
	}
	return nil
}

// Logout tears the session down locally. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	printlnFn("Logged out.")
	return nil
}
