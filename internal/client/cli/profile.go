package cli

import (
	"context"
	"os"

	"github.com/alexkarev/travellog/internal/models"
)

func (a *App) Profile(ctx context.Context) error {
	return a.requireAuth(a.profile)(ctx)
}

func (a *App) profile(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		return nil
	}

	printlnFn("Name:  " + u.Name)
	printlnFn("Email: " + u.Email)
	printlnFn("Role:  " + string(u.EffectiveRole()))
	if u.Avatar != "" {
		printlnFn("Avatar: " + u.Avatar)
	}
	if u.Bio != "" {
		printlnFn("Bio:   " + u.Bio)
	}
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	return a.requireAuth(a.settings)(ctx)
}

// settings edits the mutable profile fields. Email is identity and is
// deliberately not offered for editing. Empty input keeps the current value.
func (a *App) settings(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New display name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "New avatar URL (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "New bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.UserPatch
	if name != "" {
		patch.Name = &name
	}
	if avatar != "" {
		patch.Avatar = &avatar
	}
	if bio != "" {
		patch.Bio = &bio
	}
	if patch.Name == nil && patch.Avatar == nil && patch.Bio == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	a.auth.UpdateUser(patch)

	// Push the change to the backend as well; the local update above already
	// succeeded, so a failure here only means the server copy lags behind.
	if err := a.backend.SaveProfile(ctx, patch); err != nil {
		printlnFn("Warning: could not save profile to the server:", err.Error())
	} else {
		printlnFn("Profile updated.")
	}
	return nil
}
