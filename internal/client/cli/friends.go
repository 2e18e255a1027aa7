package cli

import (
	"context"
	"fmt"
)

func (a *App) Friends(ctx context.Context, email string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.friends(ctx, email) })(ctx)
}

func (a *App) friends(ctx context.Context, email string) error {
	profile, err := a.backend.FriendProfile(ctx, email)
	if err != nil {
		printlnFn("Could not load the profile:", err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", profile.Name, profile.Email))
	if profile.Bio != "" {
		printlnFn("    " + profile.Bio)
	}
	if profile.Following {
		printlnFn("    You follow this traveler.")
	}
	if len(profile.Posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}
	for _, p := range profile.Posts {
		printlnFn(formatPost(p))
	}
	return nil
}

func (a *App) Follow(ctx context.Context, email string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.follow(ctx, email) })(ctx)
}

func (a *App) follow(ctx context.Context, email string) error {
	if err := a.backend.Follow(ctx, email); err != nil {
		printlnFn("Could not follow:", err.Error())
		return nil
	}
	printlnFn("Now following " + email)
	return nil
}

func (a *App) Unfollow(ctx context.Context, email string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.unfollow(ctx, email) })(ctx)
}

func (a *App) unfollow(ctx context.Context, email string) error {
	if err := a.backend.Unfollow(ctx, email); err != nil {
		printlnFn("Could not unfollow:", err.Error())
		return nil
	}
	printlnFn("Unfollowed " + email)
	return nil
}
