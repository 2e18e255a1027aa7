package cli

import "context"

func (a *App) Flagged(ctx context.Context) error {
	return a.requireAdmin(a.flagged)(ctx)
}

func (a *App) flagged(ctx context.Context) error {
	posts, err := a.backend.FlaggedPosts(ctx)
	if err != nil {
		printlnFn("Could not load flagged posts:", err.Error())
		return nil
	}
	if len(posts) == 0 {
		printlnFn("No flagged posts.")
		return nil
	}

	for _, p := range posts {
		printlnFn(formatPost(p))
		if p.FlagReason != "" {
			printlnFn("    flagged: " + p.FlagReason)
		}
	}
	return nil
}
