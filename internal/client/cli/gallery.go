package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexkarev/travellog/internal/client/api"
	"github.com/alexkarev/travellog/internal/models"
)

func (a *App) Feed(ctx context.Context, tag string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.feed(ctx, tag) })(ctx)
}

func (a *App) feed(ctx context.Context, tag string) error {
	posts, err := a.backend.Posts(ctx, api.PostQuery{Sort: "recent", Tag: tag})
	if err != nil {
		printlnFn("Could not load the feed:", err.Error())
		return nil
	}
	if len(posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}

	for _, p := range posts {
		printlnFn(formatPost(p))
	}
	return nil
}

func (a *App) Upload(ctx context.Context) error {
	return a.requireAuth(a.upload)(ctx)
}

func (a *App) upload(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	caption, err := GetMultiline(a.reader, "Caption", os.Stdout)
	if err != nil {
		return err
	}
	image, err := getSimpleText(a.reader, "Image URL", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	post := models.NewPost{
		Title:    title,
		Caption:  caption,
		Images:   []string{image},
		Location: location,
		Tags:     splitCommaList(tags),
	}

	created, err := a.backend.UploadPost(ctx, post)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return nil
	}
	printlnFn("Uploaded post", created.ID)
	return nil
}

func (a *App) Like(ctx context.Context, id string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.like(ctx, id) })(ctx)
}

func (a *App) like(ctx context.Context, id string) error {
	updated, err := a.backend.LikePost(ctx, id)
	if err != nil {
		printlnFn("Could not like the post:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("%s now has %d likes", updated.Title, updated.Likes))
	return nil
}

func formatPost(p models.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s by %s", p.ID, p.Title, p.UserName)
	if p.Location != "" {
		fmt.Fprintf(&b, " @ %s", p.Location)
	}
	fmt.Fprintf(&b, "\n    %s", p.Caption)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "\n    #%s", strings.Join(p.Tags, " #"))
	}
	fmt.Fprintf(&b, "\n    %d likes, %d comments", p.Likes, p.Comments)
	return b.String()
}
