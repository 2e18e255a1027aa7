package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexkarev/travellog/internal/client/api"
	"github.com/alexkarev/travellog/internal/models"
)

func (a *App) Reviews(ctx context.Context, destination string) error {
	return a.requireAuth(func(ctx context.Context) error { return a.reviews(ctx, destination) })(ctx)
}

func (a *App) reviews(ctx context.Context, destination string) error {
	reviews, err := a.backend.Reviews(ctx, api.ReviewQuery{Destination: destination, Sort: "recent"})
	if err != nil {
		printlnFn("Could not load reviews:", err.Error())
		return nil
	}
	if len(reviews) == 0 {
		printlnFn("No reviews found.")
		return nil
	}

	for _, r := range reviews {
		printlnFn(formatReview(r))
	}
	return nil
}

func (a *App) AddReview(ctx context.Context) error {
	return a.requireAuth(a.addReview)(ctx)
}

func (a *App) addReview(ctx context.Context) error {
	destination, err := getSimpleText(a.reader, "Destination", os.Stdout)
	if err != nil {
		return err
	}
	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil || rating < 1 || rating > 5 {
		printlnFn("Rating must be a number from 1 to 5.")
		return nil
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Review text", os.Stdout)
	if err != nil {
		return err
	}

	review := models.NewReview{
		Destination: destination,
		Rating:      rating,
		Title:       title,
		Body:        body,
	}

	created, err := a.backend.AddReview(ctx, review)
	if err != nil {
		printlnFn("Could not post the review:", err.Error())
		return nil
	}
	printlnFn("Review posted:", created.ID)
	return nil
}

func formatReview(r models.Review) string {
	stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
	return fmt.Sprintf("[%s] %s  %s - %s by %s\n    %s\n    %d found this helpful",
		r.ID, r.Destination, stars, r.Title, r.Author, r.Body, r.Helpful)
}
