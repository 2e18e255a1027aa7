package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexkarev/travellog/internal/models"
)

func (a *App) Recommend(ctx context.Context) error {
	return a.requireAuth(a.recommend)(ctx)
}

func (a *App) recommend(ctx context.Context) error {
	duration, err := getSimpleText(a.reader, "Trip duration (e.g. '1 week')", os.Stdout)
	if err != nil {
		return err
	}
	interests, err := getSimpleText(a.reader, "Interests (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	budget, err := getSimpleText(a.reader, "Budget (low/medium/high)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.RecommendationRequest{
		Duration:  duration,
		Interests: splitCommaList(interests),
		Budget:    budget,
	}

	recs, err := a.backend.Recommendations(ctx, req)
	if err != nil {
		printlnFn("Could not generate recommendations:", err.Error())
		return nil
	}
	if len(recs) == 0 {
		printlnFn("No recommendations matched your preferences.")
		return nil
	}

	for _, r := range recs {
		printlnFn(formatRecommendation(r))
	}
	return nil
}

func formatRecommendation(r models.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s (score %.1f)\n    %s", r.Destination, r.Country, r.Score, r.Description)
	if r.Budget != "" || r.Duration != "" {
		fmt.Fprintf(&b, "\n    budget: %s, duration: %s", r.Budget, r.Duration)
	}
	for i, day := range r.Itinerary {
		fmt.Fprintf(&b, "\n    day %d: %s", i+1, day)
	}
	return b.String()
}
