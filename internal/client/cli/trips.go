package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexkarev/travellog/internal/models"
)

func (a *App) Trips(ctx context.Context) error {
	return a.requireAuth(a.trips)(ctx)
}

func (a *App) trips(ctx context.Context) error {
	trips, err := a.backend.Trips(ctx)
	if err != nil {
		printlnFn("Could not load trips:", err.Error())
		return nil
	}
	if len(trips) == 0 {
		printlnFn("No trips logged yet.")
		return nil
	}

	var total float64
	for _, t := range trips {
		printlnFn(formatTrip(t))
		total += t.TotalExpense
	}
	printlnFn(fmt.Sprintf("Total spent across %d trips: %.2f", len(trips), total))
	return nil
}

func (a *App) AddTrip(ctx context.Context) error {
	return a.requireAuth(a.addTrip)(ctx)
}

func (a *App) addTrip(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Trip title", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	dateText, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := time.Parse("2006-01-02", dateText)
	if err != nil {
		printlnFn("Date must look like 2026-08-01.")
		return nil
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

	expenses, err := a.readExpenses()
	if err != nil {
		return err
	}

	trip := models.NewTrip{
		Title:        title,
		Location:     location,
		Date:         date,
		Rating:       rating,
		Expenses:     expenses,
		TotalExpense: models.SumExpenses(expenses),
	}

	created, err := a.backend.AddTrip(ctx, trip)
	if err != nil {
		printlnFn("Could not save the trip:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Trip logged: %s (total %.2f)", created.ID, created.TotalExpense))
	return nil
}

// readExpenses collects "category amount [description]" lines until an
// empty line.
func (a *App) readExpenses() ([]models.Expense, error) {
	printlnFn("Enter expenses as 'category amount', one per line (empty line to finish)")

	var expenses []models.Expense
	for {
		line, err := getSimpleText(a.reader, "", os.Stdout)
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}

		var category string
		var amount float64
		n, _ := fmt.Sscanf(line, "%s %f", &category, &amount)
		if n != 2 || amount < 0 {
			printlnFn("Expected 'category amount', e.g. 'flights 420.50'.")
			continue
		}
		expenses = append(expenses, models.Expense{Category: category, Amount: amount})
	}
	return expenses, nil
}

func formatTrip(t models.Trip) string {
	s := fmt.Sprintf("[%s] %s - %s on %s, rated %d/5, spent %.2f",
		t.ID, t.Title, t.Location, t.Date.Format("2006-01-02"), t.Rating, t.TotalExpense)
	for _, e := range t.Expenses {
		s += fmt.Sprintf("\n    %s: %.2f", e.Category, e.Amount)
	}
	return s
}
