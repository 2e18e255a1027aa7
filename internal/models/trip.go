package models

import "time"

// Expense is a single spend line within a trip report.
type Expense struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// Trip is a logged journey with its expense breakdown.
type Trip struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	Rating       int       `json:"rating"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Expenses     []Expense `json:"expenses,omitempty"`
	TotalExpense float64   `json:"totalExpense"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTrip is the payload for POST /travel. TotalExpense is recomputed
// client-side from the expense lines before sending.
type NewTrip struct {
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	Rating       int       `json:"rating"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Expenses     []Expense `json:"expenses,omitempty"`
	TotalExpense float64   `json:"totalExpense"`
}

// SumExpenses totals the expense lines.
func SumExpenses(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
