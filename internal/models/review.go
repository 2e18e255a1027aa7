package models

import "time"

// Review is a destination review.
type Review struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Avatar      string    `json:"avatar,omitempty"`
	Destination string    `json:"destination"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Photos      []string  `json:"photos,omitempty"`
	Helpful     int       `json:"helpful"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewReview is the payload for POST /reviews.
type NewReview struct {
	Destination string   `json:"destination"`
	Rating      int      `json:"rating"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Photos      []string `json:"photos,omitempty"`
}
