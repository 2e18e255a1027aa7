package models

import "time"

// Post is a single gallery entry in the photo feed.
type Post struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Images     []string  `json:"images"`
	Title      string    `json:"title"`
	Caption    string    `json:"caption"`
	Tags       []string  `json:"tags,omitempty"`
	Location   string    `json:"location,omitempty"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Liked      bool      `json:"liked,omitempty"`
	FlagReason string    `json:"flagReason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewPost is the upload payload for POST /gallery/photos.
type NewPost struct {
	Title    string   `json:"title"`
	Caption  string   `json:"caption"`
	Images   []string `json:"images"`
	Tags     []string `json:"tags,omitempty"`
	Location string   `json:"location,omitempty"`
}
