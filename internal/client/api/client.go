package api

import (
	"context"

	"github.com/alexkarev/travellog/internal/models"
)

// AuthResponse is the body returned by the login and register endpoints.
// Both fields must be present for the response to be usable; validating
// that is the caller's job.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// PostQuery filters and orders the photo feed.
type PostQuery struct {
	Sort string
	Tag  string
}

// ReviewQuery filters and orders destination reviews.
type ReviewQuery struct {
	Destination string
	Rating      int
	Sort        string
}

// Backend is the API contract the client application talks to.
//
// Credential handling: SetToken installs the bearer token attached to every
// subsequent call; ClearToken removes it. SetUnauthorizedHandler registers a
// callback fired whenever the backend answers 401, after the client has
// dropped its own token. The handler must not call back into the Backend.
type Backend interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	SaveProfile(ctx context.Context, patch models.UserPatch) error

	Posts(ctx context.Context, q PostQuery) ([]models.Post, error)
	UploadPost(ctx context.Context, p models.NewPost) (*models.Post, error)
	LikePost(ctx context.Context, id string) (*models.Post, error)

	Reviews(ctx context.Context, q ReviewQuery) ([]models.Review, error)
	AddReview(ctx context.Context, r models.NewReview) (*models.Review, error)

	FriendProfile(ctx context.Context, email string) (*models.FriendProfile, error)
	Follow(ctx context.Context, friendEmail string) error
	Unfollow(ctx context.Context, friendEmail string) error

	Recommendations(ctx context.Context, req models.RecommendationRequest) ([]models.Recommendation, error)

	Trips(ctx context.Context) ([]models.Trip, error)
	AddTrip(ctx context.Context, t models.NewTrip) (*models.Trip, error)

	FlaggedPosts(ctx context.Context) ([]models.Post, error)

	SetToken(token string)
	ClearToken()
	SetUnauthorizedHandler(fn func())
}
