// Package store keeps the fixture tables of the development server in
// memory. It is a fixture table with a mutex, not a query engine; nothing
// survives a restart.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexkarev/travellog/internal/common"
	"github.com/alexkarev/travellog/internal/devserver/fixtures"
	"github.com/alexkarev/travellog/internal/models"
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

type postRecord struct {
	post    models.Post
	likedBy map[string]bool
}

type reviewRecord struct {
	review models.Review
	userID string
}

// Store holds all fixture tables behind a single RWMutex.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*userRecord
	emails  map[string]string
	posts   []*postRecord
	reviews []*reviewRecord
	trips   map[string][]models.Trip
	follows map[string]map[string]bool
	recs    []models.Recommendation
}

// New builds a Store from the seed, hashing every seed password with bcrypt.
func New(seed *fixtures.Seed) (*Store, error) {
	s := &Store{
		users:   make(map[string]*userRecord),
		emails:  make(map[string]string),
		trips:   make(map[string][]models.Trip),
		follows: make(map[string]map[string]bool),
	}

	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		rec := &userRecord{
			user: models.User{
				ID:     u.ID,
				Name:   u.Name,
				Email:  u.Email,
				Avatar: u.Avatar,
				Bio:    u.Bio,
				Role:   models.Role(u.Role),
			},
			passwordHash: hash,
		}
		s.users[u.ID] = rec
		s.emails[strings.ToLower(u.Email)] = u.ID
	}

	for _, p := range seed.Posts {
		author := s.users[p.UserID]
		post := models.Post{
			ID:         p.ID,
			UserID:     p.UserID,
			Images:     p.Images,
			Title:      p.Title,
			Caption:    p.Caption,
			Tags:       p.Tags,
			Location:   p.Location,
			Likes:      p.Likes,
			Comments:   p.Comments,
			FlagReason: p.FlagReason,
			CreatedAt:  fixtures.ParseTime(p.CreatedAt),
		}
		if author != nil {
			post.UserName = author.user.Name
			post.UserAvatar = author.user.Avatar
		}
		s.posts = append(s.posts, &postRecord{post: post, likedBy: make(map[string]bool)})
	}

	for _, r := range seed.Reviews {
		review := models.Review{
			ID:          r.ID,
			Destination: r.Destination,
			Rating:      r.Rating,
			Title:       r.Title,
			Body:        r.Body,
			Helpful:     r.Helpful,
			CreatedAt:   fixtures.ParseTime(r.CreatedAt),
		}
		if author := s.users[r.UserID]; author != nil {
			review.Author = author.user.Name
			review.Avatar = author.user.Avatar
		}
		s.reviews = append(s.reviews, &reviewRecord{review: review, userID: r.UserID})
	}

	for _, r := range seed.Recommendations {
		s.recs = append(s.recs, r.Recommendation())
	}

	return s, nil
}

// Authenticate checks the email/password pair and returns the account.
// Returns common.ErrorUnauthorized for an unknown email or a wrong password
// so callers cannot tell the two apart.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	rec := s.users[id]
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}
	u := rec.user
	return &u, nil
}

// CreateUser registers a new account with the user role.
func (s *Store) CreateUser(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.emails[key]; ok {
		return nil, common.ErrorEmailTaken
	}

	rec := &userRecord{
		user: models.User{
			ID:     uuid.NewString(),
			Name:   name,
			Email:  email,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + name,
			Role:   models.RoleUser,
		},
		passwordHash: hash,
	}
	s.users[rec.user.ID] = rec
	s.emails[key] = rec.user.ID

	u := rec.user
	return &u, nil
}

// UserByID returns the account with the given id.
func (s *Store) UserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := rec.user
	return &u, nil
}

// UpdateUser applies a partial profile update and returns the result.
// Display fields denormalized onto posts and reviews are refreshed too.
func (s *Store) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rec.user = rec.user.Merge(patch)

	for _, p := range s.posts {
		if p.post.UserID == id {
			p.post.UserName = rec.user.Name
			p.post.UserAvatar = rec.user.Avatar
		}
	}
	for _, r := range s.reviews {
		if r.userID == id {
			r.review.Author = rec.user.Name
			r.review.Avatar = rec.user.Avatar
		}
	}

	u := rec.user
	return &u, nil
}

// Posts returns the feed for the given viewer, filtered by tag and ordered
// by the sort key ("popular" by likes, anything else by recency).
func (s *Store) Posts(viewerID, sortKey, tag string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if tag != "" && !hasTag(p.post.Tags, tag) {
			continue
		}
		post := p.post
		post.Liked = p.likedBy[viewerID]
		out = append(out, post)
	}

	sortPosts(out, sortKey)
	return out
}

// CreatePost appends a new post authored by the given user.
func (s *Store) CreatePost(author models.User, np models.NewPost) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:         uuid.NewString(),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Images:     np.Images,
		Title:      np.Title,
		Caption:    np.Caption,
		Tags:       np.Tags,
		Location:   np.Location,
		CreatedAt:  time.Now().UTC(),
	}
	s.posts = append(s.posts, &postRecord{post: post, likedBy: make(map[string]bool)})
	return post
}

// LikePost toggles the viewer's like on a post and returns the updated post.
func (s *Store) LikePost(viewerID, postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.post.ID != postID {
			continue
		}
		if p.likedBy[viewerID] {
			delete(p.likedBy, viewerID)
			p.post.Likes--
		} else {
			p.likedBy[viewerID] = true
			p.post.Likes++
		}
		post := p.post
		post.Liked = p.likedBy[viewerID]
		return &post, nil
	}
	return nil, common.ErrorNotFound
}

// FlaggedPosts returns every post carrying a moderation flag.
func (s *Store) FlaggedPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Post{}
	for _, p := range s.posts {
		if p.post.FlagReason != "" {
			out = append(out, p.post)
		}
	}
	return out
}

// Reviews returns reviews filtered by destination substring and minimum
// rating, ordered by the sort key ("helpful" by votes, anything else by
// recency).
func (s *Store) Reviews(destination string, minRating int, sortKey string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dest := strings.ToLower(destination)
	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if dest != "" && !strings.Contains(strings.ToLower(r.review.Destination), dest) {
			continue
		}
		if minRating > 0 && r.review.Rating < minRating {
			continue
		}
		out = append(out, r.review)
	}

	if sortKey == "helpful" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Helpful > out[j].Helpful })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// CreateReview appends a new review authored by the given user.
func (s *Store) CreateReview(author models.User, nr models.NewReview) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := models.Review{
		ID:          uuid.NewString(),
		Author:      author.Name,
		Avatar:      author.Avatar,
		Destination: nr.Destination,
		Rating:      nr.Rating,
		Title:       nr.Title,
		Body:        nr.Body,
		Photos:      nr.Photos,
		CreatedAt:   time.Now().UTC(),
	}
	s.reviews = append(s.reviews, &reviewRecord{review: review, userID: author.ID})
	return review
}

// Trips returns the given user's trip log, newest first.
func (s *Store) Trips(userID string) []models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := append([]models.Trip{}, s.trips[userID]...)
	sort.SliceStable(trips, func(i, j int) bool { return trips[i].CreatedAt.After(trips[j].CreatedAt) })
	return trips
}

// CreateTrip appends a trip to the given user's log. The expense total is
// recomputed server-side so the stored value always matches the lines.
func (s *Store) CreateTrip(userID string, nt models.NewTrip) models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := models.Trip{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        nt.Title,
		Location:     nt.Location,
		Description:  nt.Description,
		Date:         nt.Date,
		Rating:       nt.Rating,
		ImageURL:     nt.ImageURL,
		Expenses:     nt.Expenses,
		TotalExpense: models.SumExpenses(nt.Expenses),
		CreatedAt:    time.Now().UTC(),
	}
	s.trips[userID] = append(s.trips[userID], trip)
	return trip
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func sortPosts(posts []models.Post, key string) {
	switch key {
	case "popular":
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].Likes > posts[j].Likes })
	default:
		sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	}
}
