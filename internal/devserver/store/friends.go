package store

import (
	"strings"

	"github.com/alexkarev/travellog/internal/common"
	"github.com/alexkarev/travellog/internal/models"
)

// FriendProfile returns the public profile of the account with the given
// email: display fields, that user's posts (newest first), and whether the
// viewer already follows them.
func (s *Store) FriendProfile(viewerID, email string) (*models.FriendProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rec := s.users[id]

	profile := &models.FriendProfile{
		Email:     rec.user.Email,
		Name:      rec.user.Name,
		Avatar:    rec.user.Avatar,
		Bio:       rec.user.Bio,
		Following: s.follows[viewerID][id],
		Posts:     []models.Post{},
	}
	for _, p := range s.posts {
		if p.post.UserID == id {
			post := p.post
			post.Liked = p.likedBy[viewerID]
			profile.Posts = append(profile.Posts, post)
		}
	}
	sortPosts(profile.Posts, "")

	return profile, nil
}

// Follow records that the viewer follows the account with the given email.
// Idempotent; following yourself is rejected as not found.
func (s *Store) Follow(viewerID, friendEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[strings.ToLower(friendEmail)]
	if !ok || id == viewerID {
		return common.ErrorNotFound
	}

	if s.follows[viewerID] == nil {
		s.follows[viewerID] = make(map[string]bool)
	}
	s.follows[viewerID][id] = true
	return nil
}

// Unfollow removes the viewer's follow of the account with the given email.
// Idempotent: unfollowing someone never followed is not an error.
func (s *Store) Unfollow(viewerID, friendEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[strings.ToLower(friendEmail)]
	if !ok {
		return common.ErrorNotFound
	}

	delete(s.follows[viewerID], id)
	return nil
}
