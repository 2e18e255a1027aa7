package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/travellog/internal/common"
)

func TestFriendProfile(t *testing.T) {
	s := newTestStore(t)

	profile, err := s.FriendProfile("3", "sarah@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", profile.Name)
	assert.Equal(t, "sarah@example.com", profile.Email)
	assert.False(t, profile.Following)

	// only Sarah's posts, newest first
	require.Len(t, profile.Posts, 2)
	for _, p := range profile.Posts {
		assert.Equal(t, "1", p.UserID)
	}
	assert.False(t, profile.Posts[1].CreatedAt.After(profile.Posts[0].CreatedAt))

	_, err = s.FriendProfile("3", "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFollowAndUnfollow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Follow("3", "sarah@example.com"))

	profile, err := s.FriendProfile("3", "sarah@example.com")
	require.NoError(t, err)
	assert.True(t, profile.Following)

	// the relation is one-directional
	reverse, err := s.FriendProfile("1", "john@example.com")
	require.NoError(t, err)
	assert.False(t, reverse.Following)

	// idempotent follow
	require.NoError(t, s.Follow("3", "SARAH@example.com"))

	require.NoError(t, s.Unfollow("3", "sarah@example.com"))
	profile, err = s.FriendProfile("3", "sarah@example.com")
	require.NoError(t, err)
	assert.False(t, profile.Following)

	// idempotent unfollow
	require.NoError(t, s.Unfollow("3", "sarah@example.com"))
}

func TestFollowRejectsUnknownAndSelf(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.Follow("3", "nobody@example.com"), common.ErrorNotFound)
	assert.ErrorIs(t, s.Follow("3", "john@example.com"), common.ErrorNotFound)
	assert.ErrorIs(t, s.Unfollow("3", "nobody@example.com"), common.ErrorNotFound)
}
