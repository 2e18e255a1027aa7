package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/travellog/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:    "u1",
		Name:  "Sarah Chen",
		Email: "sarah@example.com",
		Role:  models.RoleUser,
	}
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("tok-123", testUser()))

	token, user, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, testUser(), *user)
}

func TestFileStore_ClearThenLoadIsEmpty(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("tok-123", testUser()))
	require.NoError(t, s.Clear())

	_, _, ok := s.Load()
	assert.False(t, ok)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestFileStore_LoadWithOnlyToken_ClearsPartialState(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFileName), []byte("orphan"), 0o600))

	_, _, ok := s.Load()
	assert.False(t, ok)

	// No partial resurrection: the orphan token is gone.
	_, err := os.Stat(filepath.Join(dir, tokenFileName))
	assert.True(t, os.IsNotExist(err))

	_, _, ok = s.Load()
	assert.False(t, ok)
}

func TestFileStore_LoadWithOnlyUser_IsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.SaveUser(testUser()))

	_, _, ok := s.Load()
	assert.False(t, ok)

	_, err := os.Stat(filepath.Join(dir, userFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_LoadWithCorruptUser_IsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.Save("tok-123", testUser()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFileName), []byte("{not json"), 0o600))

	_, _, ok := s.Load()
	assert.False(t, ok)

	_, _, ok = s.Load()
	assert.False(t, ok)
}

func TestFileStore_SaveUserKeepsToken(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("tok-123", testUser()))

	updated := testUser()
	updated.Bio = "new bio"
	require.NoError(t, s.SaveUser(updated))

	token, user, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "new bio", user.Bio)
}
