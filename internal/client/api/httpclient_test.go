package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/travellog/internal/models"
)

func TestHTTPClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Post{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok-abc")

	_, err := c.Posts(context.Background(), PostQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Post{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Posts(context.Background(), PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestHTTPClient_UnauthorizedFiresHandlerAndClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("stale")

	fired := 0
	c.SetUnauthorizedHandler(func() { fired++ })

	_, err := c.Trips(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, fired)
	assert.Empty(t, c.currentToken())
}

func TestHTTPClient_ErrorPayloadSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.Register(context.Background(), "Sarah", "sarah@example.com", "pw")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestHTTPClient_ForbiddenDoesNotFireUnauthorizedHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "admin only"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok")
	fired := 0
	c.SetUnauthorizedHandler(func() { fired++ })

	_, err := c.FlaggedPosts(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, fired)
	assert.Equal(t, "tok", c.currentToken(), "403 must not drop the session token")
}

func TestHTTPClient_FriendRequestsCarryBodyAndQuery(t *testing.T) {
	var gotMethod, gotEmail, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotEmail = r.URL.Query().Get("email")
		var req models.FriendRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotBody = req.FriendEmail
		_ = json.NewEncoder(w).Encode(models.FriendProfile{Name: "Sarah Chen"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok")

	profile, err := c.FriendProfile(context.Background(), "sarah@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", profile.Name)
	assert.Equal(t, "sarah@example.com", gotEmail)

	require.NoError(t, c.Follow(context.Background(), "sarah@example.com"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "sarah@example.com", gotBody)

	require.NoError(t, c.Unfollow(context.Background(), "sarah@example.com"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "sarah@example.com", gotBody)
}

func TestHTTPClient_ConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Trips(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_TimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 20*time.Millisecond)
	_, err := c.Trips(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_QueryParameters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Review{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Reviews(context.Background(), ReviewQuery{Destination: "Kyoto", Rating: 4, Sort: "recent"})
	require.NoError(t, err)
	assert.Equal(t, "destination=Kyoto&rating=4&sort=recent", gotQuery)
}

func TestHTTPClient_LoginRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "sarah@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(AuthResponse{
			Token: "tok-1",
			User:  &models.User{ID: "u1", Name: "Sarah Chen", Email: "sarah@example.com"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	resp, err := c.Login(context.Background(), "sarah@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
}
