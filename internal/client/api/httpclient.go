package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alexkarev/travellog/internal/common"
	"github.com/alexkarev/travellog/internal/models"
)

// HTTPClient is the concrete Backend over plain HTTP/JSON.
//
// Every request carries the current bearer token when one is set. A 401
// response drops the token and fires the unauthorized handler exactly once
// for that response; the handler is shared by all in-flight requests, so an
// unrelated call observing the 401 triggers the same teardown. There is no
// retry, queuing, or cancellation beyond the fixed timeout.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// NewHTTPClient builds a client for the given base URL with a fixed
// per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) SetUnauthorizedHandler(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// handleUnauthorized clears the token and notifies the application once.
func (c *HTTPClient) handleUnauthorized() {
	c.mu.Lock()
	c.token = ""
	fn := c.onUnauthorized
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// errorBody is the backend's error payload shape.
type errorBody struct {
	Message string `json:"message"`
}

// do performs a single JSON round trip. body and out may be nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and connection failures collapse into one sentinel;
		// callers cannot distinguish them and must not retry here.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &Error{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	req := map[string]string{"name": name, "email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, patch models.UserPatch) error {
	return c.do(ctx, http.MethodPut, "/auth/profile", nil, patch, nil)
}

func (c *HTTPClient) Posts(ctx context.Context, q PostQuery) ([]models.Post, error) {
	params := url.Values{}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", params, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) UploadPost(ctx context.Context, p models.NewPost) (*models.Post, error) {
	var created models.Post
	if err := c.do(ctx, http.MethodPost, "/gallery/photos", nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) LikePost(ctx context.Context, id string) (*models.Post, error) {
	var updated models.Post
	path := "/posts/" + url.PathEscape(id) + "/like"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Reviews(ctx context.Context, q ReviewQuery) ([]models.Review, error) {
	params := url.Values{}
	if q.Destination != "" {
		params.Set("destination", q.Destination)
	}
	if q.Rating > 0 {
		params.Set("rating", strconv.Itoa(q.Rating))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", params, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) AddReview(ctx context.Context, r models.NewReview) (*models.Review, error) {
	var created models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) FriendProfile(ctx context.Context, email string) (*models.FriendProfile, error) {
	params := url.Values{}
	params.Set("email", email)
	var profile models.FriendProfile
	if err := c.do(ctx, http.MethodGet, "/gallery/friends/profile", params, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) Follow(ctx context.Context, friendEmail string) error {
	return c.do(ctx, http.MethodPost, "/gallery/friends", nil, models.FriendRequest{FriendEmail: friendEmail}, nil)
}

func (c *HTTPClient) Unfollow(ctx context.Context, friendEmail string) error {
	return c.do(ctx, http.MethodDelete, "/gallery/friends", nil, models.FriendRequest{FriendEmail: friendEmail}, nil)
}

func (c *HTTPClient) Recommendations(ctx context.Context, req models.RecommendationRequest) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.do(ctx, http.MethodPost, "/ai/recommendations", nil, req, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) Trips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := c.do(ctx, http.MethodGet, "/travel", nil, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *HTTPClient) AddTrip(ctx context.Context, t models.NewTrip) (*models.Trip, error) {
	var created models.Trip
	if err := c.do(ctx, http.MethodPost, "/travel", nil, t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) FlaggedPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/admin/flagged-posts", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
