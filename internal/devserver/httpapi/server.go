// Package httpapi exposes the development server's fixture tables over the
// HTTP API the client application talks to.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alexkarev/travellog/internal/devserver/auth"
	"github.com/alexkarev/travellog/internal/devserver/config"
	"github.com/alexkarev/travellog/internal/devserver/store"
	"github.com/alexkarev/travellog/internal/logging"
	"github.com/alexkarev/travellog/internal/models"
)

type Server struct {
	cfg   *config.Config
	store *store.Store
	log   logging.Logger
}

func NewServer(cfg *config.Config, st *store.Store, log logging.Logger) *Server {
	return &Server{cfg: cfg, store: st, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)

	// The feed and the review list are public reads; a token, when present,
	// only personalizes the response (per-viewer like state).
	r.With(s.maybeAuthMiddleware).Get("/posts", s.handlePosts)
	r.With(s.maybeAuthMiddleware).Get("/reviews", s.handleReviews)

	r.With(s.authMiddleware).Put("/auth/profile", s.handleSaveProfile)
	r.With(s.authMiddleware).Post("/gallery/photos", s.handleUploadPost)
	r.With(s.authMiddleware).Post("/posts/{id}/like", s.handleLikePost)
	r.With(s.authMiddleware).Post("/reviews", s.handleAddReview)
	r.With(s.authMiddleware).Get("/gallery/friends/profile", s.handleFriendProfile)
	r.With(s.authMiddleware).Post("/gallery/friends", s.handleFollow)
	r.With(s.authMiddleware).Delete("/gallery/friends", s.handleUnfollow)
	r.With(s.authMiddleware).Post("/ai/recommendations", s.handleRecommendations)
	r.With(s.authMiddleware).Get("/travel", s.handleTrips)
	r.With(s.authMiddleware).Post("/travel", s.handleAddTrip)
	r.With(s.authMiddleware, s.adminMiddleware).Get("/admin/flagged-posts", s.handleFlaggedPosts)

	return r
}

// Auth

type userKey struct{}

// authMiddleware validates the bearer token and stores the account on the
// request context. Any failure answers 401 with a {message} body, which is
// what drives the client's global session invalidation.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}
		userID, err := auth.GetUserIDFromToken(token, []byte(s.cfg.SecretKey))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		user, err := s.store.UserByID(userID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unknown account")
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// maybeAuthMiddleware resolves the account when a valid bearer token is
// present but lets anonymous requests through untouched. Used on public
// reads where the token only personalizes the response.
func (s *Server) maybeAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r.Header.Get("Authorization")); token != "" {
			if userID, err := auth.GetUserIDFromToken(token, []byte(s.cfg.SecretKey)); err == nil {
				if user, err := s.store.UserByID(userID); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userKey{}, user))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) *models.User {
	value := ctx.Value(userKey{})
	user, _ := value.(*models.User)
	return user
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
