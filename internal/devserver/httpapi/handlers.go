package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alexkarev/travellog/internal/common"
	"github.com/alexkarev/travellog/internal/devserver/auth"
	"github.com/alexkarev/travellog/internal/models"
)

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request, user *models.User) {
	token, err := auth.GenerateToken(user.ID, []byte(s.cfg.SecretKey), s.cfg.TokenValidityDuration)
	if err != nil {
		s.log.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.Authenticate(creds.Email, creds.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.log.Info(r.Context(), "user logged in", "user_id", user.ID)
	s.issueToken(w, r, user)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	creds.Name = strings.TrimSpace(creds.Name)
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Name == "" || creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := s.store.CreateUser(creds.Name, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		s.log.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.log.Info(r.Context(), "user registered", "user_id", user.ID)
	s.issueToken(w, r, user)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := userFromContext(r.Context())
	updated, err := s.store.UpdateUser(user.ID, patch)
	if err != nil {
		writeError(w, http.StatusNotFound, "Account not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	viewerID := ""
	if user := userFromContext(r.Context()); user != nil {
		viewerID = user.ID
	}
	posts := s.store.Posts(viewerID, r.URL.Query().Get("sort"), r.URL.Query().Get("tag"))
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleUploadPost(w http.ResponseWriter, r *http.Request) {
	var np models.NewPost
	if err := decodeJSON(r, &np); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if np.Title == "" || len(np.Images) == 0 {
		writeError(w, http.StatusBadRequest, "Title and at least one image are required")
		return
	}

	user := userFromContext(r.Context())
	created := s.store.CreatePost(*user, np)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	updated, err := s.store.LikePost(user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rating, _ := strconv.Atoi(q.Get("rating"))
	reviews := s.store.Reviews(q.Get("destination"), rating, q.Get("sort"))
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var nr models.NewReview
	if err := decodeJSON(r, &nr); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if nr.Destination == "" || nr.Rating < 1 || nr.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Destination and a rating from 1 to 5 are required")
		return
	}

	user := userFromContext(r.Context())
	created := s.store.CreateReview(*user, nr)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.store.Recommend(req))
}

func (s *Server) handleTrips(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	writeJSON(w, http.StatusOK, s.store.Trips(user.ID))
}

func (s *Server) handleAddTrip(w http.ResponseWriter, r *http.Request) {
	var nt models.NewTrip
	if err := decodeJSON(r, &nt); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if nt.Title == "" || nt.Location == "" {
		writeError(w, http.StatusBadRequest, "Title and location are required")
		return
	}

	user := userFromContext(r.Context())
	created := s.store.CreateTrip(user.ID, nt)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleFriendProfile(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user := userFromContext(r.Context())
	profile, err := s.store.FriendProfile(user.ID, email)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req models.FriendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := userFromContext(r.Context())
	if err := s.store.Follow(user.ID, req.FriendEmail); err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "following"})
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	var req models.FriendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := userFromContext(r.Context())
	if err := s.store.Unfollow(user.ID, req.FriendEmail); err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "not following"})
}

func (s *Server) handleFlaggedPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.FlaggedPosts())
}
