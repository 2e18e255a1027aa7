// Package fixtures provides the seed data the development server starts
// with. A compiled-in seed covers the common case; a YAML file can replace
// it entirely for custom scenarios.
package fixtures

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexkarev/travellog/internal/models"
)

// SeedUser is a user account in the seed file. Password is plain text here
// and hashed by the store on load.
type SeedUser struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Avatar   string `yaml:"avatar"`
	Bio      string `yaml:"bio"`
	Role     string `yaml:"role"`
}

// SeedPost is a gallery post in the seed file.
type SeedPost struct {
	ID         string   `yaml:"id"`
	UserID     string   `yaml:"user_id"`
	Images     []string `yaml:"images"`
	Title      string   `yaml:"title"`
	Caption    string   `yaml:"caption"`
	Tags       []string `yaml:"tags"`
	Location   string   `yaml:"location"`
	Likes      int      `yaml:"likes"`
	Comments   int      `yaml:"comments"`
	FlagReason string   `yaml:"flag_reason"`
	CreatedAt  string   `yaml:"created_at"`
}

// SeedReview is a destination review in the seed file.
type SeedReview struct {
	ID          string `yaml:"id"`
	UserID      string `yaml:"user_id"`
	Destination string `yaml:"destination"`
	Rating      int    `yaml:"rating"`
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	Helpful     int    `yaml:"helpful"`
	CreatedAt   string `yaml:"created_at"`
}

// SeedRecommendation is a destination suggestion in the seed file.
type SeedRecommendation struct {
	ID          string   `yaml:"id"`
	Destination string   `yaml:"destination"`
	Country     string   `yaml:"country"`
	Description string   `yaml:"description"`
	Itinerary   []string `yaml:"itinerary"`
	Score       float64  `yaml:"score"`
	Image       string   `yaml:"image"`
	Budget      string   `yaml:"budget"`
	Duration    string   `yaml:"duration"`
}

// Seed is the full fixture set the store is initialized from.
type Seed struct {
	Users           []SeedUser           `yaml:"users"`
	Posts           []SeedPost           `yaml:"posts"`
	Reviews         []SeedReview         `yaml:"reviews"`
	Recommendations []SeedRecommendation `yaml:"recommendations"`
}

// LoadFile reads a Seed from a YAML file.
func LoadFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	s := &Seed{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return s, nil
}

// ParseTime parses a seed timestamp. Seed files use RFC 3339; a bad value
// falls back to the zero time rather than failing the whole load.
func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Recommendation converts the seed row to its wire shape.
func (r SeedRecommendation) Recommendation() models.Recommendation {
	return models.Recommendation{
		ID:          r.ID,
		Destination: r.Destination,
		Country:     r.Country,
		Description: r.Description,
		Itinerary:   r.Itinerary,
		Score:       r.Score,
		Image:       r.Image,
		Budget:      r.Budget,
		Duration:    r.Duration,
	}
}
