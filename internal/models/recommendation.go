package models

// RecommendationRequest describes the traveler's preferences sent to
// POST /ai/recommendations.
type RecommendationRequest struct {
	Duration  string   `json:"duration,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Budget    string   `json:"budget,omitempty"`
}

// Recommendation is a single suggested destination with a ranked score.
type Recommendation struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Itinerary   []string `json:"itinerary,omitempty"`
	Score       float64  `json:"score"`
	Image       string   `json:"image,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Duration    string   `json:"duration,omitempty"`
}
