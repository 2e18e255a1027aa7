package store

import (
	"sort"
	"strings"

	"github.com/alexkarev/travellog/internal/models"
)

// Scoring weights for preference matches. The ranking is deliberately
// deterministic so clients see stable output for the same request.
const (
	interestBoost = 4
	durationBoost = 2
	budgetBoost   = 2
)

// Recommend ranks the fixture destinations against the traveler's
// preferences. The base scores come from the seed; each matched interest,
// and a matching duration or budget, boosts the score before ranking.
func (s *Store) Recommend(req models.RecommendationRequest) []models.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Recommendation, len(s.recs))
	copy(out, s.recs)

	for i := range out {
		out[i].Score += matchScore(out[i], req)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func matchScore(rec models.Recommendation, req models.RecommendationRequest) float64 {
	var score float64

	haystack := strings.ToLower(rec.Destination + " " + rec.Country + " " +
		rec.Description + " " + strings.Join(rec.Itinerary, " "))
	for _, interest := range req.Interests {
		needle := strings.ToLower(strings.TrimSpace(interest))
		if needle != "" && strings.Contains(haystack, needle) {
			score += interestBoost
		}
	}

	if req.Duration != "" && strings.EqualFold(strings.TrimSpace(req.Duration), rec.Duration) {
		score += durationBoost
	}
	if req.Budget != "" && strings.Contains(strings.ToLower(rec.Budget), strings.ToLower(strings.TrimSpace(req.Budget))) {
		score += budgetBoost
	}

	return score
}
