package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkarev/travellog/internal/models"
)

func TestRecommendDefaultOrder(t *testing.T) {
	s := newTestStore(t)

	recs := s.Recommend(models.RecommendationRequest{})
	require.Len(t, recs, 3)
	assert.Equal(t, "Kyoto", recs[0].Destination)
	assert.Equal(t, "Barcelona", recs[1].Destination)
	assert.Equal(t, "Queenstown", recs[2].Destination)
}

func TestRecommendInterestsReorder(t *testing.T) {
	s := newTestStore(t)

	// "adventure" and "landscapes" both hit Queenstown's description, which
	// outweighs its lower base score
	recs := s.Recommend(models.RecommendationRequest{
		Interests: []string{"adventure", "landscapes"},
	})
	require.Len(t, recs, 3)
	assert.Equal(t, "Queenstown", recs[0].Destination)
}

func TestRecommendIsDeterministic(t *testing.T) {
	s := newTestStore(t)

	req := models.RecommendationRequest{Interests: []string{"beach"}, Duration: "4 days"}
	first := s.Recommend(req)
	second := s.Recommend(req)
	assert.Equal(t, first, second)
}

func TestRecommendDoesNotMutateBaseScores(t *testing.T) {
	s := newTestStore(t)

	s.Recommend(models.RecommendationRequest{Interests: []string{"temples"}})
	recs := s.Recommend(models.RecommendationRequest{})
	assert.Equal(t, float64(95), recs[0].Score)
}
