package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmatch/inkmatch-server/internal/domain"
)

func TestScore_CountsLikesPerArtist(t *testing.T) {
	likes := domain.LikeSet{
		{TattooID: "tat-1", Timestamp: 1},
		{TattooID: "tat-2", Timestamp: 2},
		{TattooID: "tat-3", Timestamp: 3},
	}
	tattooArtist := map[string]string{
		"tat-1": "art-a",
		"tat-2": "art-a",
		"tat-3": "art-b",
	}

	scores := Score(likes, tattooArtist)

	assert.Len(t, scores, 2)
	assert.Equal(t, 2, scores["art-a"].LikedTattoos)
	assert.Equal(t, float64(2), scores["art-a"].Score)
	assert.Equal(t, 1, scores["art-b"].LikedTattoos)
	assert.Equal(t, "art-b", scores["art-b"].ArtistID)
}

func TestScore_SkipsUnresolvableTattoos(t *testing.T) {
	likes := domain.LikeSet{
		{TattooID: "tat-1", Timestamp: 1},
		{TattooID: "tat-gone", Timestamp: 2},
	}
	tattooArtist := map[string]string{"tat-1": "art-a"}

	scores := Score(likes, tattooArtist)

	assert.Len(t, scores, 1)
	assert.Equal(t, 1, scores["art-a"].LikedTattoos)
}

func TestScore_EmptyLikes(t *testing.T) {
	scores := Score(nil, map[string]string{"tat-1": "art-a"})
	assert.Empty(t, scores)
}
