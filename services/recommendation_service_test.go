package services

import (
	"context"
	"errors"
	"testing"

	"book-recommendation-api/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopRated_Zero(t *testing.T) {
	repo := &mockRecommendationRepository{}
	svc := NewRecommendationService(repo, nil, zerolog.Nop())

	ranked, err := svc.TopRated(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
	repo.AssertNotCalled(t, "TopRated", mock.Anything, mock.Anything)
}

func TestTopRated_Negative(t *testing.T) {
	svc := NewRecommendationService(&mockRecommendationRepository{}, nil, zerolog.Nop())

	var verr models.ErrorValidation
	_, err := svc.TopRated(context.Background(), -1)
	require.ErrorAs(t, err, &verr)
}

func TestTopRated_AssignsRanks(t *testing.T) {
	repo := &mockRecommendationRepository{}
	svc := NewRecommendationService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	repo.On("TopRated", ctx, 5).Return([]models.BookWithRating{
		{Book: models.Book{ID: "a", Title: "A"}, AverageRating: 4.5},
		{Book: models.Book{ID: "b", Title: "B"}, AverageRating: 3.0},
	}, nil)

	ranked, err := svc.TopRated(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, models.RankedBook{Rank: 1, Item: models.Book{ID: "a", Title: "A"}, Rating: 4.5}, ranked[0])
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "b", ranked[1].Item.ID)
}

func TestTopRated_StorageFailure(t *testing.T) {
	repo := &mockRecommendationRepository{}
	svc := NewRecommendationService(repo, nil, zerolog.Nop())
	ctx := context.Background()
	boom := errors.New("db down")

	repo.On("TopRated", ctx, 3).Return(nil, boom).Once()

	_, err := svc.TopRated(ctx, 3)
	var internal models.ErrorInternal
	require.ErrorAs(t, err, &internal)
	assert.ErrorIs(t, err, boom)
	repo.AssertExpectations(t)
}
