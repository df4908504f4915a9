package services

import (
	"context"
	"errors"
	"testing"

	"book-recommendation-api/metrics"
	"book-recommendation-api/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatingServiceForTest() (RatingService, *mockRatingRepository, *mockBookRepository) {
	ratings := &mockRatingRepository{}
	books := &mockBookRepository{}
	return NewRatingService(ratings, books, metrics.New(), zerolog.Nop()), ratings, books
}

func TestSubmitRating_RejectsOffScale(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()

	err := svc.SubmitRating(context.Background(), "u1", "b1", 3.3)
	assert.ErrorIs(t, err, models.ErrInvalidRatingValue)

	ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	books.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubmitRating_UnknownBook(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()
	ctx := context.Background()

	books.On("GetByID", ctx, "b1").Return(nil, models.BookNotFound("b1"))

	var notFound models.ErrorNotFound
	require.ErrorAs(t, svc.SubmitRating(ctx, "u1", "b1", 3.5), &notFound)
	ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRating_Upsert(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()
	ctx := context.Background()

	books.On("GetByID", ctx, "b1").Return(&models.Book{ID: "b1"}, nil)
	ratings.On("Upsert", ctx, "b1", "u1", 3.5).Return(nil).Once()

	require.NoError(t, svc.SubmitRating(ctx, "u1", "b1", 3.5))
	ratings.AssertExpectations(t)
	ratings.AssertNotCalled(t, "UpdateValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRating_RetriesLostRaceAsUpdate(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()
	ctx := context.Background()

	books.On("GetByID", ctx, "b1").Return(&models.Book{ID: "b1"}, nil)
	ratings.On("Upsert", ctx, "b1", "u1", 4.0).Return(models.ErrorConflict{Message: "race"}).Once()
	ratings.On("UpdateValue", ctx, "b1", "u1", 4.0).Return(nil).Once()

	require.NoError(t, svc.SubmitRating(ctx, "u1", "b1", 4.0))
	ratings.AssertExpectations(t)
}

func TestSubmitRating_StorageFailure(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()
	ctx := context.Background()
	boom := errors.New("connection reset")

	books.On("GetByID", ctx, "b1").Return(&models.Book{ID: "b1"}, nil)
	ratings.On("Upsert", ctx, "b1", "u1", 4.0).Return(boom)

	assert.ErrorIs(t, svc.SubmitRating(ctx, "u1", "b1", 4.0), boom)
	ratings.AssertNotCalled(t, "UpdateValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetRating(t *testing.T) {
	svc, ratings, books := newRatingServiceForTest()
	ctx := context.Background()

	books.On("GetByID", ctx, "b1").Return(&models.Book{ID: "b1"}, nil)
	ratings.On("Get", ctx, "b1", "u1").Return(&models.Rating{Value: 2.5}, nil)

	rating, err := svc.GetRating(ctx, "u1", "b1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, rating.Value)
}
