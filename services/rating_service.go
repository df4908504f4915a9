package services

import (
	"context"
	"errors"

	"book-recommendation-api/metrics"
	"book-recommendation-api/models"
	"book-recommendation-api/repositories"

	"github.com/rs/zerolog"
)

type RatingService interface {
	SubmitRating(ctx context.Context, userID, bookID string, value float64) error
	GetRating(ctx context.Context, userID, bookID string) (*models.Rating, error)
}

type ratingService struct {
	ratingRepo repositories.RatingRepository
	bookRepo   repositories.BookRepository
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

func NewRatingService(ratingRepo repositories.RatingRepository, bookRepo repositories.BookRepository, m *metrics.Metrics, log zerolog.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		bookRepo:   bookRepo,
		metrics:    m,
		log:        log.With().Str("component", "ratings").Logger(),
	}
}

// SubmitRating validates value and stores it as the user's only rating for
// the book. If the insert loses a race with a concurrent submission for the
// same pair, the write is retried once as an update.
func (s *ratingService) SubmitRating(ctx context.Context, userID, bookID string, value float64) error {
	if err := models.ValidateRatingValue(value); err != nil {
		return err
	}

	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return err
	}

	err := s.ratingRepo.Upsert(ctx, bookID, userID, value)
	var conflict models.ErrorConflict
	if errors.As(err, &conflict) {
		s.metrics.RatingConflict()
		s.log.Warn().
			Str("book_id", bookID).
			Str("user_id", userID).
			Msg("rating insert lost race, retrying as update")
		err = s.ratingRepo.UpdateValue(ctx, bookID, userID, value)
	}
	if err != nil {
		return err
	}

	s.metrics.RatingSubmitted()
	return nil
}

func (s *ratingService) GetRating(ctx context.Context, userID, bookID string) (*models.Rating, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.ratingRepo.Get(ctx, bookID, userID)
}
