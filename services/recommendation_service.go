package services

import (
	"context"
	"time"

	"book-recommendation-api/metrics"
	"book-recommendation-api/models"
	"book-recommendation-api/repositories"

	"github.com/rs/zerolog"
)

type RecommendationService interface {
	TopRated(ctx context.Context, n int) ([]models.RankedBook, error)
}

type recommendationService struct {
	repo    repositories.RecommendationRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewRecommendationService(repo repositories.RecommendationRepository, m *metrics.Metrics, log zerolog.Logger) RecommendationService {
	return &recommendationService{
		repo:    repo,
		metrics: m,
		log:     log.With().Str("component", "recommendation").Logger(),
	}
}

// TopRated returns the n books with the highest mean rating, ranked from 1.
// Only active books with at least one rating take part. A storage failure is
// not retried.
func (s *recommendationService) TopRated(ctx context.Context, n int) ([]models.RankedBook, error) {
	if n < 0 {
		return nil, models.ErrorValidation{Field: "n", Message: "number of items cannot be negative"}
	}
	if n == 0 {
		return []models.RankedBook{}, nil
	}

	start := time.Now()
	rows, err := s.repo.TopRated(ctx, n)
	s.metrics.ObserveRanking(time.Since(start), err)
	if err != nil {
		s.log.Error().Err(err).Int("n", n).Msg("ranking query failed")
		return nil, models.ErrorInternal{Message: "error fetching records", Err: err}
	}

	ranked := make([]models.RankedBook, 0, len(rows))
	for i, row := range rows {
		ranked = append(ranked, models.RankedBook{
			Rank:   i + 1,
			Item:   row.Book,
			Rating: row.AverageRating,
		})
	}
	return ranked, nil
}
