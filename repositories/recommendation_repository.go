package repositories

import (
	"context"

	"book-recommendation-api/models"

	"gorm.io/gorm"
)

type RecommendationRepository interface {
	TopRated(ctx context.Context, limit int) ([]models.BookWithRating, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// TopRated returns at most limit rated books ordered by mean rating.
func (r *recommendationRepository) TopRated(ctx context.Context, limit int) ([]models.BookWithRating, error) {
	var rows []models.BookWithRating
	if limit <= 0 {
		return rows, nil
	}

	err := ratedBooksQuery(r.db.WithContext(ctx)).
		Order(rankingOrder).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
