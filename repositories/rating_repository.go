package repositories

import (
	"context"

	"book-recommendation-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Get(ctx context.Context, bookID, userID string) (*models.Rating, error)
	Upsert(ctx context.Context, bookID, userID string, value float64) error
	UpdateValue(ctx context.Context, bookID, userID string, value float64) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Get(ctx context.Context, bookID, userID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		First(&rating).Error
	if err != nil {
		if isNotFound(err) {
			return nil, models.RatingNotFound(bookID, userID)
		}
		return nil, err
	}
	return &rating, nil
}

// Upsert overwrites the (book, user) rating or inserts it. Losing an insert
// race against a concurrent submission surfaces as models.ErrorConflict; the
// unique index on (book_id, user_id) guarantees a single row either way.
func (r *ratingRepository) Upsert(ctx context.Context, bookID, userID string, value float64) error {
	if err := models.ValidateRatingValue(value); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("book_id = ? AND user_id = ?", bookID, userID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Update("value", value).Error
		case !isNotFound(err):
			return err
		}

		rating := &models.Rating{
			ID:     uuid.NewString(),
			BookID: bookID,
			UserID: userID,
			Value:  value,
		}
		if err := tx.Create(rating).Error; err != nil {
			if isDuplicate(err) {
				return models.ErrorConflict{Message: "rating for this book and user was written concurrently"}
			}
			if isForeignKeyViolation(err) {
				return models.ErrorNotFound{Message: "book or user not found"}
			}
			return err
		}
		return nil
	})
}

// UpdateValue overwrites an existing rating without the insert path.
func (r *ratingRepository) UpdateValue(ctx context.Context, bookID, userID string, value float64) error {
	if err := models.ValidateRatingValue(value); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.RatingNotFound(bookID, userID)
	}
	return nil
}
