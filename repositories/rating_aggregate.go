package repositories

import (
	"book-recommendation-api/models"

	"gorm.io/gorm"
)

// rankingOrder sorts by mean rating, highest first. Equal means fall back to
// book id ascending so results are deterministic.
const rankingOrder = "average_rating DESC, books.id ASC"

// ratedBooksQuery joins active books to their ratings and computes the mean
// rating per book. The inner join drops books that have no ratings; the
// Book model scope drops soft-deleted books.
func ratedBooksQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Book{}).
		Select("books.*, CAST(AVG(ratings.value) AS FLOAT) AS average_rating").
		Joins("JOIN ratings ON ratings.book_id = books.id").
		Group("books.id")
}
