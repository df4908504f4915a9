package repositories

import (
	"context"

	"book-recommendation-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, filter models.BookFilter) ([]models.BookWithRating, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create inserts book unless an active book with the same title and author
// exists. The partial unique index is the final guard against races.
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	book.Normalize()
	if err := book.Validate(); err != nil {
		return err
	}
	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := activeTitleAuthorTaken(tx, book.Title, book.Author, "")
		if err != nil {
			return err
		}
		if exists {
			return models.BookAlreadyExists(book.Title, book.Author)
		}

		if err := tx.Create(book).Error; err != nil {
			if isDuplicate(err) {
				return models.BookAlreadyExists(book.Title, book.Author)
			}
			return err
		}
		return nil
	})
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		if isNotFound(err) {
			return nil, models.BookNotFound(id)
		}
		return nil, err
	}
	return &book, nil
}

// Update writes every mutable column of book. Only active books can be
// updated.
func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	book.Normalize()
	if err := book.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := activeTitleAuthorTaken(tx, book.Title, book.Author, book.ID)
		if err != nil {
			return err
		}
		if exists {
			return models.BookAlreadyExists(book.Title, book.Author)
		}

		res := tx.Model(book).
			Select("title", "author", "description", "published_year", "image", "updated_at").
			Updates(book)
		if res.Error != nil {
			if isDuplicate(res.Error) {
				return models.BookAlreadyExists(book.Title, book.Author)
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.BookNotFound(book.ID)
		}
		return nil
	})
}

// SoftDelete stamps deleted_at. Deleting an already deleted book reports
// not found.
func (r *bookRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Where("id = ?", id).First(&book).Error; err != nil {
			if isNotFound(err) {
				return models.BookNotFound(id)
			}
			return err
		}

		res := tx.Delete(&book)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.BookNotFound(id)
		}
		return nil
	})
}

func (r *bookRepository) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.db.WithContext(ctx).Order("title ASC, author ASC, id ASC").Find(&books).Error
	return books, err
}

// Search returns rated books whose mean rating is at least filter.MinRating,
// optionally matching title and author exactly. Books with no ratings never
// appear.
func (r *bookRepository) Search(ctx context.Context, filter models.BookFilter) ([]models.BookWithRating, error) {
	query := ratedBooksQuery(r.db.WithContext(ctx))

	if filter.Title != "" {
		query = query.Where("books.title = ?", filter.Title)
	}
	if filter.Author != "" {
		query = query.Where("books.author = ?", filter.Author)
	}

	var rows []models.BookWithRating
	err := query.
		Having("AVG(ratings.value) >= ?", filter.MinRating).
		Order(rankingOrder).
		Scan(&rows).Error
	return rows, err
}

func activeTitleAuthorTaken(tx *gorm.DB, title, author, excludeID string) (bool, error) {
	query := tx.Model(&models.Book{}).Where("title = ? AND author = ?", title, author)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
