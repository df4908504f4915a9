package services

import (
	"context"

	"book-recommendation-api/models"
	"book-recommendation-api/repositories"

	"github.com/rs/zerolog"
)

type BookService interface {
	CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context) ([]models.Book, error)
	QueryBooks(ctx context.Context, filter models.BookFilter) ([]models.BookWithRating, error)
}

type bookService struct {
	bookRepo repositories.BookRepository
	log      zerolog.Logger
}

func NewBookService(bookRepo repositories.BookRepository, log zerolog.Logger) BookService {
	return &bookService{
		bookRepo: bookRepo,
		log:      log.With().Str("component", "books").Logger(),
	}
}

func (s *bookService) CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	book, err := models.NewBook(req)
	if err != nil {
		return nil, err
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.log.Info().Str("book_id", book.ID).Msg("book created")
	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

// UpdateBook applies only the supplied fields.
func (s *bookService) UpdateBook(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.ApplyUpdate(req)
	if err := book.Validate(); err != nil {
		return nil, err
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	if err := s.bookRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *bookService) QueryBooks(ctx context.Context, filter models.BookFilter) ([]models.BookWithRating, error) {
	if filter.MinRating < 0 {
		return nil, models.ErrorValidation{Field: "rating", Message: "minimum rating cannot be negative"}
	}
	return s.bookRepo.Search(ctx, filter)
}
