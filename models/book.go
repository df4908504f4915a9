package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string         `json:"title" gorm:"size:255;not null;uniqueIndex:idx_books_title_author_active,where:deleted_at IS NULL;check:chk_books_title_not_blank,length(trim(title)) > 0"`
	Author        string         `json:"author" gorm:"size:255;not null;uniqueIndex:idx_books_title_author_active,where:deleted_at IS NULL;check:chk_books_author_not_blank,length(trim(author)) > 0"`
	Description   *string        `json:"description" gorm:"size:1000"`
	PublishedYear *int           `json:"published_year" gorm:"check:chk_books_published_year,published_year >= 0"`
	Image         *string        `json:"image" gorm:"size:255"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// NewBook builds a normalised, validated book from a create request.
func NewBook(req CreateBookRequest) (*Book, error) {
	book := &Book{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		PublishedYear: req.PublishedYear,
		Image:         req.Image,
	}
	book.Normalize()
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

// Normalize trims text fields; empty optional fields become nil.
func (b *Book) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.Description = TrimOptional(b.Description)
	b.Image = TrimOptional(b.Image)
}

// Validate checks the book invariants. It is run before every write.
func (b *Book) Validate() error {
	if IsBlank(b.Title) {
		return ErrorValidation{Field: "title", Message: "title cannot be empty"}
	}
	if !TrimmedLenWithin(b.Title, MaxTitleLength) {
		return ErrorValidation{Field: "title", Message: fmt.Sprintf("title cannot exceed %d characters", MaxTitleLength)}
	}
	if IsBlank(b.Author) {
		return ErrorValidation{Field: "author", Message: "author cannot be empty"}
	}
	if !TrimmedLenWithin(b.Author, MaxAuthorLength) {
		return ErrorValidation{Field: "author", Message: fmt.Sprintf("author cannot exceed %d characters", MaxAuthorLength)}
	}
	if b.Description != nil && !TrimmedLenWithin(*b.Description, MaxDescriptionLength) {
		return ErrorValidation{Field: "description", Message: fmt.Sprintf("description cannot exceed %d characters", MaxDescriptionLength)}
	}
	if b.Image != nil && !TrimmedLenWithin(*b.Image, MaxImageLength) {
		return ErrorValidation{Field: "image", Message: fmt.Sprintf("image cannot exceed %d characters", MaxImageLength)}
	}
	if b.PublishedYear != nil && !ValidPublishedYear(*b.PublishedYear) {
		return ErrorValidation{
			Field:   "published_year",
			Message: fmt.Sprintf("published year must be between 0 and %d", time.Now().Year()),
		}
	}
	return nil
}

// ApplyUpdate copies the supplied fields of req onto b. Fields left nil in
// req are untouched.
func (b *Book) ApplyUpdate(req UpdateBookRequest) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.PublishedYear != nil {
		b.PublishedYear = req.PublishedYear
	}
	if req.Image != nil {
		b.Image = req.Image
	}
	b.Normalize()
}

// BookWithRating is a book joined with the mean of its ratings.
type BookWithRating struct {
	Book          Book    `json:"book" gorm:"embedded"`
	AverageRating float64 `json:"average_rating" gorm:"column:average_rating"`
}

// RankedBook is one entry of the top-N ranking.
type RankedBook struct {
	Rank   int     `json:"rank"`
	Item   Book    `json:"item"`
	Rating float64 `json:"rating"`
}

// BookFilter narrows the rated-book listing. Empty strings mean "any".
type BookFilter struct {
	Title     string
	Author    string
	MinRating float64
}
