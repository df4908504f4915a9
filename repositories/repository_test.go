package repositories_test

import (
	"context"
	"testing"

	"book-recommendation-api/models"
	"book-recommendation-api/repositories"
	"book-recommendation-api/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	books   repositories.BookRepository
	users   repositories.UserRepository
	ratings repositories.RatingRepository
	ranking repositories.RecommendationRepository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		db:      db,
		books:   repositories.NewBookRepository(db),
		users:   repositories.NewUserRepository(db),
		ratings: repositories.NewRatingRepository(db),
		ranking: repositories.NewRecommendationRepository(db),
	}
}

func (f *fixture) book(t *testing.T, id, title, author string) *models.Book {
	t.Helper()
	book := &models.Book{ID: id, Title: title, Author: author}
	require.NoError(t, f.books.Create(context.Background(), book))
	return book
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.NewUser(models.SignupRequest{Email: email}, "hash", false)
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *fixture) rate(t *testing.T, book *models.Book, user *models.User, value float64) {
	t.Helper()
	require.NoError(t, f.ratings.Upsert(context.Background(), book.ID, user.ID, value))
}
