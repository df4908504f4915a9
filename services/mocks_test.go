package services

import (
	"context"

	"book-recommendation-api/models"

	"github.com/stretchr/testify/mock"
)

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) Create(ctx context.Context, book *models.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	args := m.Called(ctx, id)
	book, _ := args.Get(0).(*models.Book)
	return book, args.Error(1)
}

func (m *mockBookRepository) Update(ctx context.Context, book *models.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *mockBookRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookRepository) List(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]models.Book)
	return books, args.Error(1)
}

func (m *mockBookRepository) Search(ctx context.Context, filter models.BookFilter) ([]models.BookWithRating, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.BookWithRating)
	return rows, args.Error(1)
}

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) Get(ctx context.Context, bookID, userID string) (*models.Rating, error) {
	args := m.Called(ctx, bookID, userID)
	rating, _ := args.Get(0).(*models.Rating)
	return rating, args.Error(1)
}

func (m *mockRatingRepository) Upsert(ctx context.Context, bookID, userID string, value float64) error {
	return m.Called(ctx, bookID, userID, value).Error(0)
}

func (m *mockRatingRepository) UpdateValue(ctx context.Context, bookID, userID string, value float64) error {
	return m.Called(ctx, bookID, userID, value).Error(0)
}

type mockRecommendationRepository struct {
	mock.Mock
}

func (m *mockRecommendationRepository) TopRated(ctx context.Context, limit int) ([]models.BookWithRating, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.BookWithRating)
	return rows, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) SetSuperuser(ctx context.Context, id string, superuser bool) error {
	return m.Called(ctx, id, superuser).Error(0)
}
