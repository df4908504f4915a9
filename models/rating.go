package models

import "time"

// Rating is a single user's score for a book. At most one row exists per
// (book_id, user_id).
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookID    string    `json:"book_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_ratings_book_user"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_ratings_book_user;index:idx_ratings_user"`
	Value     float64   `json:"value" gorm:"type:numeric(2,1);not null;check:chk_ratings_value,value IN (0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Hard removal of the book or user takes its ratings with it.
	Book *Book `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
