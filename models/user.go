package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Token scopes.
const (
	ScopeUserRead  = "user-r"
	ScopeUserWrite = "user-w"
)

// KnownScopes lists every scope a token may carry.
var KnownScopes = []string{ScopeUserRead, ScopeUserWrite}

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email       string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"size:255;not null"`
	FirstName   *string   `json:"first_name" gorm:"size:128"`
	LastName    *string   `json:"last_name" gorm:"size:128"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	IsSuperuser bool      `json:"is_superuser" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser builds a user from signup data. passwordHash must already be hashed.
func NewUser(req SignupRequest, passwordHash string, superuser bool) *User {
	return &User{
		ID:          uuid.NewString(),
		Email:       NormalizeEmail(req.Email),
		Password:    passwordHash,
		FirstName:   TrimOptional(req.FirstName),
		LastName:    TrimOptional(req.LastName),
		IsActive:    true,
		IsSuperuser: superuser,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
