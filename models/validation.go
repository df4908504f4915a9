package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 255
	MaxAuthorLength      = 255
	MaxDescriptionLength = 1000
	MaxImageLength       = 255
	MaxNameLength        = 128
	MinPasswordLength    = 8
	MaxPasswordLength    = 64
)

// RatingScale is the full set of accepted rating values, in ascending order.
var RatingScale = []float64{0.0, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0}

// punctuation mirrors the ASCII punctuation set.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsRatingValue reports whether v is one of the RatingScale levels.
func IsRatingValue(v float64) bool {
	for _, level := range RatingScale {
		if v == level {
			return true
		}
	}
	return false
}

// ParseRatingValue parses a decimal string such as "3.5" and checks it
// against the scale.
func ParseRatingValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidRatingValue
	}
	if !IsRatingValue(v) {
		return 0, ErrInvalidRatingValue
	}
	return v, nil
}

// ValidateRatingValue rejects anything outside the scale.
func ValidateRatingValue(v float64) error {
	if !IsRatingValue(v) {
		return ErrInvalidRatingValue
	}
	return nil
}

// TrimmedLenWithin reports whether s, once trimmed, has at most max runes.
func TrimmedLenWithin(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsBlank reports whether s is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidPublishedYear reports whether year lies in [0, current year].
func ValidPublishedYear(year int) bool {
	return year >= 0 && year <= time.Now().Year()
}

// ValidatePassword enforces the password policy: 8 to 64 characters with at
// least one lowercase letter, one uppercase letter, one digit and one
// punctuation character.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength {
		return ErrorValidation{Field: "password", Message: fmt.Sprintf("password must contain at least %d characters", MinPasswordLength)}
	}
	if n > MaxPasswordLength {
		return ErrorValidation{Field: "password", Message: fmt.Sprintf("password must contain at most %d characters", MaxPasswordLength)}
	}

	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			lower = true
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsDigit(c):
			digit = true
		case strings.ContainsRune(punctuation, c):
			special = true
		}
	}
	if !(lower && upper && digit && special) {
		return ErrorValidation{
			Field:   "password",
			Message: "password must contain at least 1 lowercase, 1 uppercase, 1 digit and 1 special character",
		}
	}
	return nil
}

// TrimOptional trims s and turns an empty result into nil.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
