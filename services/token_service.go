package services

import (
	"time"

	"book-recommendation-api/models"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the payload of an access token.
type Claims struct {
	UserID string   `json:"id"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScopes reports whether every required scope is present.
func (c *Claims) HasScopes(required ...string) bool {
	for _, want := range required {
		found := false
		for _, have := range c.Scopes {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, expiration time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

func (m *TokenManager) Issue(userID string, scopes []string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies signature, algorithm and expiry. Every failure is reported
// as models.ErrInvalidToken.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}
	if claims.UserID == "" || claims.ExpiresAt == nil {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
