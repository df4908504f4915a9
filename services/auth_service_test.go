package services

import (
	"context"
	"testing"
	"time"

	"book-recommendation-api/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest() (AuthService, *mockUserRepository, *TokenManager) {
	users := &mockUserRepository{}
	tokens := NewTokenManager("secret", 30*time.Minute)
	return NewAuthService(users, tokens, zerolog.Nop()), users, tokens
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("ValidPass1!")
	require.NoError(t, err)
	assert.NotEqual(t, "ValidPass1!", hash)
	assert.True(t, VerifyPassword("ValidPass1!", hash))
	assert.False(t, VerifyPassword("validpass1!", hash))
}

func TestParseScopes(t *testing.T) {
	all, err := ParseScopes("")
	require.NoError(t, err)
	assert.ElementsMatch(t, models.KnownScopes, all)

	some, err := ParseScopes("user-r user-r")
	require.NoError(t, err)
	assert.Equal(t, []string{models.ScopeUserRead}, some)

	var verr models.ErrorValidation
	_, err = ParseScopes("user-r admin")
	require.ErrorAs(t, err, &verr)
}

func TestSignup(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()
	ctx := context.Background()

	first := " Ada "
	users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ada@example.com" &&
			u.Password != "ValidPass1!" &&
			u.FirstName != nil && *u.FirstName == "Ada" &&
			!u.IsSuperuser
	})).Return(nil)

	user, err := svc.Signup(ctx, models.SignupRequest{Email: "Ada@Example.com ", Password: "ValidPass1!", FirstName: &first})
	require.NoError(t, err)
	assert.True(t, VerifyPassword("ValidPass1!", user.Password))
	users.AssertExpectations(t)
}

func TestSignup_WeakPassword(t *testing.T) {
	svc, users, _ := newAuthServiceForTest()

	var verr models.ErrorValidation
	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@example.com", Password: "alllowercase1!"})
	require.ErrorAs(t, err, &verr)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	svc, users, tokens := newAuthServiceForTest()
	ctx := context.Background()

	hash, err := HashPassword("ValidPass1!")
	require.NoError(t, err)
	users.On("GetByEmail", ctx, "ada@example.com").Return(&models.User{ID: "u1", Password: hash, IsActive: true}, nil)
	users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, models.UserNotFound())

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "ValidPass1!", Scopes: "user-r"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := tokens.Decode(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, []string{models.ScopeUserRead}, claims.Scopes)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "WrongPass1!"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "ValidPass1!"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestEnsureSuperUser(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		svc, users, _ := newAuthServiceForTest()
		require.NoError(t, svc.EnsureSuperUser(ctx, "", ""))
		users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("creates", func(t *testing.T) {
		svc, users, _ := newAuthServiceForTest()
		users.On("GetByEmail", ctx, "root@example.com").Return(nil, models.UserNotFound())
		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool { return u.IsSuperuser })).Return(nil)

		require.NoError(t, svc.EnsureSuperUser(ctx, "root@example.com", "ValidPass1!"))
		users.AssertExpectations(t)
	})

	t.Run("promotes", func(t *testing.T) {
		svc, users, _ := newAuthServiceForTest()
		users.On("GetByEmail", ctx, "root@example.com").Return(&models.User{ID: "u1"}, nil)
		users.On("SetSuperuser", ctx, "u1", true).Return(nil)

		require.NoError(t, svc.EnsureSuperUser(ctx, "root@example.com", "ValidPass1!"))
		users.AssertExpectations(t)
	})
}
