package services

import (
	"context"
	"errors"
	"strings"

	"book-recommendation-api/models"
	"book-recommendation-api/repositories"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error)
	CreateSuperUser(ctx context.Context, req models.SignupRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	EnsureSuperUser(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *TokenManager
	log      zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, tokens *TokenManager, log zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With().Str("component", "auth").Logger(),
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	return s.createUser(ctx, req, false)
}

func (s *authService) CreateSuperUser(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	return s.createUser(ctx, req, true)
}

func (s *authService) createUser(ctx context.Context, req models.SignupRequest, superuser bool) (*models.User, error) {
	if err := models.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(req, hashed, superuser)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Bool("superuser", superuser).
		Msg("user created")
	return user, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !VerifyPassword(req.Password, user.Password) {
		s.log.Info().Str("user_id", user.ID).Msg("password not verified")
		return nil, models.ErrInvalidCredentials
	}

	scopes, err := ParseScopes(req.Scopes)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, scopes)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// EnsureSuperUser makes sure a superuser with the given email exists,
// creating it or promoting an existing account. Empty credentials are a
// no-op.
func (s *authService) EnsureSuperUser(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if user.IsSuperuser {
			return nil
		}
		s.log.Info().Str("user_id", user.ID).Msg("promoting existing user to superuser")
		return s.userRepo.SetSuperuser(ctx, user.ID, true)
	}

	var notFound models.ErrorNotFound
	if !errors.As(err, &notFound) {
		return err
	}

	_, err = s.CreateSuperUser(ctx, models.SignupRequest{Email: email, Password: password})
	return err
}

// ParseScopes splits a space separated scope list. An empty list grants
// every known scope; unknown scopes are rejected.
func ParseScopes(raw string) ([]string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return append([]string(nil), models.KnownScopes...), nil
	}

	scopes := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !isKnownScope(f) {
			return nil, models.ErrorValidation{Field: "scopes", Message: "unknown scope " + f}
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		scopes = append(scopes, f)
	}
	return scopes, nil
}

func isKnownScope(scope string) bool {
	for _, known := range models.KnownScopes {
		if scope == known {
			return true
		}
	}
	return false
}
