package middleware

import (
	"context"
	"errors"
	"strings"

	"book-recommendation-api/helper"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextClaims = "claims"
)

// UserLookup loads the account behind a token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware requires a valid bearer token and stores its claims in the
// gin context.
func AuthMiddleware(tokens *services.TokenManager, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			h.SendUnauthorizedError(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			h.SendUnauthorizedError(c, "bearer token required")
			c.Abort()
			return
		}

		claims, err := tokens.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			h.SendUnauthorizedError(c, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireScopes lets the request through only when the token carries every
// listed scope.
func RequireScopes(h *helper.HTTPHelper, scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok || !claims.HasScopes(scopes...) {
			h.SendUnauthorizedError(c, models.ErrInsufficientScope.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperuser checks the stored account, not the token, so demotion
// takes effect immediately.
func RequireSuperuser(users UserLookup, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == "" {
			h.SendUnauthorizedError(c, models.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			var notFound models.ErrorNotFound
			if errors.As(err, &notFound) {
				h.SendUnauthorizedError(c, models.ErrInvalidToken.Error())
			} else {
				h.SendErrorFromErr(c, err)
			}
			c.Abort()
			return
		}

		if !user.IsActive || !user.IsSuperuser {
			h.SendForbiddenError(c, models.ErrNotSuperuser.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*services.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok
}

func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
