package handlers

import (
	"net/http"

	"book-recommendation-api/helper"
	"book-recommendation-api/metrics"
	"book-recommendation-api/middleware"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps is everything the HTTP layer needs. Metrics and RateLimiter
// may be nil to disable them.
type RouterDeps struct {
	Log                   zerolog.Logger
	Helper                *helper.HTTPHelper
	Tokens                *services.TokenManager
	AuthService           services.AuthService
	BookService           services.BookService
	RatingService         services.RatingService
	RecommendationService services.RecommendationService
	Metrics               *metrics.Metrics
	MetricsPath           string
	RateLimiter           *middleware.RateLimiter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	h := deps.Helper

	authHandler := NewAuthHandler(deps.AuthService, h)
	bookHandler := NewBookHandler(deps.BookService, h)
	ratingHandler := NewRatingHandler(deps.RatingService, h)
	recommendationHandler := NewRecommendationHandler(deps.RecommendationService, h)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(deps.Log),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	authenticated := middleware.AuthMiddleware(deps.Tokens, h)
	superuser := middleware.RequireSuperuser(deps.AuthService, h)
	canRead := middleware.RequireScopes(h, models.ScopeUserRead)

	auth := router.Group("/auth")
	if deps.RateLimiter != nil {
		auth.Use(middleware.RateLimit(deps.RateLimiter, h))
	}
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/create_super_user",
			authenticated,
			middleware.RequireScopes(h, models.ScopeUserRead, models.ScopeUserWrite),
			superuser,
			authHandler.CreateSuperUser,
		)
	}

	books := router.Group("/books", authenticated)
	{
		books.POST("/create", superuser, bookHandler.CreateBook)
		books.GET("/get/:id", canRead, bookHandler.GetBook)
		books.PATCH("/update/:id", superuser, bookHandler.UpdateBook)
		books.DELETE("/delete/:id", superuser, bookHandler.DeleteBook)
		books.GET("/get-books", canRead, bookHandler.GetBooks)
		books.GET("/get-all", canRead, bookHandler.GetAllBooks)
	}

	rating := router.Group("/rating", authenticated)
	{
		rating.POST("/add", ratingHandler.AddRating)
		rating.GET("/get", ratingHandler.GetRating)
	}

	recommend := router.Group("/recommend", authenticated, canRead)
	{
		recommend.GET("/:selector", recommendationHandler.GetTopRated)
	}

	return router
}
