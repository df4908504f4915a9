package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"book-recommendation-api/config"
	"book-recommendation-api/handlers"
	"book-recommendation-api/helper"
	"book-recommendation-api/metrics"
	"book-recommendation-api/middleware"
	"book-recommendation-api/repositories"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := config.NewLogger(cfg.Log, cfg.AppName)
	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.InitDB(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := config.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)

	// Initialize services
	tokens := services.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	authService := services.NewAuthService(userRepo, tokens, log)
	bookService := services.NewBookService(bookRepo, log)
	ratingService := services.NewRatingService(ratingRepo, bookRepo, m, log)
	recommendationService := services.NewRecommendationService(recommendationRepo, m, log)

	if err := authService.EnsureSuperUser(ctx, cfg.Superuser.Email, cfg.Superuser.Password); err != nil {
		return fmt.Errorf("bootstrap superuser: %w", err)
	}

	h, err := helper.NewHTTPHelper(log)
	if err != nil {
		return fmt.Errorf("setup validator: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Log:                   log,
		Helper:                h,
		Tokens:                tokens,
		AuthService:           authService,
		BookService:           bookService,
		RatingService:         ratingService,
		RecommendationService: recommendationService,
		Metrics:               m,
		MetricsPath:           cfg.Metrics.Path,
		RateLimiter:           limiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return serve(ctx, srv, cfg.Server, log)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
