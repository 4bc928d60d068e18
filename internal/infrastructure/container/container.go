package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sparkmatch/sparkmatch-backend/internal/config"
	"github.com/sparkmatch/sparkmatch-backend/internal/delivery/http"
	"github.com/sparkmatch/sparkmatch-backend/internal/delivery/http/handler"
	"github.com/sparkmatch/sparkmatch-backend/internal/delivery/http/middleware"
	"github.com/sparkmatch/sparkmatch-backend/internal/infrastructure/database"
	"github.com/sparkmatch/sparkmatch-backend/internal/infrastructure/server"
	"github.com/sparkmatch/sparkmatch-backend/internal/infrastructure/storage"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository/postgres"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository/redis"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/auth"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/feed"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/profile"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/swipe"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize object storage
	minioClient, err := storage.NewMinioClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	photoStorage := storage.NewPhotoStorage(minioClient, cfg.Storage.Bucket)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	sessionRepo := redis.NewSessionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiryMin,
		cfg.JWT.SessionTTLHours,
		log,
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		prefRepo,
		photoRepo,
		photoStorage,
		log,
	)

	feedUseCase := feed.NewFeedUseCase(
		userRepo,
		prefRepo,
		photoRepo,
		photoStorage,
		cfg.Feed.CandidateLimit,
		log,
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		swipeRepo,
		userRepo,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		swipeHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
