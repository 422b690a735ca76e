package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seminary/pkg/apperr"
	"seminary/pkg/cache"
	"seminary/pkg/config"
	"seminary/pkg/database"
	"seminary/pkg/jwt"
	"seminary/pkg/logger"
	"seminary/pkg/metrics"
	"seminary/pkg/pagination"
	"seminary/pkg/queue"
	"seminary/pkg/s3"
	"seminary/pkg/storage"
	seminaryHTTP "seminary/services/seminary/internal/controller/http"
	lectureCache "seminary/services/seminary/internal/repo/cache"
	"seminary/services/seminary/internal/repo/persistent"
	"seminary/services/seminary/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	store       storage.BlobStore
	uploadDir   string
	jwtService  *jwt.Service
	queueClient *queue.Client
	metrics     *metrics.Metrics
	httpServer  *http.Server
	pprofServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBMigrateOnStart {
		if err := database.Migrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis is optional: lectures fall back to an in-process cache
		// and auth endpoints run without rate limiting.
		log.Warn("Failed to connect to redis: %v (continuing without redis)", err)
		redisClient = nil
	}

	store, uploadDir, err := newBlobStore(cfg)
	if err != nil {
		log.Error("Failed to initialise %s storage: %v", cfg.StorageDriver, err)
		return nil, err
	}

	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
			queueClient = nil
		}
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		store:       store,
		uploadDir:   uploadDir,
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
		queueClient: queueClient,
		metrics:     metrics.New(),
	}, nil
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, string, error) {
	if cfg.StorageDriver == config.StorageDriverS3 {
		client, err := s3.NewClient(cfg)
		return client, "", err
	}
	local, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadPublicURL)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	lectureRepo := persistent.NewLectureRepository(a.db)

	var lectures lectureCache.LectureCache
	if a.redisClient != nil {
		lectures = lectureCache.NewRedisLectureCache(a.redisClient, lectureCache.DefaultTTL, a.log)
	} else {
		lectures = lectureCache.NewMemoryLectureCache(lectureCache.DefaultTTL)
	}

	var events usecase.EventPublisher
	if a.queueClient != nil {
		events = a.queueClient
	}

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.metrics, a.log)
	lectureUseCase := usecase.NewLectureUseCase(
		lectureRepo,
		a.store,
		lectures,
		events,
		pagination.Limits{DefaultSize: a.cfg.LecturePageSize, MaxSize: a.cfg.LectureMaxPageSize},
		a.metrics,
		a.log,
	)

	if err := a.ensureAdmin(authUseCase); err != nil {
		return err
	}

	router := newRouter(routerDeps{
		cfg:            a.cfg,
		jwtService:     a.jwtService,
		metrics:        a.metrics,
		redisClient:    a.redisClient,
		authHandler:    seminaryHTTP.NewAuthHandler(authUseCase, a.log),
		lectureHandler: seminaryHTTP.NewLectureHandler(lectureUseCase, a.log),
		uploadDir:      a.uploadDir,
	})
	router.MaxMultipartMemory = 32 << 20

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Seminary service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	if a.cfg.PprofAddr != "" {
		a.pprofServer = &http.Server{
			Addr:              a.cfg.PprofAddr,
			Handler:           newPprofRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			a.log.Info("Starting pprof server on %s", a.cfg.PprofAddr)
			if err := a.pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				a.log.Error("pprof server stopped: %v", err)
			}
		}()
	}

	return nil
}

// ensureAdmin seeds the first admin account. A missing ADMIN_PASSWORD is
// only a warning: the service still serves read traffic.
func (a *App) ensureAdmin(authUseCase usecase.AuthUseCase) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := authUseCase.EnsureAdmin(ctx, a.cfg.AdminUsername, a.cfg.AdminPassword, a.cfg.AdminDisplayName)
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		a.log.Warn("No admin account: %v", err)
	case err != nil:
		return errors.Wrap(err, "ensure admin account")
	case created:
		a.log.Info("Admin account %q created", a.cfg.AdminUsername)
	}
	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down seminary service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if a.pprofServer != nil {
		if err := a.pprofServer.Shutdown(ctx); err != nil {
			a.log.Warn("pprof server shutdown: %v", err)
		}
	}

	// Close database connection
	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Seminary service exited")
	_ = a.log.Sync()
	return shutdownErr
}
