package app

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"seminary/pkg/config"
	"seminary/pkg/jwt"
	"seminary/pkg/metrics"
	"seminary/pkg/middleware"
	seminaryHTTP "seminary/services/seminary/internal/controller/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	authRateLimit       = 10
	authRateLimitWindow = time.Minute
)

type routerDeps struct {
	cfg            *config.Config
	jwtService     *jwt.Service
	metrics        *metrics.Metrics
	redisClient    *redis.Client
	authHandler    *seminaryHTTP.AuthHandler
	lectureHandler *seminaryHTTP.LectureHandler
	// uploadDir is served under cfg.UploadPublicURL when blobs live on disk.
	uploadDir string
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), d.metrics.Middleware())

	// CORS middleware
	r.Use(cors.New(corsConfig(d.cfg.AllowedOrigins)))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", d.metrics.Handler())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		users := api.Group("/users")
		credentials := []gin.HandlerFunc{}
		if d.redisClient != nil {
			credentials = append(credentials, middleware.RateLimitMiddleware(d.redisClient, authRateLimit, authRateLimitWindow))
		}
		users.POST("/register", append(credentials, d.authHandler.Register)...)
		users.POST("/login", append(credentials, d.authHandler.Login)...)
		users.GET("/me", d.authHandler.Me)

		api.GET("/lectures", d.lectureHandler.ListLectures)
		api.GET("/lectures/:id", d.lectureHandler.GetLecture)

		// Protected routes
		admin := api.Group("/lectures")
		admin.Use(middleware.AuthMiddleware(d.jwtService), d.authHandler.RequireAdmin, limitBody(d.cfg.MaxUploadBytes))
		{
			admin.POST("", d.lectureHandler.CreateLecture)
			admin.PUT("/:id", d.lectureHandler.UpdateLecture)
			admin.DELETE("/:id", d.lectureHandler.DeleteLecture)
		}
	}

	if d.uploadDir != "" && strings.HasPrefix(d.cfg.UploadPublicURL, "/") {
		r.Static(d.cfg.UploadPublicURL, d.uploadDir)
	}

	r.NoRoute(clientFallback(d.cfg.ClientDir))
	return r
}

// newPprofRouter exposes the runtime profiles on their own listener so
// they never share the public port.
func newPprofRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	pprof.Register(r)
	return r
}

// corsConfig allows the configured origins; an empty list or "*" opens
// the API to any origin without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			origins = nil
			break
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// limitBody caps request bodies so oversized uploads fail while parsing
// instead of filling the disk.
func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// clientFallback serves the static web client: existing files as is, any
// other GET path as index.html. API paths and other methods get a JSON 404.
func clientFallback(dir string) gin.HandlerFunc {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, seminaryHTTP.ErrorResponse{Error: "not found", Code: "NOT_FOUND"})
	}
	if dir == "" {
		return notFound
	}

	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) || p == "/api" || strings.HasPrefix(p, "/api/") {
			notFound(c)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		c.File(index)
	}
}
