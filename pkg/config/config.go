package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

const (
	StorageDriverS3    = "s3"
	StorageDriverLocal = "local"
)

type Config struct {
	// Server
	ServerPort     string
	AllowedOrigins []string
	ClientDir      string
	LogLevel       string
	// PprofAddr enables the profiling listener when set, e.g. "localhost:6060".
	PprofAddr string

	// Database
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBMigrateOnStart bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Storage
	StorageDriver  string
	MaxUploadBytes int64

	// AWS S3 / MinIO
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string

	// Local uploads
	UploadDir       string
	UploadPublicURL string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// Initial admin account
	AdminUsername    string
	AdminPassword    string
	AdminDisplayName string

	// Lecture listing
	LecturePageSize    int
	LectureMaxPageSize int
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		ClientDir:      getEnv("CLIENT_DIR", "./client"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		PprofAddr:      getEnv("PPROF_ADDR", ""),

		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "theological_seminary"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		DBMigrateOnStart: getEnvBool("DB_MIGRATE_ON_START", true),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverLocal)),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 100)) << 20,

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "seminary-materials"),

		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		UploadPublicURL: getEnv("UPLOAD_PUBLIC_URL", "/uploads"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", ""),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		AdminDisplayName: getEnv("ADMIN_DISPLAY_NAME", "관리자"),

		LecturePageSize:    getEnvInt("LECTURE_PAGE_SIZE", 5),
		LectureMaxPageSize: getEnvInt("LECTURE_MAX_PAGE_SIZE", 50),
	}

	return config, nil
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in environment variables")
	}
	if c.StorageDriver != StorageDriverS3 && c.StorageDriver != StorageDriverLocal {
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", c.StorageDriver, StorageDriverS3, StorageDriverLocal)
	}
	if c.LecturePageSize < 1 {
		return fmt.Errorf("LECTURE_PAGE_SIZE must be at least 1")
	}
	if c.LectureMaxPageSize < c.LecturePageSize {
		return fmt.Errorf("LECTURE_MAX_PAGE_SIZE must not be below LECTURE_PAGE_SIZE")
	}
	return nil
}

// PostgresDSN builds the key/value DSN shared by gorm and the migrate command.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
