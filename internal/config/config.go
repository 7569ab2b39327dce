package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Identity provider webhook (svix signature scheme)
	ClerkWebhookSecret string

	// Uploads
	MaxUploadSize int64

	// Storage: "local" (default) or "s3"
	StorageDriver string
	UploadDir     string

	// Storage - S3-compatible (MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region          string
	S3Bucket          string
	S3AccessKey       string
	S3SecretKey       string
	S3Endpoint        string // Optional: for S3-compatible services
	S3PresignDownload bool   // Redirect downloads to presigned URLs instead of proxying
	S3PresignExpiry   time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "dropkit"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/dropkit.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security: both secrets are validated at startup, never re-read per request
		JWTSecret:          envRequired("JWT_SECRET"),
		JWTExpiry:          envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		ClerkWebhookSecret: envRequired("CLERK_WEBHOOK_SECRET"),

		// Uploads
		MaxUploadSize: envInt64("MAX_UPLOAD_SIZE", 32<<20), // 32 MiB

		// Storage
		StorageDriver: envString("STORAGE_DRIVER", "local"),
		UploadDir:     envString("UPLOAD_DIR", "uploads"),

		S3Region:          envString("S3_REGION", ""),
		S3Bucket:          envString("S3_BUCKET", ""),
		S3AccessKey:       envString("S3_ACCESS_KEY", ""),
		S3SecretKey:       envString("S3_SECRET_KEY", ""),
		S3Endpoint:        envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3PresignDownload: envBool("S3_PRESIGN_DOWNLOAD", false),
		S3PresignExpiry:   envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.StorageDriver == "s3" {
		validateS3(cfg)
	}

	return cfg
}

// validateS3 ensures S3 credentials are present when the S3 driver is selected,
// so a misconfigured deployment fails at startup instead of on the first upload.
func validateS3(cfg *Config) {
	for key, value := range map[string]string{
		"S3_REGION":     cfg.S3Region,
		"S3_BUCKET":     cfg.S3Bucket,
		"S3_ACCESS_KEY": cfg.S3AccessKey,
		"S3_SECRET_KEY": cfg.S3SecretKey,
	} {
		if value == "" {
			slog.Error("config STORAGE_DRIVER=s3 requires env var", "key", key)
			os.Exit(1)
		}
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
