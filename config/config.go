package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "looncamp-super-secret-key-change-in-production"

// Config is everything the server reads from the environment.
type Config struct {
	Port string

	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string

	JWTSecret string
	JWTExpiry time.Duration

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	LoginRateLimit int64

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	UploadDir           string
	UploadMaxBytes      int64

	CORSOrigins []string

	AdminEmail    string
	AdminPassword string
}

// Load reads .env (optional) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	databaseURL := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if databaseURL == "" {
		databaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	cfg := Config{
		Port: envOrDefault("PORT", "8080"),

		DatabaseURL: databaseURL,
		DBUser:      envOrDefault("DB_USER", "root"),
		DBPass:      envOrDefault("DB_PASS", ""),
		DBHost:      envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:      envOrDefault("DB_PORT", "3306"),
		DBName:      envOrDefault("DB_NAME", "looncamp"),

		JWTSecret: envOrDefault("JWT_SECRET", defaultJWTSecret),
		JWTExpiry: durationOrDefault("JWT_EXPIRY", 24*time.Hour),

		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        int(intOrDefault("REDIS_DB", 0)),
		LoginRateLimit: intOrDefault("LOGIN_RATE_LIMIT", 5),

		CloudinaryCloudName: firstNonEmpty(os.Getenv("CLOUDINARY_CLOUD_NAME"), os.Getenv("REACT_APP_CLOUDINARY_CLOUD_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),
		UploadDir:           envOrDefault("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:      intOrDefault("UPLOAD_MAX_BYTES", 50<<20),

		CORSOrigins: parseList(os.Getenv("CORS_ORIGINS")),

		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("⚠️  JWT_SECRET not set; using the development default")
	}
	return cfg
}

// CloudinaryEnabled reports whether all three Cloudinary credentials are set.
func (c Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func intOrDefault(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("⚠️  invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

// durationOrDefault accepts Go durations ("90m", "24h") and the "7d" day
// suffix used by jsonwebtoken-style expiry settings.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️  invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return d
}

func ParseDuration(raw string) (time.Duration, error) {
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(raw)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
