package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. Separate secret/TTL pairs
// exist for end-user tokens and admin tokens; a token signed with one secret
// never verifies under the other.
type AuthConfig struct {
	UserSecret    string
	AdminSecret   string
	UserTokenTTL  time.Duration
	AdminTokenTTL time.Duration
	BcryptCost    int
}

// UploadConfig controls product image storage.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// RateLimitConfig bounds login attempts per client.
type RateLimitConfig struct {
	LoginAttempts int
	LoginWindow   time.Duration
}

// Load reads configuration from environment variables. The four JWT settings
// are mandatory: a missing or malformed secret/expiration is a load error,
// which the caller treats as fatal at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	authCfg, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "shop-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: authCfg,
		Upload: UploadConfig{
			Dir:      getEnv("PRODUCT_IMAGES_DIR", "public/images/products"),
			MaxBytes: int64(getEnvAsInt("PRODUCT_IMAGE_MAX_BYTES", 500000)),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts: getEnvAsInt("LOGIN_RATE_LIMIT_ATTEMPTS", 10),
			LoginWindow:   time.Duration(getEnvAsInt("LOGIN_RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	return cfg, nil
}

func loadAuthConfig() (AuthConfig, error) {
	userSecret, err := requireEnv("JWT_SECRET_USER")
	if err != nil {
		return AuthConfig{}, err
	}
	adminSecret, err := requireEnv("JWT_SECRET_ADMIN")
	if err != nil {
		return AuthConfig{}, err
	}
	if userSecret == adminSecret {
		return AuthConfig{}, fmt.Errorf("JWT_SECRET_USER and JWT_SECRET_ADMIN must be distinct")
	}

	userExp, err := requireEnv("JWT_EXPIRATION")
	if err != nil {
		return AuthConfig{}, err
	}
	userTTL, err := ParseExpiration(userExp)
	if err != nil {
		return AuthConfig{}, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}

	adminExp, err := requireEnv("JWT_EXPIRATION_ADMIN")
	if err != nil {
		return AuthConfig{}, err
	}
	adminTTL, err := ParseExpiration(adminExp)
	if err != nil {
		return AuthConfig{}, fmt.Errorf("invalid JWT_EXPIRATION_ADMIN: %w", err)
	}

	cost := getEnvAsInt("AUTH_BCRYPT_COST", 12)
	if cost < 10 {
		cost = 10
	}

	return AuthConfig{
		UserSecret:    userSecret,
		AdminSecret:   adminSecret,
		UserTokenTTL:  userTTL,
		AdminTokenTTL: adminTTL,
		BcryptCost:    cost,
	}, nil
}

// ParseExpiration parses an expiration string. Duration suffixes ("24h",
// "900s") are accepted, as is a bare number of seconds ("900").
func ParseExpiration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty expiration")
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("expiration must be positive: %q", raw)
		}
		return d, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("unparseable expiration: %q", raw)
	}
	return time.Duration(secs) * time.Second, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func requireEnv(key string) (string, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return val, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
