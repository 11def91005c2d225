package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	ProjectName = "AI Business Idea Generator"
	Version     = "1.0.0"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

// Enabled reports whether enough credentials are present to talk to R2.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type Config struct {
	DBDriver       string
	DB_URL         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	Port           string
	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
	Environment    string
	Debug          bool
	LogLevel       string
	CorsConfig     cors.Options
	R2             R2Config
	Google         GoogleConfig
}

// Load reads the process environment (optionally seeded from ENV_FILE or .env)
// into a Config. It is meant to be called once from main.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// A missing env file is fine, the process environment still applies.
	_ = godotenv.Load(envFile)

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 16)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 8)
	if err != nil {
		return Config{}, err
	}
	ttlMinutes, err := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*7)
	if err != nil {
		return Config{}, err
	}
	debug, err := strconv.ParseBool(getEnv("DEBUG", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("DEBUG: %w", err)
	}

	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	return Config{
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DB_URL:         getEnv("DB_URL", ""),
		DBMaxOpenConns: maxOpen,
		DBMaxIdleConns: maxIdle,
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("SECRET_KEY", "not-so-secret-now-is-it?"),
		JWTAlgorithm:   getEnv("ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(ttlMinutes) * time.Minute,
		Environment:    getEnv("ENVIRONMENT", "development"),
		Debug:          debug,
		LogLevel:       getEnv("LOG_LEVEL", logLevel),
		CorsConfig:     CorsConfig(splitList(getEnv("CORS_ORIGINS", "http://localhost:5000,http://localhost:3000"))),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8000/api/v1/auth/google/callback"),
		},
	}, nil
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Export-Url", "X-Request-ID"},
		AllowCredentials: true,
	}
}
