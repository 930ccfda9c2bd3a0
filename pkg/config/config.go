package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Scoring  ScoringConfig
	Reco     RecoConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// DatabaseConfig is only needed by the catalog publisher.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ScoringConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type RecoConfig struct {
	ExpirationDays       int
	SentinelSaleID       string
	AlertsAlwaysRefresh  bool
	NormalisePassThrough bool
	MalformedFallback    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Sales Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "sales_catalog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Scoring: ScoringConfig{
			BaseURL:        getEnv("SCORING_BASE_URL", ""),
			TimeoutSeconds: getEnvInt("SCORING_TIMEOUT_SECONDS", 5),
		},
		Reco: RecoConfig{
			ExpirationDays:       getEnvInt("RECO_EXPIRATION_DAYS", 4),
			SentinelSaleID:       getEnv("RECO_SENTINEL_SALE_ID", ""),
			AlertsAlwaysRefresh:  getEnvBool("RECO_ALERTS_ALWAYS_REFRESH", false),
			NormalisePassThrough: getEnvBool("RECO_NORMALISE_PASS_THROUGH", false),
			MalformedFallback:    getEnvBool("RECO_MALFORMED_FALLBACK", true),
		},
	}

	if cfg.Reco.ExpirationDays <= 0 {
		return nil, errors.New("invalid recommendation expiration")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
