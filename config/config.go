package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL        string        `envconfig:"DATABASE_URL"         required:"true"`
	HTTPPort           string        `envconfig:"HTTP_PORT"            default:":8000"`
	LogLevel           string        `envconfig:"LOG_LEVEL"            default:"info"`
	CORSAllowedOrigins string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RedisAddr          string        `envconfig:"REDIS_ADDR"           default:""`
	ProductCacheTTL    time.Duration `envconfig:"PRODUCT_CACHE_TTL"    default:"60s"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s", config.HTTPPort, config.LogLevel)
		if config.RedisAddr != "" {
			logger.Infof("Configuration loaded: product cache enabled via Redis at %s", config.RedisAddr)
		} else {
			logger.Info("Configuration loaded: REDIS_ADDR not set, product cache disabled")
		}
	})
	return &config
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into individual origins.
// The default "*" permits every origin and is only suitable for development.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
